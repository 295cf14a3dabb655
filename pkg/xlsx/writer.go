// Package xlsx renders a parsed feed as a workbook with a header sheet and a
// detail sheet.
package xlsx

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

const (
	DefaultHeaderSheet = "Header"
	DefaultDetailSheet = "Detail"

	minColWidth = 8
	maxColWidth = 60
)

// Writer builds the workbook. Empty sheet names fall back to the defaults.
type Writer struct {
	HeaderSheet string
	DetailSheet string
}

func New(headerSheet, detailSheet string) *Writer {
	return &Writer{HeaderSheet: headerSheet, DetailSheet: detailSheet}
}

// Write renders header and records to out.
func (w *Writer) Write(out io.Writer, header models.HeaderRecord, records []models.DetailRecord) error {
	f, err := w.build(header, records)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (w *Writer) build(header models.HeaderRecord, records []models.DetailRecord) (*excelize.File, error) {
	headerSheet, detailSheet := w.sheetNames()

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), headerSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name header sheet: %w", err)
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create detail sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeTable(f, headerSheet, header.Keys(), [][]string{header.Values()}, styles); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header sheet: %w", err)
	}

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = r.Cells()
	}
	if err := writeTable(f, detailSheet, models.Columns(), rows, styles); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write detail sheet: %w", err)
	}

	return f, nil
}

func (w *Writer) sheetNames() (string, string) {
	headerSheet, detailSheet := w.HeaderSheet, w.DetailSheet
	if headerSheet == "" {
		headerSheet = DefaultHeaderSheet
	}
	if detailSheet == "" {
		detailSheet = DefaultDetailSheet
	}
	return headerSheet, detailSheet
}

type styles struct {
	title int
	cell  int
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	title, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: border,
	})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create title style: %w", err)
	}
	cell, err := f.NewStyle(&excelize.Style{Border: border})
	if err != nil {
		return styles{}, fmt.Errorf("failed to create cell style: %w", err)
	}
	return styles{title: title, cell: cell}, nil
}

// writeTable writes a bold, bordered title row followed by bordered data
// rows and sizes each column to its longest cell.
func writeTable(f *excelize.File, sheet string, titles []string, rows [][]string, st styles) error {
	if len(titles) == 0 {
		return nil
	}

	widths := make([]int, len(titles))
	if err := setRow(f, sheet, 1, titles, widths); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row, widths); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, st.title); err != nil {
		return err
	}
	if len(rows) > 0 {
		bottom, err := excelize.CoordinatesToCellName(len(titles), len(rows)+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A2", bottom, st.cell); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth(w)); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string, widths []int) error {
	values := make([]interface{}, len(widths))
	for i := range widths {
		v := ""
		if i < len(cells) {
			v = cells[i]
		}
		values[i] = v
		if n := utf8.RuneCountInString(v); n > widths[i] {
			widths[i] = n
		}
	}
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &values)
}

func columnWidth(chars int) float64 {
	w := chars + 2
	if w < minColWidth {
		w = minColWidth
	}
	if w > maxColWidth {
		w = maxColWidth
	}
	return float64(w)
}
