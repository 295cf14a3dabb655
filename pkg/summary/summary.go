package summary

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/reconcile"
)

// Summary holds control totals for one parsed feed. Amounts are summed in
// the units they appear in the feed.
type Summary struct {
	Records      int
	HeaderFields int
	Columns      int
	ByCode       map[string]int
	AmountTotal  decimal.Decimal
	SettTotal    decimal.Decimal
	// Skipped counts amount cells that were present but not numeric.
	Skipped      int
	Batches      []string
	Reconcile    *reconcile.Report
}

func Build(feed *models.Feed) *Summary {
	s := &Summary{
		Records:      len(feed.Details),
		HeaderFields: feed.Header.Len(),
		Columns:      feed.Schema.Len(),
		ByCode:       make(map[string]int),
		AmountTotal:  decimal.Zero,
		SettTotal:    decimal.Zero,
		Reconcile:    reconcile.Build(feed.Details),
	}

	batches := make(map[string]struct{})
	for _, r := range feed.Details {
		cells := r.Cells()

		if code := cells[models.FieldTransactionCode]; code != "" {
			s.ByCode[code]++
		}
		s.AmountTotal = s.add(s.AmountTotal, cells[models.FieldAmount])
		s.SettTotal = s.add(s.SettTotal, cells[models.FieldSettAmount])

		for _, b := range []string{cells[models.FieldBatch], cells[models.FieldBatchNumber]} {
			if b != "" {
				batches[strings.ToUpper(b)] = struct{}{}
			}
		}
	}

	for b := range batches {
		s.Batches = append(s.Batches, b)
	}
	sort.Strings(s.Batches)
	return s
}

func (s *Summary) add(total decimal.Decimal, cell string) decimal.Decimal {
	if cell == "" {
		return total
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		s.Skipped++
		return total
	}
	return total.Add(d)
}

// Codes returns the transaction codes seen, sorted.
func (s *Summary) Codes() []string {
	codes := make([]string, 0, len(s.ByCode))
	for c := range s.ByCode {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
)

// Render writes a human-readable summary to w.
func (s *Summary) Render(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))

	row := func(label string, value any) {
		fmt.Fprintf(w, "  %s %v\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), value)
	}
	row("records", s.Records)
	row("header fields", s.HeaderFields)
	row("columns", s.Columns)
	for _, c := range s.Codes() {
		row("code "+c, s.ByCode[c])
	}
	row("amount total", s.AmountTotal.String())
	row("sett total", s.SettTotal.String())
	row("batches", len(s.Batches))
	if s.Skipped > 0 {
		row("skipped", warnStyle.Render(fmt.Sprint(s.Skipped)))
	}

	if n := s.Reconcile.Count(reconcile.Mismatch); n > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("  %d record(s) with conflicting batch numbers", n)))
		for _, e := range s.Reconcile.Mismatches() {
			fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("    ! record %d: %s vs %s", e.Index+1, e.Batch, e.BatchNumber)))
		}
	} else {
		fmt.Fprintln(w, okStyle.Render("  batch numbers consistent"))
	}
}
