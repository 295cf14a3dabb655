package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// Record is anything that renders to one row of cells.
type Record interface {
	Cells() []string
}

type FilterFunc[T Record] func(T) bool

// Write emits the column header and one row per record accepted by filter.
func Write[T Record](w io.Writer, columns []string, records []T, filter FilterFunc[T]) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i, r := range records {
		if filter != nil && !filter(r) {
			continue
		}
		if err := cw.Write(r.Cells()); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Create is Write into a byte slice.
func Create[T Record](columns []string, records []T, filter FilterFunc[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, columns, records, filter); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
