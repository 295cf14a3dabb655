package reconcile

// Package reconcile compares the batch a detail line names on its 16 line
// with the BATCH NUMBER carried in its continuation text. It is kept apart
// from the CLI and server so both can report the same numbers.

import (
	"strings"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

// Status is the outcome of comparing the two batch sources of one record.
//
//   - Agree:            both present and equal once whitespace is removed.
//   - Mismatch:         both present and different.
//   - LineOnly:         only Batch is present.
//   - ContinuationOnly: only BATCH NUMBER is present.
//   - Missing:          neither is present.
type Status int

const (
	Agree Status = iota
	Mismatch
	LineOnly
	ContinuationOnly
	Missing
)

var statusNames = map[Status]string{
	Agree:            "agree",
	Mismatch:         "mismatch",
	LineOnly:         "line-only",
	ContinuationOnly: "continuation-only",
	Missing:          "missing",
}

func (s Status) String() string {
	return statusNames[s]
}

// Entry links a record with its batch comparison.
type Entry struct {
	Index       int
	Batch       string
	BatchNumber string
	Status      Status
}

// Report holds one entry per detail record, in feed order.
type Report struct {
	Items  []Entry
	counts map[Status]int
}

// Build compares Batch and BATCH NUMBER on every record.
func Build(records []models.DetailRecord) *Report {
	items := make([]Entry, 0, len(records))
	counts := make(map[Status]int)

	for i, r := range records {
		batch, hasBatch := r.Get(models.FieldBatch)
		number, hasNumber := r.Get(models.FieldBatchNumber)
		batch, number = normalize(batch), normalize(number)
		hasBatch = hasBatch && batch != ""
		hasNumber = hasNumber && number != ""

		var status Status
		switch {
		case hasBatch && hasNumber && batch == number:
			status = Agree
		case hasBatch && hasNumber:
			status = Mismatch
		case hasBatch:
			status = LineOnly
		case hasNumber:
			status = ContinuationOnly
		default:
			status = Missing
		}

		items = append(items, Entry{Index: i, Batch: batch, BatchNumber: number, Status: status})
		counts[status]++
	}

	return &Report{Items: items, counts: counts}
}

// Count returns how many records ended with status s.
func (r *Report) Count(s Status) int {
	return r.counts[s]
}

// Mismatches returns the entries whose two batch sources disagree.
func (r *Report) Mismatches() []Entry {
	var out []Entry
	for _, e := range r.Items {
		if e.Status == Mismatch {
			out = append(out, e)
		}
	}
	return out
}

func normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
