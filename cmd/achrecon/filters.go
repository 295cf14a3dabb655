package main

import (
	"strings"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

type filters struct {
	batch           string
	code            string
	transactionCode string
}

func (f *filters) empty() bool {
	return f.batch == "" && f.code == "" && f.transactionCode == ""
}

// toFilterFunc returns nil when no filter flag was given.
func (f *filters) toFilterFunc() models.RecordFilter {
	if f == nil || f.empty() {
		return nil
	}
	batch := squash(f.batch)
	return func(r models.DetailRecord) bool {
		if f.code != "" && r.Value(models.FieldCode) != f.code {
			return false
		}
		if f.transactionCode != "" && r.Value(models.FieldTransactionCode) != f.transactionCode {
			return false
		}
		if batch != "" &&
			!strings.Contains(squash(r.Value(models.FieldBatch)), batch) &&
			!strings.Contains(squash(r.Value(models.FieldBatchNumber)), batch) {
			return false
		}
		return true
	}
}

func squash(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}
