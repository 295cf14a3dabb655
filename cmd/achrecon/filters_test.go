package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

func TestFiltersToFilterFunc(t *testing.T) {
	var r models.DetailRecord
	r.Set(models.FieldCode, "16")
	r.Set(models.FieldTransactionCode, "165")
	r.Set(models.FieldBatchNumber, "BATCH 553")

	assert.Nil(t, (&filters{}).toFilterFunc())

	tests := []struct {
		name string
		f    filters
		want bool
	}{
		{"code match", filters{code: "16"}, true},
		{"code miss", filters{code: "88"}, false},
		{"transaction code", filters{transactionCode: "165"}, true},
		{"transaction code miss", filters{transactionCode: "475"}, false},
		{"batch ignores spacing and case", filters{batch: "batch553"}, true},
		{"batch miss", filters{batch: "BATCH9"}, false},
		{"all", filters{code: "16", transactionCode: "165", batch: "553"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.toFilterFunc()(r))
		})
	}
}
