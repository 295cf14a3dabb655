package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

func record(batch, number *string) models.DetailRecord {
	var r models.DetailRecord
	r.Set(models.FieldCode, "16")
	if batch != nil {
		r.Set(models.FieldBatch, *batch)
	}
	if number != nil {
		r.Set(models.FieldBatchNumber, *number)
	}
	return r
}

func str(s string) *string { return &s }

func TestBuild(t *testing.T) {
	records := []models.DetailRecord{
		record(str("BATCH553"), str("BATCH 553")),
		record(str("BATCH553"), str("BATCH554")),
		record(str("BATCH1"), nil),
		record(nil, str("BATCH2")),
		record(nil, nil),
		record(str(""), str("")),
	}

	report := Build(records)

	want := []Status{Agree, Mismatch, LineOnly, ContinuationOnly, Missing, Missing}
	assert.Len(t, report.Items, len(want))
	for i, s := range want {
		assert.Equal(t, s, report.Items[i].Status, "record %d", i)
		assert.Equal(t, i, report.Items[i].Index)
	}

	assert.Equal(t, 1, report.Count(Agree))
	assert.Equal(t, 1, report.Count(Mismatch))
	assert.Equal(t, 2, report.Count(Missing))

	mismatches := report.Mismatches()
	if assert.Len(t, mismatches, 1) {
		assert.Equal(t, "BATCH553", mismatches[0].Batch)
		assert.Equal(t, "BATCH554", mismatches[0].BatchNumber)
	}
}

func TestBuildEmpty(t *testing.T) {
	report := Build(nil)
	assert.Empty(t, report.Items)
	assert.Equal(t, 0, report.Count(Agree))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "continuation-only", ContinuationOnly.String())
	assert.Equal(t, "agree", Agree.String())
}
