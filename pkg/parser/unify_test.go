package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

func TestUnify(t *testing.T) {
	var a, b, c models.DetailRecord
	a.Set(models.FieldCode, "16")
	a.Set(models.FieldBatch, "BATCH1")
	b.Set(models.FieldCode, "16")
	b.Set(models.FieldIndName, "JOHN")
	c.Set(models.FieldCode, "16")

	records := []models.DetailRecord{a, b, c}
	union := Unify(records)

	assert.Equal(t, []models.Field{models.FieldCode, models.FieldBatch, models.FieldIndName}, union.Fields())
	for _, r := range records {
		assert.Equal(t, union, r.Present())
	}
	assert.Equal(t, "BATCH1", records[0].Value(models.FieldBatch))
	assert.Equal(t, "", records[1].Value(models.FieldBatch))
	assert.Equal(t, "JOHN", records[1].Value(models.FieldIndName))
	assert.False(t, records[2].Has(models.FieldTraceNo), "fields absent everywhere stay absent")
}

func TestUnifyEmpty(t *testing.T) {
	assert.Equal(t, models.FieldSet(0), Unify(nil))
}
