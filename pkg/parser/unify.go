package parser

import "github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"

// Unify gives every record the same field set. The first pass collects the
// union of present fields, the second sets each missing one to "". The
// union is returned.
func Unify(records []models.DetailRecord) models.FieldSet {
	var union models.FieldSet
	for _, r := range records {
		union = union.Union(r.Present())
	}

	for i := range records {
		for _, f := range union.Fields() {
			if !records[i].Has(f) {
				records[i].Set(f, "")
			}
		}
	}
	return union
}
