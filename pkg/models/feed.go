package models

// Feed is the parsed form of one reconciliation file.
type Feed struct {
	Header  HeaderRecord
	Details []DetailRecord
	// Schema is the union of fields present on any detail record.
	Schema FieldSet
}

// RecordFilter selects detail records for output.
type RecordFilter func(DetailRecord) bool

// Select returns the records accepted by filter. A nil filter keeps everything.
func Select(records []DetailRecord, filter RecordFilter) []DetailRecord {
	if filter == nil {
		return records
	}
	out := make([]DetailRecord, 0, len(records))
	for _, r := range records {
		if filter(r) {
			out = append(out, r)
		}
	}
	return out
}
