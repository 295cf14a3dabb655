package models

// HeaderField is a single key/value pair taken from a 01, 02 or 03 line.
// Keys are the record type followed by the 1-based position, e.g. "0202".
type HeaderField struct {
	Key   string
	Value string
}

// HeaderRecord keeps header fields in the order they were read.
type HeaderRecord struct {
	fields []HeaderField
}

func (h *HeaderRecord) Add(key, value string) {
	h.fields = append(h.fields, HeaderField{Key: key, Value: value})
}

func (h HeaderRecord) Get(key string) (string, bool) {
	for _, f := range h.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func (h HeaderRecord) Fields() []HeaderField {
	out := make([]HeaderField, len(h.fields))
	copy(out, h.fields)
	return out
}

func (h HeaderRecord) Keys() []string {
	out := make([]string, len(h.fields))
	for i, f := range h.fields {
		out[i] = f.Key
	}
	return out
}

func (h HeaderRecord) Values() []string {
	out := make([]string, len(h.fields))
	for i, f := range h.fields {
		out[i] = f.Value
	}
	return out
}

func (h HeaderRecord) Len() int {
	return len(h.fields)
}
