package models

import "strings"

// Field identifies one column of a detail record.
type Field int

const (
	FieldCode Field = iota
	FieldTransactionCode
	FieldAmount
	Field1604
	Field1605
	FieldBatch
	FieldDFIBank
	FieldDFIAcct
	FieldIndIDNo
	FieldIndName
	FieldTraceNo
	FieldBatchNumber
	FieldSettBankRef
	FieldSettCustRef
	FieldSettAmount

	numFields
)

var fieldNames = [numFields]string{
	"Code",
	"Transaction Code_02",
	"Amount_03",
	"16_04",
	"16_05",
	"Batch",
	"DFI BANK",
	"DFI ACCT",
	"IND ID NO",
	"IND NAME",
	"TRACE NO",
	"BATCH NUMBER",
	"SETT BANKREF",
	"SETT CUSTREF",
	"SETT AMOUNT",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return ""
	}
	return fieldNames[f]
}

// Fields returns every detail field in output column order.
func Fields() []Field {
	out := make([]Field, numFields)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// Columns returns the detail column names in output order.
func Columns() []string {
	out := make([]string, numFields)
	copy(out, fieldNames[:])
	return out
}

// FieldByName looks up a field by its column name.
func FieldByName(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

// FieldSet is a bit set of fields.
type FieldSet uint32

func (s FieldSet) Has(f Field) bool {
	return s&(1<<uint(f)) != 0
}

func (s FieldSet) With(f Field) FieldSet {
	return s | 1<<uint(f)
}

func (s FieldSet) Union(o FieldSet) FieldSet {
	return s | o
}

// Fields lists the members of the set in column order.
func (s FieldSet) Fields() []Field {
	var out []Field
	for f := Field(0); f < numFields; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Len reports how many fields are in the set.
func (s FieldSet) Len() int {
	n := 0
	for f := Field(0); f < numFields; f++ {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// DetailRecord is one 16 line plus its 88 continuations. Every field is
// either present (possibly with an empty value) or absent.
type DetailRecord struct {
	values  [numFields]string
	present FieldSet
}

// Set stores a value and marks the field present.
func (r *DetailRecord) Set(f Field, value string) {
	if f < 0 || f >= numFields {
		return
	}
	r.values[f] = value
	r.present = r.present.With(f)
}

// Get returns the value of f and whether it was ever set.
func (r DetailRecord) Get(f Field) (string, bool) {
	if !r.present.Has(f) {
		return "", false
	}
	return r.values[f], true
}

// Value returns the value of f, or "" when absent.
func (r DetailRecord) Value(f Field) string {
	v, _ := r.Get(f)
	return v
}

func (r DetailRecord) Has(f Field) bool {
	return r.present.Has(f)
}

// Present returns the set of fields that have been assigned.
func (r DetailRecord) Present() FieldSet {
	return r.present
}

// Cells renders the record as one output row. Absent fields become "" and
// every cell except IND NAME has its whitespace removed.
func (r DetailRecord) Cells() []string {
	cells := make([]string, numFields)
	for f := Field(0); f < numFields; f++ {
		v := r.values[f]
		if !r.present.Has(f) {
			v = ""
		}
		if f != FieldIndName {
			v = stripSpace(v)
		}
		cells[f] = v
	}
	return cells
}

// Map returns the present fields keyed by column name.
func (r DetailRecord) Map() map[string]string {
	m := make(map[string]string, r.present.Len())
	for _, f := range r.present.Fields() {
		m[f.String()] = r.values[f]
	}
	return m
}

func stripSpace(s string) string {
	if s == "" {
		return s
	}
	return strings.Join(strings.Fields(s), "")
}
