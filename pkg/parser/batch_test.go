package parser

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchNumberRule(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "keyed", text: "TRACE NO=1,BATCH NUMBER=BATCH42,SETT AMOUNT=1", want: "BATCH42", wantOK: true},
		{name: "keyed at end", text: "BATCH NUMBER=BATCH42", want: "BATCH42", wantOK: true},
		{name: "keyed before SETT", text: "BATCH NUMBER=BATCH42SETT BANKREF=X", want: "BATCH42", wantOK: true},
		{name: "split across lines", text: "IND NAME=JOHN DOE,DFI BANK=001,BATCH NUMBER=BATCH55 3", want: "BATCH553", wantOK: true},
		{name: "split with comma after tail", text: "BATCH NUMBER=BATCH12 34,TRACE NO=9", want: "BATCH1234", wantOK: true},
		{name: "bare fallback", text: "REF BATCH77 SETT AMOUNT=5", want: "BATCH77", wantOK: true},
		{name: "bare fallback joins split", text: "REF BATCH77  01", want: "BATCH7701", wantOK: true},
		{name: "keyed beats earlier bare", text: "BATCH9 X,BATCH NUMBER=BATCH10", want: "BATCH10", wantOK: true},
		{name: "keyed without boundary falls back", text: "BATCH NUMBER=BATCH12X BATCH34", want: "BATCH34", wantOK: true},
		{name: "tail without boundary is ignored", text: "BATCH NUMBER=BATCH12 34X", want: "BATCH12", wantOK: true},
		{name: "no digits", text: "BATCH NUMBER=BATCHXYZ", wantOK: false},
		{name: "no boundary anywhere", text: "BATCH NUMBER=BATCH12X", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	rule := BatchNumberRule()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rule.Extract(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBatchNumberIsPrefixAndDigits(t *testing.T) {
	shape := regexp.MustCompile(`^BATCH[0-9]+$`)
	inputs := []string{
		"BATCH NUMBER=BATCH55 3",
		"BATCH NUMBER=BATCH1 2 3",
		"X BATCH000 77,",
		"BATCH NUMBER=BATCH9SETT",
	}

	rule := BatchNumberRule()
	for _, in := range inputs {
		got, ok := rule.Extract(in)
		if assert.True(t, ok, in) {
			assert.Regexp(t, shape, got, in)
		}
	}
}

func TestAtBatchBoundary(t *testing.T) {
	text := "12 34,56SETT7x"
	assert.True(t, atBatchBoundary(text, 2))
	assert.True(t, atBatchBoundary(text, 5))
	assert.True(t, atBatchBoundary(text, 8))
	assert.True(t, atBatchBoundary(text, len(text)))
	assert.False(t, atBatchBoundary(text, 1))
	assert.False(t, atBatchBoundary(text, 13))
}
