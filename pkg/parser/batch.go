package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

var (
	keyedBatch = regexp.MustCompile(`BATCH NUMBER=BATCH([0-9]+)`)
	bareBatch  = regexp.MustCompile(`BATCH([0-9]+)`)
)

type batchNumberRule struct{}

// BatchNumberRule recovers BATCH NUMBER from continuation text.
//
// The keyed form "BATCH NUMBER=BATCH<digits>" wins; failing that the first
// bare "BATCH<digits>" is used. In both cases the digits must end at
// whitespace, a comma, "SETT" or the end of the text. When the batch id was
// split across a continuation line, the digit run that follows it is
// appended.
func BatchNumberRule() Rule {
	return batchNumberRule{}
}

func (batchNumberRule) Name() string        { return "batch_number" }
func (batchNumberRule) Field() models.Field { return models.FieldBatchNumber }

func (batchNumberRule) Extract(text string) (string, bool) {
	digits, ok := firstBounded(keyedBatch, text)
	if ok {
		digits = strings.TrimSpace(digits)
	} else {
		digits, ok = firstBounded(bareBatch, text)
		if !ok {
			return "", false
		}
		digits = strings.ReplaceAll(digits, " ", "")
	}

	value := batchPrefix + digits
	return joinSplitBatch(text, value), true
}

// joinSplitBatch appends the digit run that follows value, if any.
func joinSplitBatch(text, value string) string {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(value) + `\s+([0-9]+)`)
	tail, ok := firstBounded(re, text)
	if !ok {
		return value
	}
	return value + tail
}

// firstBounded returns the first submatch of re whose match is followed by
// a batch boundary.
func firstBounded(re *regexp.Regexp, text string) (string, bool) {
	for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
		if atBatchBoundary(text, m[1]) {
			return text[m[2]:m[3]], true
		}
	}
	return "", false
}

func atBatchBoundary(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	if text[i] == ',' || strings.HasPrefix(text[i:], "SETT") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r)
}
