package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

const (
	detailPrefix       = "16,"
	continuationPrefix = "88,"
	batchPrefix        = "BATCH"
)

// assembly is the fold state threaded through the feed lines.
type assembly struct {
	records []models.DetailRecord

	current models.DetailRecord
	open    bool

	// pending holds the 88 payloads of the open record, each followed by a space.
	pending string

	ignored int
}

// step consumes one line and returns the next state.
func (p *Parser) step(s assembly, line string) assembly {
	line = strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(line, detailPrefix):
		if s.open {
			s = p.flush(s)
		}
		s.current = openRecord(line)
		s.open = true
		s.pending = ""

	case strings.HasPrefix(line, continuationPrefix) && s.open:
		s.pending += line[len(continuationPrefix):] + " "

	default:
		s.ignored++
	}

	return s
}

// finish flushes the record still open at end of input.
func (p *Parser) finish(s assembly) assembly {
	if s.open {
		s = p.flush(s)
	}
	return s
}

// flush applies the pending continuation text to the open record and
// appends it to the output.
func (p *Parser) flush(s assembly) assembly {
	rec := s.current
	if s.pending != "" {
		p.extract(&rec, s.pending)
	}
	s.records = append(s.records, rec)
	s.current = models.DetailRecord{}
	s.open = false
	s.pending = ""
	return s
}

// openRecord builds a detail record from the positional fields of a 16 line.
//
// Two upstream layouts share the record type. When the fourth field starts
// with a letter it is a type label and the batch sits at index 7; otherwise
// the fourth field is the account reference and the batch is the first
// BATCH-prefixed field from index 3 on.
func openRecord(line string) models.DetailRecord {
	parts := strings.Split(line, ",")

	var rec models.DetailRecord
	rec.Set(models.FieldCode, parts[0])
	rec.Set(models.FieldTransactionCode, field(parts, 1))
	rec.Set(models.FieldAmount, field(parts, 2))

	if len(parts) > 3 && startsWithLetter(parts[3]) {
		rec.Set(models.Field1604, parts[3])
		rec.Set(models.Field1605, field(parts, 4))
		if len(parts) > 7 {
			rec.Set(models.FieldBatch, parts[7])
		}
		return rec
	}

	rec.Set(models.Field1604, "")
	rec.Set(models.Field1605, field(parts, 3))

	if len(parts) > 4 && strings.HasPrefix(parts[4], batchPrefix) {
		rec.Set(models.FieldBatch, parts[4])
		return rec
	}
	for _, part := range parts[min(3, len(parts)):] {
		if strings.HasPrefix(part, batchPrefix) {
			rec.Set(models.FieldBatch, part)
			break
		}
	}
	return rec
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}
