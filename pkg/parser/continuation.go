package parser

import (
	"regexp"
	"strings"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

// Rule extracts one field from the continuation text of a detail record.
type Rule interface {
	Name() string
	Field() models.Field
	Extract(text string) (string, bool)
}

// DefaultRules returns the extraction rules applied to every record, in the
// order they run.
func DefaultRules() []Rule {
	return []Rule{
		IndNameRule(),
		KeyValueRule(models.FieldDFIBank, "DFI BANK"),
		KeyValueRule(models.FieldDFIAcct, "DFI ACCT"),
		KeyValueRule(models.FieldIndIDNo, "IND ID NO"),
		KeyValueRule(models.FieldTraceNo, "TRACE NO"),
		BatchNumberRule(),
		KeyValueRule(models.FieldSettBankRef, "SETT BANKREF"),
		SettCustRefRule(),
		SettAmountRule(),
	}
}

// extract runs every rule over the continuation text and stores matches on rec.
func (p *Parser) extract(rec *models.DetailRecord, text string) {
	text = strings.TrimSpace(strings.ReplaceAll(text, continuationPrefix, " "))
	for _, rule := range p.rules {
		value, ok := rule.Extract(text)
		if !ok {
			continue
		}
		rec.Set(rule.Field(), value)
	}
}

// patternRule captures the first submatch of re.
type patternRule struct {
	name  string
	field models.Field
	re    *regexp.Regexp

	// flatten replaces stray 88 markers and line breaks before matching.
	flatten bool
	clean   func(string) string
}

func (r *patternRule) Name() string        { return r.name }
func (r *patternRule) Field() models.Field { return r.field }

func (r *patternRule) Extract(text string) (string, bool) {
	if r.flatten {
		text = flattenText(text)
	}
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if r.clean != nil {
		value = r.clean(value)
	}
	return value, true
}

// KeyValueRule matches "KEY=" and captures up to the next comma.
func KeyValueRule(field models.Field, key string) Rule {
	return &patternRule{
		name:  strings.ToLower(strings.ReplaceAll(key, " ", "_")),
		field: field,
		re:    regexp.MustCompile(regexp.QuoteMeta(key+"=") + `([^,]+)`),
	}
}

// IndNameRule is a key/value rule for IND NAME that also drops the "88"
// fragments left behind when a name wraps onto a continuation line.
func IndNameRule() Rule {
	return &patternRule{
		name:  "ind_name",
		field: models.FieldIndName,
		re:    regexp.MustCompile(`IND NAME=([^,]+)`),
		clean: func(v string) string {
			return strings.ReplaceAll(v, "88", "")
		},
	}
}

// SettCustRefRule captures the customer reference, which may run directly
// into SETT AMOUNT without a separating comma.
func SettCustRefRule() Rule {
	return &patternRule{
		name:    "sett_custref",
		field:   models.FieldSettCustRef,
		re:      regexp.MustCompile(`SETT CUSTREF=([^,]+?)(?:SETT AMOUNT|$)`),
		flatten: true,
	}
}

func SettAmountRule() Rule {
	return &patternRule{
		name:    "sett_amount",
		field:   models.FieldSettAmount,
		re:      regexp.MustCompile(`SETT AMOUNT=([0-9.]+)`),
		flatten: true,
	}
}

var lineBreaks = strings.NewReplacer(continuationPrefix, " ", "\n", " ", "\r", " ")

func flattenText(text string) string {
	return lineBreaks.Replace(text)
}
