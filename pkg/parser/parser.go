package parser

import (
	"github.com/charmbracelet/log"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

type Parser struct {
	logger *log.Logger
	rules  []Rule
}

func New(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.Default()
	}
	return &Parser{
		logger: logger,
		rules:  DefaultRules(),
	}
}

// Parse converts a raw feed into a header and a set of unified detail
// records. It never fails: short lines and unknown record types degrade to
// empty or absent fields.
func (p *Parser) Parse(data []byte) *models.Feed {
	lines := NormalizeLines(string(data))
	p.logger.Debug("normalized feed", "lines", len(lines))

	header := ParseHeader(lines)

	state := assembly{}
	for _, line := range lines {
		state = p.step(state, line)
	}
	state = p.finish(state)
	if state.ignored > 0 {
		p.logger.Debug("ignored lines outside detail records", "count", state.ignored)
	}

	schema := Unify(state.records)
	p.logger.Debug("parsed feed",
		"header_fields", header.Len(),
		"records", len(state.records),
		"columns", schema.Len())

	return &models.Feed{
		Header:  header,
		Details: state.records,
		Schema:  schema,
	}
}
