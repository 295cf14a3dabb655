package service

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/config"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/csv"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/parser"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/summary"
	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/xlsx"
)

// feedExtensions are the file extensions picked up by ProcessDirectory.
var feedExtensions = []string{".txt", ".bai", ".bai2"}

type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
	filter models.RecordFilter
	now    func() time.Time
}

// Result describes one converted feed.
type Result struct {
	Input   string
	Output  string
	Feed    *models.Feed
	Summary *summary.Summary
}

func NewProcessor(cfg *config.Config, logger *log.Logger) *Processor {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{
		config: cfg,
		logger: logger,
		parser: parser.New(logger),
		now:    time.Now,
	}
}

// WithFilter restricts which detail rows are written. Parsing and the
// summary always see every record.
func (p *Processor) WithFilter(filter models.RecordFilter) *Processor {
	p.filter = filter
	return p
}

// Parse converts raw feed bytes, such as an upload, without touching disk.
func (p *Processor) Parse(data []byte) *models.Feed {
	return p.parser.Parse(data)
}

// Load reads and parses one feed.
func (p *Processor) Load(inputPath string) (*models.Feed, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, &SourceError{Path: inputPath, Err: err}
	}
	return p.parser.Parse(data), nil
}

// ProcessFile converts inputPath and writes the result. An empty outputPath
// is derived from the configured output directory and name pattern; an
// empty format uses the configured one.
func (p *Processor) ProcessFile(inputPath, outputPath, format string) (*Result, error) {
	feed, err := p.Load(inputPath)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = p.config.Format
	}
	if outputPath == "" {
		outputPath = p.determineOutputPath(inputPath, format)
	}

	var buf bytes.Buffer
	if err := p.Write(&buf, feed, format); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", inputPath, err)
	}
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write output file: %w", err)
	}

	p.logger.Info("converted feed", "input", inputPath, "output", outputPath, "records", len(feed.Details))
	return &Result{
		Input:   inputPath,
		Output:  outputPath,
		Feed:    feed,
		Summary: summary.Build(feed),
	}, nil
}

// ProcessDirectory converts every feed file in dir, in name order. A file
// that fails is logged and skipped.
func (p *Processor) ProcessDirectory(dir string) ([]*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var results []*Result
	for _, entry := range entries {
		if entry.IsDir() || !IsFeedFile(entry.Name()) {
			continue
		}
		res, err := p.ProcessFile(filepath.Join(dir, entry.Name()), "", "")
		if err != nil {
			p.logger.Error("failed to process entry", "file", entry.Name(), "error", err)
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

// Write renders feed to w in the given format.
func (p *Processor) Write(w io.Writer, feed *models.Feed, format string) error {
	records := models.Select(feed.Details, p.filter)

	switch strings.ToLower(format) {
	case config.FormatXLSX:
		return xlsx.New(p.config.HeaderSheet, p.config.DetailSheet).Write(w, feed.Header, records)
	case config.FormatCSV:
		return csv.Write[models.DetailRecord](w, models.Columns(), records, nil)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// IsFeedFile reports whether name has one of the feed extensions.
func IsFeedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range feedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// determineOutputPath expands the output name pattern. Supported
// placeholders are {name}, {timestamp} and {uuid}.
func (p *Processor) determineOutputPath(inputPath, format string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	fileName := strings.NewReplacer(
		"{name}", name,
		"{timestamp}", p.now().Format("20060102_150405"),
		"{uuid}", uuid.New().String(),
	).Replace(p.config.OutputName)

	ext := "." + strings.ToLower(format)
	if !strings.EqualFold(filepath.Ext(fileName), ext) {
		fileName += ext
	}

	dir := p.config.GetOutputPath()
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, fileName)
}
