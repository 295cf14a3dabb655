package plan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Plan lists feeds to convert in one run.
type Plan struct {
	Feeds []Feed `yaml:"feeds"`
}

type Feed struct {
	File   string `yaml:"file"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`
}

func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if len(p.Feeds) == 0 {
		return nil, fmt.Errorf("plan has no feeds")
	}

	base := filepath.Dir(path)
	for i := range p.Feeds {
		f := &p.Feeds[i]
		if f.File == "" {
			return nil, fmt.Errorf("feed %d: file is required", i+1)
		}
		if f.File, err = resolve(base, f.File); err != nil {
			return nil, err
		}
		if f.Output != "" {
			if f.Output, err = resolve(base, f.Output); err != nil {
				return nil, err
			}
		}
		f.Format = strings.ToLower(strings.TrimSpace(f.Format))
	}
	return &p, nil
}

// resolve expands a leading ~ and makes relative paths relative to the plan
// file's directory.
func resolve(base, p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", p, err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return p, nil
}

func (p *Plan) Print(w io.Writer) {
	for i, f := range p.Feeds {
		output, format := f.Output, f.Format
		if output == "" {
			output = "(default)"
		}
		if format == "" {
			format = "(default)"
		}
		fmt.Fprintf(w, "[%d] file=%s output=%s format=%s\n", i+1, f.File, output, format)
	}
}
