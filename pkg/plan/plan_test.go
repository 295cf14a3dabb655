package plan

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := writePlan(t, `
feeds:
  - file: feeds/march.txt
    output: out/march.xlsx
  - file: ~/april.bai
    format: CSV
  - file: /abs/may.txt
`)

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p.Feeds, 3)

	base := filepath.Dir(path)
	assert.Equal(t, filepath.Join(base, "feeds/march.txt"), p.Feeds[0].File)
	assert.Equal(t, filepath.Join(base, "out/march.xlsx"), p.Feeds[0].Output)
	assert.Equal(t, filepath.Join(home, "april.bai"), p.Feeds[1].File)
	assert.Equal(t, "csv", p.Feeds[1].Format)
	assert.Equal(t, "/abs/may.txt", p.Feeds[2].File)
	assert.Empty(t, p.Feeds[2].Output)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no feeds", "feeds: []\n"},
		{"missing file", "feeds:\n  - output: x.csv\n"},
		{"bad yaml", "feeds: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writePlan(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPrint(t *testing.T) {
	p := &Plan{Feeds: []Feed{{File: "/a.txt", Format: "csv"}}}
	var buf bytes.Buffer
	p.Print(&buf)
	assert.Equal(t, "[1] file=/a.txt output=(default) format=csv\n", buf.String())
}
