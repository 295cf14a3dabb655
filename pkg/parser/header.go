package parser

import (
	"fmt"
	"strings"

	"github.com/Kushalsathe123/Bentex-Group-assesment/pkg/models"
)

// headerLayouts lists the header record types and how many leading fields
// of each are kept.
var headerLayouts = []struct {
	code  string
	width int
}{
	{code: "01", width: 4},
	{code: "02", width: 5},
	{code: "03", width: 3},
}

// ParseHeader reads the first 01, 02 and 03 line of the feed. Later
// duplicates are ignored and a missing type contributes no keys.
func ParseHeader(lines []string) models.HeaderRecord {
	var header models.HeaderRecord
	for _, layout := range headerLayouts {
		line, ok := firstWithPrefix(lines, layout.code+",")
		if !ok {
			continue
		}
		parts := strings.Split(line, ",")
		for i := 0; i < layout.width; i++ {
			header.Add(fmt.Sprintf("%s%02d", layout.code, i+1), field(parts, i))
		}
	}
	return header
}

func firstWithPrefix(lines []string, prefix string) (string, bool) {
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			return l, true
		}
	}
	return "", false
}

// field returns parts[i], or "" when the line is too short.
func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
