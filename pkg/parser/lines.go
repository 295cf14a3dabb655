package parser

import "strings"

// NormalizeLines converts CRLF and CR line endings to LF and splits the
// text into its non-empty lines, keeping their order.
func NormalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
