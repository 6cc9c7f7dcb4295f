// Package textutil provides word wrapping for help text.
package textutil

import "strings"

// Wrap splits text into lines of at most width characters, breaking on
// whitespace. A single word longer than width is kept on its own line rather
// than split. Runs of whitespace collapse to a single space.
func Wrap(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() == 0 {
			line.WriteString(word)
			continue
		}
		if line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			continue
		}
		line.WriteString(" ")
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
