package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks s into lines no wider than width display cells,
// breaking on spaces. Words wider than the limit are split hard.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if w > width {
			for _, part := range splitWord(word, width) {
				if lineWidth > 0 {
					lines = append(lines, line.String())
					line.Reset()
					lineWidth = 0
				}
				line.WriteString(part)
				lineWidth = runewidth.StringWidth(part)
			}
			continue
		}
		if lineWidth > 0 {
			line.WriteString(" ")
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func splitWord(word string, width int) []string {
	var parts []string
	var part strings.Builder
	partWidth := 0
	for _, r := range word {
		w := runewidth.RuneWidth(r)
		if partWidth+w > width && part.Len() > 0 {
			parts = append(parts, part.String())
			part.Reset()
			partWidth = 0
		}
		part.WriteRune(r)
		partWidth += w
	}
	if part.Len() > 0 {
		parts = append(parts, part.String())
	}
	return parts
}
