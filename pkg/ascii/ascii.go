// Package ascii provides box-drawing helpers for formatted terminal output
package ascii

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Box builds a box containing the provided lines and returns it as a string.
// Lines are left-aligned with single-space padding on each side. Multi-width
// runes are accounted for so the borders stay aligned.
func Box(lines []string) string {
	if len(lines) == 0 {
		return ""
	}

	trimmed := make([]string, len(lines))
	maxWidth := 0
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, " ")
		if w := runewidth.StringWidth(trimmed[i]); w > maxWidth {
			maxWidth = w
		}
	}

	leftPadding, rightPadding := 1, 1
	innerWidth := maxWidth + leftPadding + rightPadding
	border := strings.Repeat("─", innerWidth)

	var sb strings.Builder
	sb.WriteString("┌" + border + "┐\n")
	for _, line := range trimmed {
		lineWidth := runewidth.StringWidth(line)
		fill := innerWidth - leftPadding - rightPadding - lineWidth
		if fill < 0 {
			fill = 0
		}
		sb.WriteString("│ " + line + strings.Repeat(" ", fill) + " │\n")
	}
	sb.WriteString("└" + border + "┘\n")
	return sb.String()
}

// KeyValueLines renders label/value pairs with labels padded to a common
// display width, suitable for feeding into Box.
func KeyValueLines(pairs [][2]string) []string {
	maxLabel := 0
	for _, p := range pairs {
		if w := runewidth.StringWidth(p[0]); w > maxLabel {
			maxLabel = w
		}
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		pad := maxLabel - runewidth.StringWidth(p[0])
		lines = append(lines, p[0]+strings.Repeat(" ", pad)+"  "+p[1])
	}
	return lines
}
