package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Truncate clamps a single line to the given display width, appending
// an ellipsis when it was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return ansi.Cut(s, 0, width)
	}
	return ansi.Cut(s, 0, width-1) + "…"
}

// ClampLinesToWidth cuts every line of a block to the given display
// width without rewrapping.
func ClampLinesToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if ansi.StringWidth(ln) <= width {
			continue
		}
		lines[i] = ansi.Cut(ln, 0, width)
	}
	return strings.Join(lines, "\n")
}
