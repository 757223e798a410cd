package tui

import "github.com/charmbracelet/x/ansi"

// truncate shortens text to max display cells, ellipsis included.
// Width-aware so styled strings don't count their escape codes.
func truncate(text string, maxWidth int) string {
	if ansi.StringWidth(text) <= maxWidth {
		return text
	}
	return ansi.Truncate(text, maxWidth, "…")
}
