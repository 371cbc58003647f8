package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateString truncates a string to the given width, appending "…" if
// truncated. It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= maxLen {
		return s
	}

	// Iterate by runes to find cut point
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > maxLen-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}

// padCell left-aligns s inside a cell of the given width, truncating when
// needed. Width math uses runewidth so wide characters don't break the grid.
func padCell(s string, width int) string {
	s = truncateString(s, width)
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
