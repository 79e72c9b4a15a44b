package ui

import "github.com/mattn/go-runewidth"

// truncateString cuts s to at most maxLen cells, ending with "…" when cut.
// Wide characters count as two cells.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}
