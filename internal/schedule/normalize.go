package schedule

import "strings"

const wideGap = "                    " // 20 spaces, the page's indentation unit

// NormalizeText strips layout noise from a scraped text fragment: line
// breaks, the page's 20-space indentation runs and double spaces. Each
// replacement is a single non-overlapping left-to-right pass, so a run of
// three spaces keeps one space behind.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\n", "")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, wideGap, "")
	return strings.ReplaceAll(text, "  ", "")
}
