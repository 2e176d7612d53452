package foodlist

import "strings"

// Parse splits free text into food item tokens. OCR output arrives with items
// spread across lines, manual entry as one comma-separated line, so the text
// is split on line breaks first and then on commas. Tokens are trimmed and
// empty ones dropped; input order is preserved.
func Parse(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		for _, item := range strings.Split(line, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

// Join renders items back into the comma-separated buffer format the food
// input form edits.
func Join(items []string) string {
	return strings.Join(items, ", ")
}
