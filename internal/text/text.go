// Package text cleans rich-text idea fields for display.
package text

import "regexp"

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripTags removes HTML/markup tags from text.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return tagPattern.ReplaceAllString(s, "")
}

// DefaultLimit leaves room for a bold label inside Slack's 3000-char
// section text ceiling.
const DefaultLimit = 2500

// Shorten truncates s to limit runes, appending an ellipsis when cut.
func Shorten(s string, limit int) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
