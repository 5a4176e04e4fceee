package resume

import "strings"

// bulletGlyph is the pre-formatted bullet marker some descriptions arrive with.
const bulletGlyph = "•"

// SegmentDescription converts one free-text description into an ordered list
// of short display statements. Source text arrives inconsistently formatted
// (already bulleted, dash-prefixed, or plain prose), so splitting is tried in
// priority order: bullet glyph, then leading dash, then sentence boundaries.
//
// Every fragment is trimmed and, unless it already ends in terminal
// punctuation, suffixed with a period. If splitting produces nothing from a
// non-empty input, the trimmed input is returned as a single statement.
// Empty input yields an empty list.
func SegmentDescription(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return []string{}
	}

	var parts []string
	switch {
	case strings.Contains(trimmed, bulletGlyph):
		parts = strings.Split(trimmed, bulletGlyph)
	case strings.HasPrefix(trimmed, "-"):
		parts = strings.Split(trimmed, "-")
	default:
		parts = strings.Split(trimmed, ". ")
	}

	details := make([]string, 0, len(parts))
	for _, part := range parts {
		fragment := strings.TrimSpace(part)
		if fragment == "" {
			continue
		}
		if !hasTerminalPunctuation(fragment) {
			fragment += "."
		}
		details = append(details, fragment)
	}

	if len(details) == 0 {
		return []string{trimmed}
	}
	return details
}

// hasTerminalPunctuation reports whether s ends in sentence-ending punctuation.
func hasTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") ||
		strings.HasSuffix(s, "!") ||
		strings.HasSuffix(s, "?") ||
		strings.HasSuffix(s, ":")
}
