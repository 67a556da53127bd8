package sanitizex

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanSingleLine sanitizes a single-line string by normalizing Unicode, trimming whitespace,
// removing control characters, and collapsing internal whitespace to a single ASCII space.
// It is suitable for fields that should not contain newlines or tabs, such as names.
func CleanSingleLine(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r == '' || unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	// Collapse internal whitespace to a single ASCII space
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
		} else {
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}

// StripSpaces removes every whitespace rune. Mobile numbers are cleaned with
// this before validation so "98765 43210" and "9876543210" are the same input.
func StripSpaces(s string) string {
	if s == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
