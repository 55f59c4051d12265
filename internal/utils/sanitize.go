package utils

import (
	"html"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Sanitize trims surrounding whitespace and escapes HTML-significant
// characters (<, >, &, quotes) so stored text is inert when rendered.
func Sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// ValidEmail reports whether s looks like local@domain.tld with a 2+ letter
// TLD. Case is not normalized.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
