package transform

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRegex = regexp.MustCompile(`\s+`)

// TrimSpace removes leading and trailing whitespace.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// Lowercase converts a string to lowercase.
func Lowercase(s string) string {
	return strings.ToLower(s)
}

// Uppercase converts a string to uppercase.
func Uppercase(s string) string {
	return strings.ToUpper(s)
}

// CollapseSpaces replaces runs of whitespace with a single space and trims
// the ends. Typed input like "John   Doe " becomes "John Doe".
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRegex.ReplaceAllString(s, " "))
}

// SingleLine folds a multi-line value into one line, collapsing the
// surrounding whitespace. Useful for fields fed from paste buffers.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return CollapseSpaces(s)
}

// StripControl removes control characters, keeping printable characters
// and common whitespace.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// Truncate limits a value to max runes. A non-positive max yields "".
func Truncate(max int) func(string) string {
	return func(s string) string {
		if max <= 0 {
			return ""
		}
		runes := []rune(s)
		if len(runes) <= max {
			return s
		}
		return string(runes[:max])
	}
}

// KeepDigits drops every rune that is not a digit. The usual shape for
// phone and verification-code fields.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// Slug lowercases a value and replaces runs of non-alphanumeric characters
// with single hyphens, for handle and username fields.
func Slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevDash = false
			continue
		}
		if !prevDash {
			b.WriteRune('-')
			prevDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}
