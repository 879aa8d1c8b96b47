package rule

import (
	"net/mail"
	"regexp"
	"strings"
)

// NotEmpty validates that a string is not empty after trimming whitespace.
func NotEmpty(message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return strings.TrimSpace(v) != ""
		},
		Message: message,
		Key:     "validation.required",
	}
}

func MinLen(min int, message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return len(v) >= min
		},
		Message: message,
		Key:     "validation.min_length",
		Values: map[string]any{
			"min": min,
		},
	}
}

func MaxLen(max int, message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return len(v) <= max
		},
		Message: message,
		Key:     "validation.max_length",
		Values: map[string]any{
			"max": max,
		},
	}
}

func LenBetween(min, max int, message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return len(v) >= min && len(v) <= max
		},
		Message: message,
		Key:     "validation.length_between",
		Values: map[string]any{
			"min": min,
			"max": max,
		},
	}
}

// Match validates a string against a compiled pattern. Empty strings fail;
// combine with NotEmpty when a distinct required-message is wanted first.
func Match(re *regexp.Regexp, message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			return v != "" && re.MatchString(v)
		},
		Message: message,
		Key:     "validation.pattern",
		Values: map[string]any{
			"pattern": re.String(),
		},
	}
}

// EmailAddress validates that a string parses as an RFC 5322 address with a
// dotted domain, which is what web forms actually want.
func EmailAddress(message string) Rule[string] {
	return Rule[string]{
		Check: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return false
			}
			addr, err := mail.ParseAddress(v)
			if err != nil {
				return false
			}
			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}
			domain := parts[1]
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Message: message,
		Key:     "validation.email",
	}
}
