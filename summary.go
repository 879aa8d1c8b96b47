package formkit

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Summary collects the failure messages of a form's invalid fields.
// It's based on url.Values to leverage built-in string slice handling.
type Summary url.Values

// Summarize builds a summary from the form's current state. Fields without
// failures are absent.
func Summarize(f *form.Form) Summary {
	s := make(Summary)
	for name, messages := range f.Errors() {
		for _, m := range messages {
			url.Values(s).Add(name, m)
		}
	}
	return s
}

// Error implements the error interface so a summary can travel as an error
// value through rendering layers. Fields are listed in name order.
func (s Summary) Error() string {
	if len(s) == 0 {
		return "validation failed"
	}

	fields := s.Fields()
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := s[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Fields returns the field names present in the summary, sorted.
func (s Summary) Fields() []string {
	fields := make([]string, 0, len(s))
	for field := range s {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}

// Get returns the first message for a field.
func (s Summary) Get(field string) string {
	return url.Values(s).Get(field)
}

// Has checks if a field has any messages.
func (s Summary) Has(field string) bool {
	return len(s[field]) > 0
}

// IsEmpty returns true if there are no messages.
func (s Summary) IsEmpty() bool {
	return len(s) == 0
}

// FirstError returns the first failure message of the first invalid field
// in attach order, or "" when the form is valid.
func FirstError(f *form.Form) string {
	for _, m := range f.Members() {
		if m.IsValid() {
			continue
		}
		if errs := m.Errors(); len(errs) > 0 {
			return errs[0]
		}
	}
	return ""
}
