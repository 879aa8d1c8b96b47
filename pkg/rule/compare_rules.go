package rule

import "slices"

// Equals validates that the value matches the result of other. The provider
// is called on every evaluation so dependent rules always read the current
// state of the other value, never a cached one.
func Equals[T comparable](other func() T, message string) Rule[T] {
	return Rule[T]{
		Check: func(v T) bool {
			return v == other()
		},
		Message: message,
		Key:     "validation.match",
	}
}

// NotZero validates that a comparable value is not its zero value.
func NotZero[T comparable](message string) Rule[T] {
	return Rule[T]{
		Check: func(v T) bool {
			var zero T
			return v != zero
		},
		Message: message,
		Key:     "validation.required",
	}
}

func OneOf[T comparable](allowed []T, message string) Rule[T] {
	choices := slices.Clone(allowed)
	return Rule[T]{
		Check: func(v T) bool {
			return slices.Contains(choices, v)
		},
		Message: message,
		Key:     "validation.one_of",
	}
}
