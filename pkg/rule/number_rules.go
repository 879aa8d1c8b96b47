package rule

// Min validates that a numeric value is at least min.
func Min[T Numeric](min T, message string) Rule[T] {
	return Rule[T]{
		Check: func(v T) bool {
			return v >= min
		},
		Message: message,
		Key:     "validation.min",
		Values: map[string]any{
			"min": min,
		},
	}
}

// Max validates that a numeric value is at most max.
func Max[T Numeric](max T, message string) Rule[T] {
	return Rule[T]{
		Check: func(v T) bool {
			return v <= max
		},
		Message: message,
		Key:     "validation.max",
		Values: map[string]any{
			"max": max,
		},
	}
}

func Between[T Numeric](min, max T, message string) Rule[T] {
	return Rule[T]{
		Check: func(v T) bool {
			return v >= min && v <= max
		},
		Message: message,
		Key:     "validation.between",
		Values: map[string]any{
			"min": min,
			"max": max,
		},
	}
}
