package transform

// Numeric represents numeric types that support ordering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp constrains a value to [min, max]. Attach it to quantity fields so a
// spinner can never push the stored value out of range.
func Clamp[T Numeric](min, max T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		if v > max {
			return max
		}
		return v
	}
}

// ClampMin ensures a value is not less than min.
func ClampMin[T Numeric](min T) func(T) T {
	return func(v T) T {
		if v < min {
			return min
		}
		return v
	}
}

// ClampMax ensures a value is not greater than max.
func ClampMax[T Numeric](max T) func(T) T {
	return func(v T) T {
		if v > max {
			return max
		}
		return v
	}
}
