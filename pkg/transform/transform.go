package transform

// Apply runs value through the transforms in order and returns the result.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, tr := range transforms {
		result = tr(result)
	}
	return result
}

// Compose builds a reusable pipeline out of several transforms. The result
// has the shape a field expects, so a normalization chain can be defined
// once and attached to many fields.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
