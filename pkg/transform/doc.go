// Package transform provides input normalizers shaped for field transforms.
//
// Every helper either is a func(T) T or returns one, so it plugs directly
// into a field's transform chain:
//
//	email := field.New("email", "",
//		field.WithTransform(transform.TrimSpace, transform.NormalizeEmail),
//		field.WithRules(rule.EmailAddress("Enter a valid email address.")),
//	)
//
//	quantity := field.New("quantity", 1,
//		field.WithTransform(transform.Clamp(1, 99)),
//	)
//
// Compose builds reusable chains:
//
//	name := transform.Compose(transform.TrimSpace, transform.CollapseSpaces)
//
// Transforms normalize; they never reject. Anything that should produce a
// failure message belongs in a rule.
package transform
