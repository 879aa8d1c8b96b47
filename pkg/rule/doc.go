// Package rule provides the validation primitive for the kit: a Rule is a
// pure predicate over a value paired with the failure message shown when the
// predicate does not hold.
//
// Rules are tagged function objects, not an interface hierarchy. A field owns
// an ordered sequence of them; insertion order is evaluation order and the
// order of any resulting Violations. Because a failing rule is normal output
// rather than an exceptional condition, evaluation never returns an error;
// Apply returns plain Violation data.
//
// # Architecture
//
// Each source file groups a family of constructors (`string_rules.go`,
// `compare_rules.go`, `number_rules.go`). Every constructor takes the
// user-facing failure message explicitly, because message wording belongs to
// the owning screen, and fills in a translation key plus values so a message
// catalog can localize the failure later. The package holds no state and is
// goroutine-safe.
//
// Core building blocks:
//   - Rule[T]    – Check predicate plus failure message and i18n metadata
//   - Violation  – a single recorded failure (data, not an error)
//   - Violations – ordered slice of failures in rule order
//   - Func       – adapter for one-off predicates
//   - Apply      – evaluates a rule list against a value
//
// # Usage
//
//	vs := rule.Apply("username", name,
//		rule.NotEmpty("A username is required."),
//		rule.MinLen(3, "Username is too short."),
//	)
//	if !vs.IsEmpty() {
//		show(vs.Messages())
//	}
//
// Dependent rules read their context through an explicit provider closure,
// evaluated at check time:
//
//	rule.Equals(password.Value, "Passwords do not match.")
//
// # Purity
//
// Check functions must not mutate anything, including the value under
// validation or any other field. Mutating a field from inside a check is a
// programming error and is rejected by the field layer.
package rule
