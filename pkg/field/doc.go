// Package field provides the unit of validation state: a typed value wrapper
// holding the raw value, an ordered rule set, and the derived errors and
// validity flag, with change-notification semantics a reactive binding layer
// can subscribe to.
//
// A Field publishes three properties on its notification source: "value",
// "errors" and "isValid". Notifications follow the contract of
// [github.com/dmitrymomot/formkit/pkg/notify]: nothing is announced before
// the first subscriber attaches, setting an equal value announces nothing,
// and every public operation coalesces its internal assignments into at most
// one notification per property.
//
// Validate is the only operation that rewrites derived state, and it commits
// results only on completion: an aborted pass (re-entrancy, rules mutated
// mid-flight) leaves the previous errors and validity visible. Rules are
// sealed on first subscription, so evaluation stays deterministic for the
// lifetime of the binding.
//
// # Usage
//
//	username := field.New("username", "",
//		field.WithRules(rule.NotEmpty("A username is required.")),
//		field.WithAutoValidate[string](),
//		field.WithTransform(transform.TrimSpace, transform.Lowercase),
//	)
//
//	off := username.Subscribe(field.PropIsValid, func(notify.Event) {
//		submitButton.SetEnabled(username.IsValid())
//	})
//	defer off()
//
//	_ = username.Set(input) // revalidates and announces real changes
//
// A Field is not safe for concurrent use: all mutation belongs to the single
// goroutine driving the user interaction, which is also where subscriber
// callbacks run.
package field
