// Package formkit provides a minimal, type-safe validation core for building
// reactive form screens in Go.
//
// FormKit keeps validation logic out of rendering code: fields hold values and
// ordered rules, forms coordinate dependent revalidation, and change
// notifications let any rendering layer observe value, errors, and isValid
// without the kit knowing how pixels are drawn.
//
// Key Features:
//
//   - Type-safe fields and rules using generics
//   - Ordered rule evaluation collecting every failure message
//   - Explicit dependency graph with one-hop dependent revalidation
//   - Per-property change notifications with coalescing
//   - Asynchronous submit commands with cancellation
//   - Renderer-agnostic design
//
// Basic Usage:
//
//	username := field.New("username", "",
//		field.WithRules(
//			rule.NotEmpty("A username is required."),
//			rule.MinLen(3, "A username needs at least 3 characters."),
//		),
//		field.WithAutoValidate[string](),
//	)
//
//	signup := form.New()
//	_ = signup.Attach(username)
//
//	username.Subscribe(field.PropErrors, func(e notify.Event) {
//		renderErrors(username.Errors())
//	})
//
//	_ = username.Set("ab") // revalidates, notifies errors and isValid
//
// Submitting:
//
//	submit := formkit.NewCommand(signup, func(ctx context.Context) error {
//		return api.CreateAccount(ctx, username.Value())
//	})
//
//	run, err := submit.Execute(ctx)
//	if err != nil {
//		return err // configuration error or command busy
//	}
//	if run == nil {
//		show(formkit.FirstError(signup)) // validation failure stays on the form
//		return nil
//	}
//	return run.Await(ctx)
//
// The kit follows these principles:
//   - Validation failures are data, configuration mistakes are errors
//   - One notification per property per unit of work
//   - Explicit dependencies over dirty tracking
//   - Renderer adapters subscribe, the core never renders
package formkit
