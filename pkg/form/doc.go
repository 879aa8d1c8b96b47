// Package form orchestrates validation across fields whose correctness
// depends on each other's values.
//
// The dependency graph is explicit: DependsOn(dependent, dependency) records
// that a real change of the dependency schedules one revalidation of the
// dependent, instead of scattering manual revalidation calls across UI event
// handlers. Rules of the dependent read the dependency's value at validation
// time through their provider closures, so the walk only has to decide
// *when* to revalidate, never *what* the dependency's value was.
//
// Revalidations coalesce per synchronous unit of work: when a dependency
// changes several times inside one Batch, each affected dependent is
// revalidated once, after the last change. A change outside any batch is a
// unit of work by itself.
//
// # Usage
//
//	password := field.New("password", "", field.WithRules(
//		rule.NotEmpty("A password is required."),
//	))
//	confirm := field.New("confirm", "", field.WithRules(
//		rule.Equals(password.Value, "Passwords do not match."),
//	))
//
//	f := form.New()
//	_ = f.Attach(password)
//	_ = f.Attach(confirm)
//	_ = f.DependsOn("confirm", "password")
//
//	_ = password.Set("s3cret") // confirm is revalidated automatically
//
//	if ok, err := f.Validate(); err == nil && ok {
//		submit()
//	}
package form
