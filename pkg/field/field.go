package field

import (
	"reflect"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/notify"
	"github.com/dmitrymomot/formkit/pkg/rule"
)

// Property identifiers a Field publishes on its notification source.
const (
	PropValue   = "value"
	PropErrors  = "errors"
	PropIsValid = "isValid"
)

// Field wraps a single value of type T together with its ordered validation
// rules and the derived errors/validity state, and announces changes through
// a property-keyed notification source.
//
// Derived state always reflects the last completed Validate call: results
// are staged during evaluation and swapped in only when the pass finishes,
// so an aborted pass leaves errors and validity untouched. A freshly created
// field is valid with no errors.
//
// A Field is owned by a single goroutine, the one driving the originating
// user interaction; it performs no locking of its own state. Subscription
// bookkeeping inside the source is guarded separately.
type Field[T any] struct {
	name         string
	source       *notify.Source
	value        T
	rules        []rule.Rule[T]
	violations   rule.Violations
	errors       []string
	valid        bool
	equals       func(a, b T) bool
	transforms   []func(T) T
	autoValidate bool
	generation   uint64
	validating   bool
	onChange     func()
}

// New creates a field named name holding initial. Transforms configured via
// WithTransform are applied to the initial value as well, so stored values
// are always normalized. Rules can be supplied here or appended with AddRule
// until the field is exposed to a subscriber.
func New[T any](name string, initial T, opts ...Option[T]) *Field[T] {
	var cfg settings[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field[T]{
		name:         name,
		valid:        true,
		rules:        cfg.rules,
		transforms:   cfg.transforms,
		autoValidate: cfg.autoValidate,
		equals: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	if cfg.equals != nil {
		f.equals = cfg.equals
	}

	var srcOpts []notify.Option
	if cfg.log != nil {
		srcOpts = append(srcOpts, notify.WithLogger(cfg.log))
	}
	f.source = notify.NewSource(srcOpts...)
	f.value = f.transform(initial)

	return f
}

func (f *Field[T]) transform(v T) T {
	for _, tr := range f.transforms {
		v = tr(v)
	}
	return v
}

func (f *Field[T]) Name() string { return f.name }

func (f *Field[T]) Value() T { return f.value }

// IsValid reports the validity derived by the last completed Validate call.
func (f *Field[T]) IsValid() bool { return f.valid }

// Errors returns the failure messages collected by the last completed
// Validate call, in rule order. The returned slice is a copy.
func (f *Field[T]) Errors() []string {
	return slices.Clone(f.errors)
}

// Violations returns the recorded failures with their translation metadata,
// for message catalogs.
func (f *Field[T]) Violations() rule.Violations {
	return slices.Clone(f.violations)
}

// FirstError returns the first failure message, or "" when the field is
// valid. Convenient for binding a single error label.
func (f *Field[T]) FirstError() string {
	return f.violations.First()
}

// AddRule appends a rule. Insertion order is evaluation order. Rules are
// sealed the moment a subscriber attaches: afterwards AddRule returns
// ErrRulesSealed, keeping evaluation deterministic across calls.
func (f *Field[T]) AddRule(r rule.Rule[T]) error {
	if f.source.Exposed() {
		return ErrRulesSealed
	}
	f.rules = append(f.rules, r)
	f.generation++
	return nil
}

// Subscribe registers fn for one of the field's properties (PropValue,
// PropErrors, PropIsValid) and returns the unsubscribe func. The first
// subscription exposes the field and seals its rules.
func (f *Field[T]) Subscribe(property string, fn func(notify.Event)) func() {
	return f.source.Subscribe(property, fn)
}

// OnChange installs the hook invoked after every real value change. A form
// uses it to schedule dependent revalidation; a field belongs to at most one
// form, so installing again replaces the previous hook.
func (f *Field[T]) OnChange(fn func()) {
	f.onChange = fn
}

// Validate is the single entry point that may rewrite errors and validity.
// It evaluates every rule in order against the current value, collects the
// messages of failing rules in rule order, and commits the staged result on
// completion, publishing PropErrors and PropIsValid only when the derived
// values actually changed.
//
// A failing rule is normal output, never an error. The error return reports
// contract violations only: ErrValidationInFlight for a re-entrant call and
// ErrRulesChanged when the rule set is mutated mid-pass. In both cases the
// previous errors and validity stay in place.
func (f *Field[T]) Validate() (bool, error) {
	if f.validating {
		return f.valid, ErrValidationInFlight
	}
	f.validating = true
	defer func() { f.validating = false }()

	gen := f.generation
	var staged rule.Violations
	for _, r := range f.rules {
		if !r.Check(f.value) {
			staged = append(staged, r.Fail(f.name))
		}
		if f.generation != gen {
			return f.valid, ErrRulesChanged
		}
	}

	errs := staged.Messages()
	valid := staged.IsEmpty()
	errorsChanged := !slices.Equal(f.errors, errs)
	validChanged := f.valid != valid

	f.violations = staged
	f.errors = errs
	f.valid = valid

	f.source.Batch(func() {
		if errorsChanged {
			f.source.Publish(PropErrors)
		}
		if validChanged {
			f.source.Publish(PropIsValid)
		}
	})

	return valid, nil
}

// Set updates the value. The incoming value runs through the configured
// transforms first, then is compared to the current value with the field's
// equality: setting an equal value is a silent no-op with zero
// notifications. On a real change, within one coalescing unit of work, Set
// stores the value, publishes PropValue, revalidates when the field was
// configured with WithAutoValidate, and finally informs the attached form.
//
// Set refuses to run from inside a rule check: rules are pure predicates,
// and mutating the field mid-pass returns ErrMutationDuringValidation.
func (f *Field[T]) Set(v T) error {
	if f.validating {
		return ErrMutationDuringValidation
	}

	v = f.transform(v)
	if f.equals(f.value, v) {
		return nil
	}

	var cfgErr error
	f.source.Batch(func() {
		f.value = v
		f.source.Publish(PropValue)
		if f.autoValidate {
			if _, err := f.Validate(); err != nil {
				cfgErr = err
			}
		}
	})
	if cfgErr != nil {
		return cfgErr
	}

	if f.onChange != nil {
		f.onChange()
	}
	return nil
}
