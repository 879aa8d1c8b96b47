package form

import (
	"fmt"
	"io"
	"log/slog"
)

// Member is what the form needs from a validatable value, type-erased over
// the value type. *field.Field[T] satisfies it.
type Member interface {
	Name() string
	Validate() (bool, error)
	IsValid() bool
	Errors() []string
	OnChange(fn func())
}

// Form coordinates validation across members with cross-field dependencies.
// It keeps an explicit dependency graph (dependency name to dependent names)
// and walks it whenever a dependency's value actually changes, so a
// dependent is revalidated through its own single-entry Validate path with
// the dependency's current value in view.
//
// Like a field, a Form belongs to the single goroutine driving the user
// interaction and does no locking.
type Form struct {
	members map[string]Member
	order   []string
	deps    map[string][]string
	depth   int
	pending []string
	seen    map[string]struct{}
	log     *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger used to report configuration errors raised by
// dependent revalidation, which has no caller to return them to.
func WithLogger(log *slog.Logger) Option {
	return func(f *Form) {
		if log != nil {
			f.log = log
		}
	}
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		members: make(map[string]Member),
		deps:    make(map[string][]string),
		seen:    make(map[string]struct{}),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Attach registers a member and installs the change hook that drives
// dependent revalidation. Attach order is the Validate order.
func (f *Form) Attach(m Member) error {
	if m == nil {
		return ErrNilMember
	}
	name := m.Name()
	if _, exists := f.members[name]; exists {
		return fmt.Errorf("form: member %q: %w", name, ErrDuplicateMember)
	}
	f.members[name] = m
	f.order = append(f.order, name)
	m.OnChange(func() {
		f.memberChanged(name)
	})
	return nil
}

// DependsOn records that validating dependent requires reading dependency:
// every real change of the dependency schedules one revalidation of the
// dependent. Both must be attached first. Mutual edges are legal (password
// and confirmation can each depend on the other) because revalidation is
// triggered by value changes only and walks a single hop. Duplicate edges
// collapse into one.
func (f *Form) DependsOn(dependent, dependency string) error {
	if dependent == dependency {
		return fmt.Errorf("form: member %q: %w", dependent, ErrSelfDependency)
	}
	if _, ok := f.members[dependent]; !ok {
		return fmt.Errorf("form: member %q: %w", dependent, ErrUnknownMember)
	}
	if _, ok := f.members[dependency]; !ok {
		return fmt.Errorf("form: member %q: %w", dependency, ErrUnknownMember)
	}
	for _, existing := range f.deps[dependency] {
		if existing == dependent {
			return nil
		}
	}
	f.deps[dependency] = append(f.deps[dependency], dependent)
	return nil
}

// Batch runs fn as one synchronous unit of work: member changes inside it
// are collected, and each affected dependent is revalidated exactly once
// when the outermost batch exits, after all changes in the unit are applied.
// Outside a batch every single change is its own unit of work.
func (f *Form) Batch(fn func()) {
	f.depth++
	defer func() {
		f.depth--
		if f.depth == 0 && len(f.pending) > 0 {
			changed := f.pending
			f.pending = nil
			clear(f.seen)
			f.revalidate(changed)
		}
	}()
	fn()
}

func (f *Form) memberChanged(name string) {
	if f.depth > 0 {
		if _, queued := f.seen[name]; !queued {
			f.seen[name] = struct{}{}
			f.pending = append(f.pending, name)
		}
		return
	}
	f.revalidate([]string{name})
}

// revalidate walks one hop of the dependency graph for every changed member
// and revalidates each affected dependent once. Dependency values are read
// by the rules at validation time; there is no snapshot. A configuration
// error from a dependent cannot surface to any caller here, so it is logged.
func (f *Form) revalidate(changed []string) {
	var queue []string
	queued := make(map[string]struct{})
	for _, dependency := range changed {
		for _, dependent := range f.deps[dependency] {
			if _, ok := queued[dependent]; !ok {
				queued[dependent] = struct{}{}
				queue = append(queue, dependent)
			}
		}
	}
	for _, name := range queue {
		if _, err := f.members[name].Validate(); err != nil {
			f.log.Error("form: dependent revalidation failed",
				slog.String("member", name),
				slog.Any("error", err),
			)
		}
	}
}

// Validate runs every member's Validate in attach order and reports whether
// all of them hold. All members are evaluated even after a failure, so every
// field shows its errors. The first configuration error aborts the walk.
func (f *Form) Validate() (bool, error) {
	valid := true
	for _, name := range f.order {
		ok, err := f.members[name].Validate()
		if err != nil {
			return false, fmt.Errorf("form: validate member %q: %w", name, err)
		}
		valid = valid && ok
	}
	return valid, nil
}

// IsValid reports whether every member is valid as of its last completed
// validation pass.
func (f *Form) IsValid() bool {
	for _, name := range f.order {
		if !f.members[name].IsValid() {
			return false
		}
	}
	return true
}

// Member returns an attached member by name.
func (f *Form) Member(name string) (Member, bool) {
	m, ok := f.members[name]
	return m, ok
}

// Members returns the attached members in attach order.
func (f *Form) Members() []Member {
	out := make([]Member, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, f.members[name])
	}
	return out
}

// Errors collects the failure messages of every invalid member, keyed by
// member name.
func (f *Form) Errors() map[string][]string {
	out := make(map[string][]string)
	for _, name := range f.order {
		if m := f.members[name]; !m.IsValid() {
			out[name] = m.Errors()
		}
	}
	return out
}
