package field

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/rule"
)

type settings[T any] struct {
	rules        []rule.Rule[T]
	autoValidate bool
	equals       func(a, b T) bool
	transforms   []func(T) T
	log          *slog.Logger
}

// Option configures a Field at construction time.
type Option[T any] func(*settings[T])

// WithRules attaches the initial rule set; order is evaluation order.
func WithRules[T any](rules ...rule.Rule[T]) Option[T] {
	return func(s *settings[T]) {
		s.rules = append(s.rules, rules...)
	}
}

// WithAutoValidate makes every real value change run Validate immediately,
// announcing validity changes without an explicit call.
func WithAutoValidate[T any]() Option[T] {
	return func(s *settings[T]) {
		s.autoValidate = true
	}
}

// WithEquality replaces the default reflect.DeepEqual comparison used to
// decide whether Set actually changes the value.
func WithEquality[T any](equals func(a, b T) bool) Option[T] {
	return func(s *settings[T]) {
		s.equals = equals
	}
}

// WithTransform appends normalization steps applied to every incoming value,
// the initial one included, before equality comparison and storage.
func WithTransform[T any](transforms ...func(T) T) Option[T] {
	return func(s *settings[T]) {
		s.transforms = append(s.transforms, transforms...)
	}
}

// WithLogger sets the logger the field's notification source reports
// subscriber panics to.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(s *settings[T]) {
		s.log = log
	}
}
