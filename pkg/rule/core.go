package rule

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule describes a single requirement for a value of type T: a pure predicate
// plus the failure message shown when the predicate returns false. Check must
// not have side effects; dependent rules receive outside context through an
// explicitly captured provider, never through hidden shared state. A Rule is
// immutable once constructed.
type Rule[T any] struct {
	Check   func(T) bool
	Message string
	Key     string
	Values  map[string]any
}

// Fail builds the Violation this rule produces for the named field. The
// translation values are copied so the rule itself stays immutable.
func (r Rule[T]) Fail(field string) Violation {
	values := make(map[string]any, len(r.Values)+1)
	for k, v := range r.Values {
		values[k] = v
	}
	values["field"] = field
	return Violation{
		Field:   field,
		Message: r.Message,
		Key:     r.Key,
		Values:  values,
	}
}

// Func builds a rule from an arbitrary predicate.
func Func[T any](message string, check func(T) bool) Rule[T] {
	return Rule[T]{
		Check:   check,
		Message: message,
	}
}

// Violation records a single failed rule. It is plain data, not an error:
// failing a rule is the normal output of validation, never a thrown condition.
type Violation struct {
	Field   string
	Message string
	Key     string
	Values  map[string]any
}

// Violations is an ordered collection of failures; the order is the rule
// evaluation order.
type Violations []Violation

func (vs Violations) Messages() []string {
	if len(vs) == 0 {
		return nil
	}
	messages := make([]string, len(vs))
	for i, v := range vs {
		messages[i] = v.Message
	}
	return messages
}

func (vs Violations) First() string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0].Message
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Apply evaluates rules in order against value and collects a Violation for
// every failing rule, preserving rule order.
func Apply[T any](field string, value T, rules ...Rule[T]) Violations {
	var vs Violations
	for _, r := range rules {
		if !r.Check(value) {
			vs = append(vs, r.Fail(field))
		}
	}
	return vs
}
