package field

import "errors"

// Configuration errors reported by a Field. Each one marks a programming
// mistake in the owning component, never bad user input: failing rules are
// data, surfaced through Errors and IsValid.
var (
	// ErrRulesSealed is returned by AddRule once a subscriber has attached.
	ErrRulesSealed = errors.New("field: rules are sealed after exposure to a subscriber")

	// ErrRulesChanged is returned by Validate when the rule set was mutated
	// while the pass was running; the staged result is discarded.
	ErrRulesChanged = errors.New("field: rules changed during validation")

	// ErrValidationInFlight is returned by a re-entrant Validate call.
	ErrValidationInFlight = errors.New("field: validate called re-entrantly")

	// ErrMutationDuringValidation is returned by Set when invoked from inside
	// a rule check.
	ErrMutationDuringValidation = errors.New("field: value mutated during validation")
)
