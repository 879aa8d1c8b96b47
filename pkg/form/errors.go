package form

import "errors"

var (
	// ErrNilMember is returned by Attach when given a nil member.
	ErrNilMember = errors.New("form: nil member")

	// ErrDuplicateMember is returned by Attach when a member with the same
	// name is already registered.
	ErrDuplicateMember = errors.New("form: duplicate member name")

	// ErrUnknownMember is returned by DependsOn when either side of the edge
	// has not been attached.
	ErrUnknownMember = errors.New("form: unknown member")

	// ErrSelfDependency is returned by DependsOn for a self-edge; a member
	// never needs scheduling against its own changes.
	ErrSelfDependency = errors.New("form: member cannot depend on itself")
)
