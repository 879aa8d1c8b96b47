package formkit

import "errors"

var (
	// ErrCommandBusy is returned by Execute while a previous run has not
	// been awaited yet.
	ErrCommandBusy = errors.New("formkit: command already running")
)
