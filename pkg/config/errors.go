package config

import "errors"

var (
	// ErrNilPointer is returned when Load is given a nil destination.
	ErrNilPointer = errors.New("config: nil pointer provided")

	// ErrParsingConfig wraps failures from parsing environment variables
	// into the destination struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")

	// ErrLoadingEnvFile wraps failures from reading dotenv files.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")
)
