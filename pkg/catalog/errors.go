package catalog

import "errors"

var (
	// ErrInvalidYAML wraps parse failures of a catalog document.
	ErrInvalidYAML = errors.New("catalog: invalid yaml document")

	// ErrEmptyLocale is returned when a document carries an empty locale code.
	ErrEmptyLocale = errors.New("catalog: empty locale code")

	// ErrLoadingDir wraps failures reading a catalog directory.
	ErrLoadingDir = errors.New("catalog: failed to read catalog directory")
)
