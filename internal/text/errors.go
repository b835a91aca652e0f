package text

import "errors"

// Errors returned by line lookups.
var (
	// ErrInvalidLineNumber indicates a line number below 1.
	ErrInvalidLineNumber = errors.New("invalid line number")
)
