package literal

import "errors"

// Errors returned by literal replacement.
var (
	// ErrNoLiteralFound indicates no triple-quoted literal closes at or
	// before the requested line.
	ErrNoLiteralFound = errors.New("no triple-quoted literal found")

	// ErrUnsupportedCharacter indicates the replacement body contains a
	// character the escaping policy cannot represent.
	ErrUnsupportedCharacter = errors.New("unsupported character in replacement")
)
