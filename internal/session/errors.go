package session

import "errors"

// Errors returned by session operations.
var (
	// ErrNoChange indicates a rewrite produced identical text, usually a
	// sign the reported line points at the wrong literal.
	ErrNoChange = errors.New("replacement produced no change")
)
