package session

import "errors"

var (
	// ErrNotFound means the session id did not resolve.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidState means the transition is not allowed from the session's
	// current status (e.g. approving an already-declined session).
	ErrInvalidState = errors.New("invalid state transition")
	// ErrInvalidArgument means a malformed enum, date or reference was
	// rejected before any state mutation.
	ErrInvalidArgument = errors.New("invalid argument")
)
