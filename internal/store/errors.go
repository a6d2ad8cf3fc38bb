package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists in the
	// database.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionAlreadyExists is returned when creating a session for a user
	// who already has an active one. The single-session-per-user invariant
	// is enforced by a unique index, so concurrent logins cannot both
	// succeed.
	ErrSessionAlreadyExists = errors.New("active session already exists")

	// ErrSessionNotFound is returned when no session record matches the
	// presented token.
	ErrSessionNotFound = errors.New("session not found")
)
