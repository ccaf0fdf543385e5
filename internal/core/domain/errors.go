package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrRootUnavailable indicates the platform failed to resolve a symbolic
	// root's current absolute location. This is exceptional and must be
	// propagated; substituting a guessed path would silently corrupt every
	// persistable URI derived from it.
	ErrRootUnavailable = errors.New("storage root unavailable")

	// ErrNotConvertible indicates a URI is neither persistable nor under any
	// known storage root, so no persistable form exists for it.
	ErrNotConvertible = errors.New("uri not convertible")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
