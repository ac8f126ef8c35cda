package parg

import "errors"

// Sentinel errors returned by Parse and Get. They are always wrapped with
// the argument name and context, so match them with errors.Is.
var (
	// ErrHelp is returned by Parse when a --help token was encountered.
	// Usage has already been written to the configured output; callers
	// should treat this as a clean early exit, not a failure.
	ErrHelp = errors.New("help requested")

	// ErrRequired reports a required argument that was never provided
	// and has no default.
	ErrRequired = errors.New("argument is required")

	// ErrMissingValue reports a value-taking argument whose flag was
	// present but not followed by a value token, with no default to
	// fall back on.
	ErrMissingValue = errors.New("argument needs a value")

	// ErrUnknownArgument reports retrieval of a name that was never
	// registered.
	ErrUnknownArgument = errors.New("argument does not exist")

	// ErrNotValueTaking reports typed retrieval of a presence-only flag.
	ErrNotValueTaking = errors.New("argument does not take a value")

	// ErrTypeMismatch reports a requested type that does not match the
	// argument's declared kind.
	ErrTypeMismatch = errors.New("requested type does not match the declared kind")

	// ErrNoValue reports retrieval of an argument that was not provided
	// and has no default.
	ErrNoValue = errors.New("argument has no value and no default")

	// ErrDefaultMismatch reports a default value whose type does not
	// match the declared kind. It indicates a construction-time bug in
	// the caller and should never surface from a correctly built CLI.
	ErrDefaultMismatch = errors.New("default value does not match the declared kind")
)
