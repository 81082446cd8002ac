package domain

import "errors"

var (
	// ErrNotFound means no embedding record exists for the requested id.
	ErrNotFound = errors.New("embedding record not found")

	// ErrCorruptRecord means a persisted record could not be parsed as a
	// numeric vector, or its shape does not match its siblings.
	ErrCorruptRecord = errors.New("corrupt embedding record")

	// ErrDegenerateVector means a zero-norm vector was given to a cosine
	// similarity computation, which has no defined result.
	ErrDegenerateVector = errors.New("zero-norm vector has no cosine similarity")

	// ErrInvalidArgument means a command was invoked with too few or
	// otherwise unusable arguments.
	ErrInvalidArgument = errors.New("invalid argument")
)
