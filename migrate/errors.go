package migrate

import "errors"

var (
	// ErrInvalidMaxAttempts indicates RetryWithBackoff was called with
	// a non-positive attempt count.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")

	// ErrEngineRequired indicates a nil engine was passed to the
	// constructor.
	ErrEngineRequired = errors.New("engine is required")

	// ErrSourceRequired indicates a nil source was passed to the
	// constructor.
	ErrSourceRequired = errors.New("migration source is required")
)
