package engine

import "errors"

var (
	// ErrChunkRepositoryRequired indicates a nil chunk repository was
	// passed to the constructor.
	ErrChunkRepositoryRequired = errors.New("chunk repository is required")

	// ErrIndexRepositoryRequired indicates a nil index repository was
	// passed to the constructor.
	ErrIndexRepositoryRequired = errors.New("index repository is required")

	// ErrManifestRepositoryRequired indicates a nil manifest repository
	// was passed to the constructor.
	ErrManifestRepositoryRequired = errors.New("manifest repository is required")

	// ErrProviderRequired indicates a nil embedding provider was passed
	// to the constructor.
	ErrProviderRequired = errors.New("embedding provider is required")

	// ErrModelMismatch indicates the stored vectors were produced by a
	// different model or dimension than the configured provider. The
	// store must be migrated before this engine can serve it.
	ErrModelMismatch = errors.New("stored embedding model does not match provider, migration required")

	// ErrIndexDesync indicates a tenant's persisted snapshot disagrees
	// with its chunk metadata. Usually the result of a crash between
	// chunk and snapshot writes.
	ErrIndexDesync = errors.New("tenant index out of sync with chunk records")
)
