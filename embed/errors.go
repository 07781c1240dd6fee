package embed

import "errors"

var (
	// ErrEmbeddingFailed indicates the provider could not produce a
	// vector for the given text.
	ErrEmbeddingFailed = errors.New("embedding generation failed")

	// ErrModelLoadFailed indicates a local provider could not load its
	// model files.
	ErrModelLoadFailed = errors.New("embedding model load failed")

	// ErrProviderClosed indicates an operation was attempted on a
	// closed provider.
	ErrProviderClosed = errors.New("embedding provider is closed")
)
