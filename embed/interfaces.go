package embed

import "context"

// Provider generates fixed-dimension vector embeddings from text.
// Implementations must be thread-safe for concurrent use and must return
// vectors of exactly Dimension() elements.
type Provider interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the fixed embedding dimension of the provider's
	// model. It never changes for the lifetime of the provider.
	Dimension() int

	// Model returns the model identifier the provider was built with.
	Model() string

	// Close releases resources held by the provider.
	Close() error
}

// ZeroVector returns an all-zero vector of the given dimension, the
// degraded result substituted when a remote embedding call fails in
// non-strict mode.
func ZeroVector(dim int) []float32 {
	return make([]float32, dim)
}
