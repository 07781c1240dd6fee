package mock

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/provex/ragstore/embed"
)

// DefaultDimension is the embedding dimension used when none is given.
const DefaultDimension = 8

// Provider is a test double for embed.Provider.
// It produces deterministic vectors from a text hash, so the same text
// always embeds to the same vector across runs. Custom behavior can be
// injected via function fields.
type Provider struct {
	// EmbedTextFunc is called by EmbedText if set.
	// If nil, uses default deterministic behavior.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	dim       int
	mu        sync.Mutex
	callCount int
}

var _ embed.Provider = (*Provider)(nil)

// NewProvider creates a mock provider with the default dimension.
// Note: returns the concrete type to allow test assertions.
func NewProvider() *Provider {
	return NewProviderWithDimension(DefaultDimension)
}

// NewProviderWithDimension creates a mock provider with a fixed
// embedding dimension.
func NewProviderWithDimension(dim int) *Provider {
	return &Provider{dim: dim}
}

// EmbedText generates a deterministic embedding based on text hash.
func (m *Provider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}

	return deterministicVector(text, m.dim), nil
}

// Dimension returns the mock's fixed embedding dimension.
func (m *Provider) Dimension() int {
	return m.dim
}

// Model returns a fixed identifier for the mock.
func (m *Provider) Model() string {
	return "mock-embedder"
}

// Close is a no-op.
func (m *Provider) Close() error {
	return nil
}

// CallCount returns the number of times EmbedText was called.
func (m *Provider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *Provider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.EmbedTextFunc = nil
}

// deterministicVector creates a deterministic embedding vector from
// text. It uses FNV hash so the same text always produces the same
// vector.
func deterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
	}

	return vector
}
