// Copyright 2025 Provex Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package openai

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/provex/ragstore/embed"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// maxEmbedChars caps the text length sent to the remote API. Longer
// inputs are truncated before embedding.
const maxEmbedChars = 8000

// modelDimensions maps known embedding models to their output
// dimension. Unknown models fall back to defaultDimension.
var modelDimensions = map[string]int{
	"text-embedding-3-small": 1536,
	"text-embedding-3-large": 3072,
}

const defaultDimension = 1536

// Provider implements embed.Provider against OpenAI-compatible
// embedding APIs.
type Provider struct {
	embedder embeddings.Embedder
	config   *embed.Config
	dim      int
	logger   *slog.Logger
}

var _ embed.Provider = (*Provider)(nil)

// newProvider is an internal constructor that returns the concrete type.
func newProvider(config *embed.Config) (*Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that
	// don't require authentication.
	token := config.APIKey
	if token == "" {
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(token),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	dim, ok := modelDimensions[config.Model]
	if !ok {
		dim = defaultDimension
	}

	return &Provider{
		embedder: embedder,
		config:   config,
		dim:      dim,
		logger:   slog.Default().With("component", "openai-embedder"),
	}, nil
}

// NewProvider creates a remote embedding provider using the provided
// configuration.
//
// Returns embed.Provider interface to enforce abstraction.
func NewProvider(config *embed.Config) (embed.Provider, error) {
	return newProvider(config)
}

// EmbedText generates a vector embedding for a single text string.
// Text longer than 8000 characters is truncated. When the remote call
// fails and strict mode is off, the error is logged and a zero vector
// of the model's dimension is returned so callers can degrade instead
// of aborting.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if runes := []rune(text); len(runes) > maxEmbedChars {
		text = string(runes[:maxEmbedChars])
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	p.logger.Debug("generating embedding", "model", p.config.Model, "length", len(text))

	vectors, err := p.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		if p.config.Strict {
			return nil, fmt.Errorf("%w: %w", embed.ErrEmbeddingFailed, err)
		}
		p.logger.Error("embedding call failed, degrading to zero vector",
			"model", p.config.Model, "err", err)
		return embed.ZeroVector(p.dim), nil
	}

	if len(vectors) == 0 {
		p.logger.Warn("embedder returned empty result")
		return embed.ZeroVector(p.dim), nil
	}

	return vectors[0], nil
}

// Dimension returns the embedding dimension for the configured model.
func (p *Provider) Dimension() int {
	return p.dim
}

// Model returns the configured model identifier.
func (p *Provider) Model() string {
	return p.config.Model
}

// Close is a no-op for the remote provider.
func (p *Provider) Close() error {
	return nil
}
