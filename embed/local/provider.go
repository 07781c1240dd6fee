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

package local

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	fastembed "github.com/anush008/fastembed-go"
	"github.com/provex/ragstore/embed"
)

// modelMapping maps friendly model names to fastembed model constants.
var modelMapping = map[string]fastembed.EmbeddingModel{
	"BAAI/bge-small-en-v1.5":                 fastembed.BGESmallENV15,
	"BAAI/bge-small-en":                      fastembed.BGESmallEN,
	"BAAI/bge-base-en-v1.5":                  fastembed.BGEBaseENV15,
	"BAAI/bge-base-en":                       fastembed.BGEBaseEN,
	"BAAI/bge-small-zh-v1.5":                 fastembed.BGESmallZH,
	"sentence-transformers/all-MiniLM-L6-v2": fastembed.AllMiniLML6V2,
	// Also accept the fastembed model names directly
	"fast-bge-small-en-v1.5": fastembed.BGESmallENV15,
	"fast-bge-small-en":      fastembed.BGESmallEN,
	"fast-bge-base-en-v1.5":  fastembed.BGEBaseENV15,
	"fast-bge-base-en":       fastembed.BGEBaseEN,
	"fast-bge-small-zh-v1.5": fastembed.BGESmallZH,
	"fast-all-MiniLM-L6-v2":  fastembed.AllMiniLML6V2,
}

// modelDimensions maps fastembed models to their embedding dimensions.
var modelDimensions = map[fastembed.EmbeddingModel]int{
	fastembed.BGESmallENV15: 384,
	fastembed.BGESmallEN:    384,
	fastembed.BGEBaseENV15:  768,
	fastembed.BGEBaseEN:     768,
	fastembed.BGESmallZH:    512,
	fastembed.AllMiniLML6V2: 384,
}

// Provider implements embed.Provider on top of local ONNX models via
// fastembed. Unlike the remote provider there is no degraded mode:
// a provider that fails to load its model is unusable and construction
// fails outright.
type Provider struct {
	model     *fastembed.FlagEmbedding
	modelName string
	dim       int
	logger    *slog.Logger
	mu        sync.RWMutex
	closed    bool
}

var _ embed.Provider = (*Provider)(nil)

// newProvider is an internal constructor that returns the concrete type.
func newProvider(config *embed.Config) (*Provider, error) {
	model, ok := modelMapping[config.Model]
	if !ok {
		// Check if it's a direct fastembed model name
		model = fastembed.EmbeddingModel(config.Model)
		if _, known := modelDimensions[model]; !known {
			return nil, fmt.Errorf("%w: unsupported model %q", embed.ErrModelLoadFailed, config.Model)
		}
	}

	cacheDir := config.CacheDir
	if cacheDir == "" {
		cacheDir = filepath.Join(".", "local_cache")
	}

	// Disable the download progress bar for non-interactive use.
	showProgress := false

	flagEmbed, err := fastembed.NewFlagEmbedding(&fastembed.InitOptions{
		Model:                model,
		CacheDir:             cacheDir,
		MaxLength:            512,
		ShowDownloadProgress: &showProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", embed.ErrModelLoadFailed, err)
	}

	return &Provider{
		model:     flagEmbed,
		modelName: config.Model,
		dim:       modelDimensions[model],
		logger:    slog.Default().With("component", "local-embedder"),
	}, nil
}

// NewProvider creates a local embedding provider, downloading and
// loading the model if needed. A load failure is fatal: unlike remote
// providers there is no zero-vector degradation for local models.
//
// Returns embed.Provider interface to enforce abstraction.
func NewProvider(config *embed.Config) (embed.Provider, error) {
	return newProvider(config)
}

// EmbedText generates a vector embedding for a single text string.
// The same passage encoding is used for both stored chunks and queries
// so that distances are computed in a single consistent space.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return nil, embed.ErrProviderClosed
	}

	vectors, err := p.model.PassageEmbed([]string{text}, 256)
	if err != nil {
		p.logger.Error("local embedding failed", "model", p.modelName, "err", err)
		return nil, fmt.Errorf("%w: %w", embed.ErrEmbeddingFailed, err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: model returned no vectors", embed.ErrEmbeddingFailed)
	}

	return vectors[0], nil
}

// Dimension returns the embedding dimension for the loaded model.
func (p *Provider) Dimension() int {
	return p.dim
}

// Model returns the configured model identifier.
func (p *Provider) Model() string {
	return p.modelName
}

// Close releases the ONNX runtime resources held by the model.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.model != nil {
		return p.model.Destroy()
	}
	return nil
}
