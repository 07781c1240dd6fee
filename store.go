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

package ragstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/provex/ragstore/config"
	"github.com/provex/ragstore/embed"
	"github.com/provex/ragstore/embed/local"
	"github.com/provex/ragstore/embed/openai"
	"github.com/provex/ragstore/engine"
	"github.com/provex/ragstore/legacy"
	"github.com/provex/ragstore/migrate"
	"github.com/provex/ragstore/storage"
	"github.com/provex/ragstore/storage/badger"
)

// Store bundles a backend, its repositories, an embedding provider,
// and the engine built over them. It is the top-level handle an
// application holds.
type Store struct {
	backend      *badger.Backend
	chunkRepo    storage.ChunkRepository
	indexRepo    storage.IndexRepository
	manifestRepo storage.ManifestRepository
	provider     embed.Provider
	engine       *engine.Engine
	logger       *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	engineOpts []engine.Option
}

// WithEngineOptions passes options through to the engine constructor.
func WithEngineOptions(opts ...engine.Option) StoreOption {
	return func(o *storeOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// NewProvider builds the embedding provider a settings variant calls
// for. The legacy variant has no provider; it can only be migrated.
func NewProvider(settings *config.Settings) (embed.Provider, error) {
	switch settings.Variant {
	case config.VariantLocal:
		return local.NewProvider(embed.NewConfig(
			embed.WithModel(settings.Model),
			embed.WithCacheDir(filepath.Join(settings.DataDir, "models")),
		))
	case config.VariantRemote:
		return openai.NewProvider(embed.NewConfig(
			embed.WithHost(settings.Host),
			embed.WithAPIKey(settings.APIKey),
			embed.WithModel(settings.Model),
			embed.WithStrict(settings.Strict),
		))
	default:
		return nil, fmt.Errorf("no embedding provider for variant %q", settings.Variant)
	}
}

// Open builds a complete store from settings: badger backend and
// repositories under the data directory, the variant's embedding
// provider, and the engine loaded from storage.
func Open(ctx context.Context, settings *config.Settings, opts ...StoreOption) (*Store, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.Variant == config.VariantLegacy {
		return nil, fmt.Errorf("legacy stores cannot be opened for serving, only migrated")
	}

	options := &storeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filepath.Join(settings.DataDir, "store"), false)
	if err != nil {
		return nil, err
	}

	chunkRepo, err := badger.NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	indexRepo, err := badger.NewIndexRepository(backend)
	if err != nil {
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	manifestRepo := badger.NewManifestRepository(backend)

	provider, err := NewProvider(settings)
	if err != nil {
		indexRepo.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	engineOpts := append([]engine.Option{
		engine.WithDefaultTenant(settings.DefaultTenant),
	}, options.engineOpts...)

	eng, err := engine.New(ctx, chunkRepo, indexRepo, manifestRepo, provider, engineOpts...)
	if err != nil {
		provider.Close()
		indexRepo.Close()
		chunkRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Store{
		backend:      backend,
		chunkRepo:    chunkRepo,
		indexRepo:    indexRepo,
		manifestRepo: manifestRepo,
		provider:     provider,
		engine:       eng,
		logger:       slog.Default(),
	}, nil
}

// Engine returns the vector-store engine.
func (s *Store) Engine() *engine.Engine {
	return s.engine
}

// ChunkRepository returns the underlying chunk repository.
func (s *Store) ChunkRepository() storage.ChunkRepository {
	return s.chunkRepo
}

// MigrateFromLegacy migrates every chunk of the predecessor store at
// legacyDir into this store, returning the migrated count.
func (s *Store) MigrateFromLegacy(ctx context.Context, legacyDir string, progress io.Writer) (int, error) {
	source, err := legacy.Open(legacyDir)
	if err != nil {
		return 0, err
	}

	migrator, err := migrate.NewMigrator(s.engine, source, nil, progress)
	if err != nil {
		return 0, err
	}
	return migrator.Run(ctx)
}

// Close releases the engine and closes the provider, repositories, and
// backend.
func (s *Store) Close() error {
	s.engine.Release()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing embedding provider", "err", err)
	}
	if err := s.manifestRepo.Close(); err != nil {
		s.logger.Error("error closing manifest repository", "err", err)
		return err
	}
	if err := s.indexRepo.Close(); err != nil {
		s.logger.Error("error closing index repository", "err", err)
		return err
	}
	if err := s.chunkRepo.Close(); err != nil {
		s.logger.Error("error closing chunk repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
