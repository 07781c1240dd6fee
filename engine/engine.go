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

package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/embed"
	"github.com/provex/ragstore/index"
	"github.com/provex/ragstore/storage"
)

// tenantState is the in-memory view of one tenant partition: the
// similarity index plus the position-to-chunk-ID mapping. Both are
// derived caches; chunk records in storage are the source of truth.
type tenantState struct {
	mu       sync.RWMutex
	index    *index.Index
	chunkIDs []string // position -> chunk ID
}

// ensureIndex lazily creates the tenant's index at the provider's
// dimension. Callers must hold the write lock.
func (ts *tenantState) ensureIndex(dim int) error {
	if ts.index != nil {
		return nil
	}
	ix, err := index.New(dim)
	if err != nil {
		return err
	}
	ts.index = ix
	return nil
}

// Engine orchestrates ingestion, retrieval, deletion, and migration
// over per-tenant vector indexes backed by durable chunk storage.
type Engine struct {
	chunks    storage.ChunkRepository
	snapshots storage.IndexRepository
	manifests storage.ManifestRepository
	provider  embed.Provider
	pool      *ants.Pool
	logger    *slog.Logger

	// storageEnrichment controls whether chunk content is enriched
	// with detected technical categories before embedding at ingestion.
	storageEnrichment bool
	defaultTenant     string

	mu      sync.RWMutex
	tenants map[string]*tenantState
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size used for parallel
// re-embedding during rebuilds.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		if e.pool != nil {
			e.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		e.pool = pool
		return nil
	}
}

// WithStorageEnrichment enables technical-category enrichment of chunk
// content before it is embedded at ingestion time. Off by default:
// enrichment changes what gets embedded, so it must be an explicit
// choice made consistently for the lifetime of a store.
func WithStorageEnrichment(enabled bool) Option {
	return func(e *Engine) error {
		e.storageEnrichment = enabled
		return nil
	}
}

// WithDefaultTenant sets the tenant used when operations omit one.
// Default is core.DefaultTenantID.
func WithDefaultTenant(tenantID string) Option {
	return func(e *Engine) error {
		if tenantID == "" {
			tenantID = core.DefaultTenantID
		}
		e.defaultTenant = tenantID
		return nil
	}
}

// New creates an engine over the given repositories and embedding
// provider, then loads all tenant indexes from storage. A stored
// manifest recording a different model or dimension than the provider
// fails construction with ErrModelMismatch: the store must be migrated
// first, never silently served with incompatible vectors.
func New(
	ctx context.Context,
	chunks storage.ChunkRepository,
	snapshots storage.IndexRepository,
	manifests storage.ManifestRepository,
	provider embed.Provider,
	opts ...Option,
) (*Engine, error) {
	if chunks == nil {
		return nil, ErrChunkRepositoryRequired
	}
	if snapshots == nil {
		return nil, ErrIndexRepositoryRequired
	}
	if manifests == nil {
		return nil, ErrManifestRepositoryRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		chunks:        chunks,
		snapshots:     snapshots,
		manifests:     manifests,
		provider:      provider,
		pool:          pool,
		logger:        slog.Default(),
		defaultTenant: core.DefaultTenantID,
		tenants:       make(map[string]*tenantState),
	}

	for _, opt := range opts {
		if optErr := opt(e); optErr != nil {
			e.Release()
			return nil, optErr
		}
	}

	if err := e.checkManifest(ctx); err != nil {
		e.Release()
		return nil, err
	}
	if err := e.load(ctx); err != nil {
		e.Release()
		return nil, err
	}

	return e, nil
}

// checkManifest verifies the stored manifest against the configured
// provider, writing one on first use.
func (e *Engine) checkManifest(ctx context.Context) error {
	manifest, err := e.manifests.GetManifest(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return e.manifests.SaveManifest(ctx, &core.Manifest{
			Model:     e.provider.Model(),
			Dimension: e.provider.Dimension(),
		})
	}
	if err != nil {
		return err
	}

	if manifest.Model != e.provider.Model() || manifest.Dimension != e.provider.Dimension() {
		return fmt.Errorf("%w: store built with %s (%d dims), provider is %s (%d dims)",
			ErrModelMismatch,
			manifest.Model, manifest.Dimension,
			e.provider.Model(), e.provider.Dimension())
	}
	return nil
}

// load reconstructs every tenant's in-memory state from storage.
// Tenants whose snapshot is missing, corrupt, or out of step with
// their chunk records are rebuilt from the chunk records by
// re-embedding, since records are the source of truth.
func (e *Engine) load(ctx context.Context) error {
	metas, err := e.chunks.AllMetas(ctx)
	if err != nil {
		return err
	}
	byTenant := make(map[string][]*core.ChunkMeta)
	for _, meta := range metas {
		byTenant[meta.TenantID] = append(byTenant[meta.TenantID], meta)
	}

	blobs, err := e.snapshots.Snapshots(ctx)
	if err != nil {
		return err
	}

	for tenantID, tenantMetas := range byTenant {
		ts, err := e.loadTenant(ctx, tenantID, tenantMetas, blobs[tenantID])
		if err != nil {
			return err
		}
		e.tenants[tenantID] = ts
	}

	// A snapshot whose tenant has no chunk records is an orphan left by
	// a crash mid-delete; drop it rather than carry it forever.
	for tenantID := range blobs {
		if _, ok := byTenant[tenantID]; ok {
			continue
		}
		e.logger.Warn("dropping orphaned index snapshot", "tenantID", tenantID)
		if err := e.snapshots.DeleteSnapshot(ctx, tenantID); err != nil {
			return err
		}
	}
	return nil
}

// loadTenant restores one tenant from its snapshot, falling back to a
// full rebuild when the snapshot cannot be trusted.
func (e *Engine) loadTenant(ctx context.Context, tenantID string, metas []*core.ChunkMeta, blob []byte) (*tenantState, error) {
	if blob != nil {
		ix, err := index.Restore(blob)
		if err == nil && (ix.Len() != len(metas) || ix.Dimension() != e.provider.Dimension()) {
			err = fmt.Errorf("%w: %d vectors (%d dims) vs %d records",
				ErrIndexDesync, ix.Len(), ix.Dimension(), len(metas))
		}
		if err == nil {
			chunkIDs, mapErr := positionMap(metas)
			if mapErr == nil {
				return &tenantState{index: ix, chunkIDs: chunkIDs}, nil
			}
			err = mapErr
		}
		e.logger.Warn("tenant snapshot unusable, rebuilding from chunk records",
			"tenantID", tenantID, "err", err, "records", len(metas))
	} else {
		e.logger.Warn("tenant has chunk records but no snapshot, rebuilding",
			"tenantID", tenantID, "records", len(metas))
	}

	ts := &tenantState{}
	if err := e.rebuildTenant(ctx, tenantID, ts, metas); err != nil {
		return nil, err
	}
	return ts, nil
}

// positionMap converts metadata entries into the position-ordered
// chunk-ID slice, verifying the positions form a contiguous bijection.
func positionMap(metas []*core.ChunkMeta) ([]string, error) {
	chunkIDs := make([]string, len(metas))
	for _, meta := range metas {
		if meta.IndexPosition < 0 || meta.IndexPosition >= len(metas) {
			return nil, fmt.Errorf("%w: chunk %q has position %d of %d",
				ErrIndexDesync, meta.ChunkID, meta.IndexPosition, len(metas))
		}
		if chunkIDs[meta.IndexPosition] != "" {
			return nil, fmt.Errorf("%w: position %d claimed by both %q and %q",
				ErrIndexDesync, meta.IndexPosition, chunkIDs[meta.IndexPosition], meta.ChunkID)
		}
		chunkIDs[meta.IndexPosition] = meta.ChunkID
	}
	return chunkIDs, nil
}

// tenant returns the state for a tenant, creating it when absent.
func (e *Engine) tenant(tenantID string) *tenantState {
	e.mu.RLock()
	ts, ok := e.tenants[tenantID]
	e.mu.RUnlock()
	if ok {
		return ts
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if ts, ok = e.tenants[tenantID]; ok {
		return ts
	}
	ts = &tenantState{}
	e.tenants[tenantID] = ts
	return ts
}

// lookupTenant returns the state for a tenant without creating it.
func (e *Engine) lookupTenant(tenantID string) (*tenantState, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ts, ok := e.tenants[tenantID]
	return ts, ok
}

// resolveTenant substitutes the default tenant for an empty ID.
func (e *Engine) resolveTenant(tenantID string) string {
	if tenantID == "" {
		return e.defaultTenant
	}
	return tenantID
}

// flushTenant persists a tenant's index snapshot. Callers must hold
// the tenant's write lock.
func (e *Engine) flushTenant(ctx context.Context, tenantID string, ts *tenantState) error {
	if ts.index == nil || ts.index.Len() == 0 {
		return e.snapshots.DeleteSnapshot(ctx, tenantID)
	}
	return e.snapshots.SaveSnapshot(ctx, tenantID, index.Snapshot(ts.index))
}

// Release releases the worker pool. The engine should not be used
// after calling Release. Repositories are owned by the caller and are
// not closed here.
func (e *Engine) Release() {
	if e.pool != nil {
		e.pool.Release()
	}
}
