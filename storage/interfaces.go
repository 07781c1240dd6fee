package storage

import (
	"context"

	"github.com/provex/ragstore/core"
)

// ChunkRepository provides durable storage for chunk records and their
// reverse-lookup metadata. Implementations must be thread-safe and must
// apply each call atomically: either every record in the call is written
// (or removed), or none is.
type ChunkRepository interface {
	// PutChunks stores one or more chunk records together with their
	// metadata mirrors, replacing any existing record with the same
	// (tenant, chunk) identity.
	PutChunks(ctx context.Context, chunks ...*core.Chunk) error

	// GetChunk retrieves a single chunk record.
	// Returns ErrNotFound if the record doesn't exist.
	GetChunk(ctx context.Context, tenantID, chunkID string) (*core.Chunk, error)

	// DeleteChunks removes chunk records and their metadata by ID within
	// one tenant. Missing IDs are ignored.
	DeleteChunks(ctx context.Context, tenantID string, chunkIDs ...string) error

	// MetasByTenant returns the metadata entries of every live chunk in a
	// tenant. Malformed entries are skipped and logged, not returned as
	// errors.
	MetasByTenant(ctx context.Context, tenantID string) ([]*core.ChunkMeta, error)

	// MetasByDocument returns the metadata entries of every chunk
	// belonging to a document, across all tenants.
	MetasByDocument(ctx context.Context, documentID string) ([]*core.ChunkMeta, error)

	// AllMetas returns every metadata entry in the store. Malformed
	// entries are skipped and logged.
	AllMetas(ctx context.Context) ([]*core.ChunkMeta, error)

	// Close releases resources held by the repository.
	Close() error
}

// IndexRepository persists per-tenant vector index snapshots.
type IndexRepository interface {
	// SaveSnapshot stores the serialized index of a tenant, replacing any
	// previous snapshot.
	SaveSnapshot(ctx context.Context, tenantID string, blob []byte) error

	// DeleteSnapshot removes a tenant's index snapshot. Deleting a
	// missing snapshot is not an error.
	DeleteSnapshot(ctx context.Context, tenantID string) error

	// Snapshots returns every stored snapshot keyed by tenant ID.
	Snapshots(ctx context.Context) (map[string][]byte, error)

	// Close releases resources held by the repository.
	Close() error
}

// ManifestRepository persists the store manifest describing which
// embedding model the indexes were built with.
type ManifestRepository interface {
	// SaveManifest stores the manifest, replacing any previous one.
	SaveManifest(ctx context.Context, m *core.Manifest) error

	// GetManifest retrieves the manifest.
	// Returns ErrNotFound if none has been written yet.
	GetManifest(ctx context.Context) (*core.Manifest, error)

	// Close releases resources held by the repository.
	Close() error
}
