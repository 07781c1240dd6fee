package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) (storage.ChunkRepository, error) {
	return &ChunkRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ChunkRepository has no resources to release.
func (r *ChunkRepository) Close() error {
	return nil
}

// PutChunks stores chunk records, metadata mirrors and document index
// entries in a single transaction.
func (r *ChunkRepository) PutChunks(ctx context.Context, chunks ...*core.Chunk) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			if err := core.ValidateChunk(chunk); err != nil {
				return err
			}

			key := makeChunkKey(chunk.TenantID, chunk.ChunkID)
			if err := tx.Set(key, storage.MarshalChunk(chunk)); err != nil {
				return err
			}

			meta := &core.ChunkMeta{
				TenantID:      chunk.TenantID,
				ChunkID:       chunk.ChunkID,
				DocumentID:    chunk.DocumentID,
				IndexPosition: chunk.IndexPosition,
				Metadata:      chunk.Metadata,
			}
			metaKey := makeChunkMetaKey(chunk.TenantID, chunk.ChunkID)
			if err := tx.Set(metaKey, storage.MarshalChunkMeta(meta)); err != nil {
				return err
			}

			docKey := makeChunkDocKey(chunk.DocumentID, chunk.TenantID, chunk.ChunkID)
			if err := tx.Set(docKey, nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetChunk retrieves a single chunk record.
func (r *ChunkRepository) GetChunk(ctx context.Context, tenantID, chunkID string) (*core.Chunk, error) {
	var result *core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readChunk(tx, makeChunkKey(tenantID, chunkID))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// DeleteChunks removes chunk records, metadata mirrors and document index
// entries by ID within one tenant. Missing IDs are ignored.
func (r *ChunkRepository) DeleteChunks(ctx context.Context, tenantID string, chunkIDs ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunkID := range chunkIDs {
			metaKey := makeChunkMetaKey(tenantID, chunkID)
			meta, err := readChunkMeta(tx, metaKey)
			if err != nil {
				return err
			}
			if meta == nil {
				continue
			}

			docKey := makeChunkDocKey(meta.DocumentID, tenantID, chunkID)
			if err := tx.Delete(docKey); err != nil {
				return err
			}
			if err := tx.Delete(metaKey); err != nil {
				return err
			}
			if err := tx.Delete(makeChunkKey(tenantID, chunkID)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// MetasByTenant returns the metadata entries of every live chunk in a tenant.
func (r *ChunkRepository) MetasByTenant(ctx context.Context, tenantID string) ([]*core.ChunkMeta, error) {
	return r.scanMetas([]byte(chunkMetaPrefix + ":" + tenantID + ":"))
}

// AllMetas returns every metadata entry in the store.
func (r *ChunkRepository) AllMetas(ctx context.Context) ([]*core.ChunkMeta, error) {
	return r.scanMetas([]byte(chunkMetaPrefix + ":"))
}

// scanMetas iterates metadata keys under prefix, skipping entries that
// fail to decode.
func (r *ChunkRepository) scanMetas(prefix []byte) ([]*core.ChunkMeta, error) {
	var results []*core.ChunkMeta
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			var meta *core.ChunkMeta
			err := item.Value(func(val []byte) error {
				var err error
				meta, err = storage.UnmarshalChunkMeta(val)
				return err
			})
			if err != nil {
				r.backend.logger.Error("skipping malformed chunk metadata", "key", string(item.Key()), "err", err)
				continue
			}
			results = append(results, meta)
		}
		return nil
	}, false)
	return results, err
}

// MetasByDocument returns the metadata entries of every chunk belonging to
// a document, across all tenants.
func (r *ChunkRepository) MetasByDocument(ctx context.Context, documentID string) ([]*core.ChunkMeta, error) {
	var results []*core.ChunkMeta
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(chunkDocPrefix + ":" + documentID + ":")
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			tenantID, chunkID, ok := splitChunkDocKey(key, documentID)
			if !ok {
				r.backend.logger.Error("skipping malformed document index key", "key", string(key))
				continue
			}

			meta, err := readChunkMeta(tx, makeChunkMetaKey(tenantID, chunkID))
			if err != nil {
				r.backend.logger.Error("skipping unreadable chunk metadata", "tenant", tenantID, "chunk", chunkID, "err", err)
				continue
			}
			if meta == nil {
				continue
			}
			results = append(results, meta)
		}
		return nil
	}, false)
	return results, err
}

// Helper methods

// readChunk reads a chunk record from the transaction.
// Returns nil without error when the key is absent.
func readChunk(tx *badger.Txn, key []byte) (*core.Chunk, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var chunk *core.Chunk
	err = item.Value(func(val []byte) error {
		var err error
		chunk, err = storage.UnmarshalChunk(val)
		return err
	})
	return chunk, err
}

// readChunkMeta reads a metadata mirror from the transaction.
// Returns nil without error when the key is absent.
func readChunkMeta(tx *badger.Txn, key []byte) (*core.ChunkMeta, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var meta *core.ChunkMeta
	err = item.Value(func(val []byte) error {
		var err error
		meta, err = storage.UnmarshalChunkMeta(val)
		return err
	})
	return meta, err
}
