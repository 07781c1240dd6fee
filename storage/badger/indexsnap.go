package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/provex/ragstore/storage"
)

// IndexRepository implements storage.IndexRepository for BadgerDB.
type IndexRepository struct {
	backend *Backend
}

var _ storage.IndexRepository = (*IndexRepository)(nil)

// NewIndexRepository creates a new IndexRepository.
func NewIndexRepository(backend *Backend) (storage.IndexRepository, error) {
	return &IndexRepository{
		backend: backend,
	}, nil
}

// Close releases resources. IndexRepository has no resources to release.
func (r *IndexRepository) Close() error {
	return nil
}

// SaveSnapshot stores the serialized index of a tenant.
func (r *IndexRepository) SaveSnapshot(ctx context.Context, tenantID string, blob []byte) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeIndexSnapshotKey(tenantID), blob); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// DeleteSnapshot removes a tenant's index snapshot.
func (r *IndexRepository) DeleteSnapshot(ctx context.Context, tenantID string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeIndexSnapshotKey(tenantID)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Snapshots returns every stored snapshot keyed by tenant ID.
func (r *IndexRepository) Snapshots(ctx context.Context) (map[string][]byte, error) {
	results := make(map[string][]byte)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(indexSnapPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			tenantID, ok := splitIndexSnapshotKey(item.Key())
			if !ok {
				continue
			}
			blob, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			results[tenantID] = blob
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}
