package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/storage"
)

// ManifestRepository implements storage.ManifestRepository for BadgerDB.
type ManifestRepository struct {
	backend *Backend
}

var _ storage.ManifestRepository = (*ManifestRepository)(nil)

// NewManifestRepository creates a new ManifestRepository.
func NewManifestRepository(backend *Backend) storage.ManifestRepository {
	return &ManifestRepository{
		backend: backend,
	}
}

// Close releases resources. ManifestRepository has no resources to release.
func (r *ManifestRepository) Close() error {
	return nil
}

// SaveManifest stores the manifest, stamping its update time.
func (r *ManifestRepository) SaveManifest(ctx context.Context, m *core.Manifest) error {
	m.UpdatedAtMicro = time.Now().UTC().UnixMicro()
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeManifestKey(), storage.MarshalManifest(m)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetManifest retrieves the manifest.
func (r *ManifestRepository) GetManifest(ctx context.Context) (*core.Manifest, error) {
	var result *core.Manifest
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeManifestKey())
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalManifest(val)
			return err
		})
	}, false)
	return result, err
}
