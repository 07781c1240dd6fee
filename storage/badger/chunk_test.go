package badger

import (
	"context"
	"testing"

	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (storage.ChunkRepository, storage.IndexRepository, storage.ManifestRepository) {
	t.Helper()

	chunkRepo, indexRepo, manifestRepo, backend, err := NewMemoryRepositories()
	require.NoError(t, err)

	t.Cleanup(func() {
		manifestRepo.Close()
		indexRepo.Close()
		chunkRepo.Close()
		backend.Close()
	})

	return chunkRepo, indexRepo, manifestRepo
}

func testChunk(tenantID, chunkID, documentID string, position int) *core.Chunk {
	return &core.Chunk{
		ChunkID:       chunkID,
		DocumentID:    documentID,
		Content:       "content of " + chunkID,
		Metadata:      map[string]string{"source_type": "fiche_technique"},
		TenantID:      tenantID,
		IndexPosition: position,
	}
}

func TestChunkRepository_PutGetRoundTrip(t *testing.T) {
	repo, _, _ := setupRepos(t)
	ctx := context.Background()

	chunk := testChunk("t1", "c1", "d1", 0)
	require.NoError(t, repo.PutChunks(ctx, chunk))

	got, err := repo.GetChunk(ctx, "t1", "c1")
	require.NoError(t, err)
	assert.Equal(t, chunk.ChunkID, got.ChunkID)
	assert.Equal(t, chunk.DocumentID, got.DocumentID)
	assert.Equal(t, chunk.Content, got.Content)
	assert.Equal(t, chunk.Metadata, got.Metadata)
	assert.Equal(t, chunk.TenantID, got.TenantID)
	assert.Equal(t, chunk.IndexPosition, got.IndexPosition)
}

func TestChunkRepository_GetMissing(t *testing.T) {
	repo, _, _ := setupRepos(t)

	_, err := repo.GetChunk(context.Background(), "t1", "nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestChunkRepository_PutRejectsInvalid(t *testing.T) {
	repo, _, _ := setupRepos(t)

	err := repo.PutChunks(context.Background(), &core.Chunk{ChunkID: "c1"})
	assert.ErrorIs(t, err, core.ErrInvalidChunk)
}

func TestChunkRepository_TenantQualifiedIdentity(t *testing.T) {
	repo, _, _ := setupRepos(t)
	ctx := context.Background()

	// The same chunk ID may live in two tenants independently.
	require.NoError(t, repo.PutChunks(ctx,
		testChunk("t1", "c1", "d1", 0),
		testChunk("t2", "c1", "d2", 0),
	))

	first, err := repo.GetChunk(ctx, "t1", "c1")
	require.NoError(t, err)
	second, err := repo.GetChunk(ctx, "t2", "c1")
	require.NoError(t, err)

	assert.Equal(t, "d1", first.DocumentID)
	assert.Equal(t, "d2", second.DocumentID)
}

func TestChunkRepository_DeleteChunks(t *testing.T) {
	repo, _, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.PutChunks(ctx,
		testChunk("t1", "c1", "d1", 0),
		testChunk("t1", "c2", "d1", 1),
	))

	// Deleting one existing and one missing chunk succeeds.
	require.NoError(t, repo.DeleteChunks(ctx, "t1", "c1", "ghost"))

	_, err := repo.GetChunk(ctx, "t1", "c1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	metas, err := repo.MetasByTenant(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "c2", metas[0].ChunkID)
}

func TestChunkRepository_MetasByTenant(t *testing.T) {
	repo, _, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.PutChunks(ctx,
		testChunk("t1", "c1", "d1", 0),
		testChunk("t1", "c2", "d2", 1),
		testChunk("t2", "c3", "d3", 0),
	))

	metas, err := repo.MetasByTenant(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, metas, 2)
	for _, meta := range metas {
		assert.Equal(t, "t1", meta.TenantID)
		assert.Equal(t, "fiche_technique", meta.Metadata["source_type"])
	}

	empty, err := repo.MetasByTenant(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestChunkRepository_MetasByDocument_AcrossTenants(t *testing.T) {
	repo, _, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.PutChunks(ctx,
		testChunk("t1", "c1", "shared-doc", 0),
		testChunk("t2", "c2", "shared-doc", 0),
		testChunk("t1", "c3", "other-doc", 1),
	))

	metas, err := repo.MetasByDocument(ctx, "shared-doc")
	require.NoError(t, err)
	require.Len(t, metas, 2)

	tenants := map[string]bool{}
	for _, meta := range metas {
		assert.Equal(t, "shared-doc", meta.DocumentID)
		tenants[meta.TenantID] = true
	}
	assert.True(t, tenants["t1"])
	assert.True(t, tenants["t2"])
}

func TestChunkRepository_AllMetas(t *testing.T) {
	repo, _, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.PutChunks(ctx,
		testChunk("t1", "c1", "d1", 0),
		testChunk("t2", "c2", "d2", 0),
	))

	metas, err := repo.AllMetas(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 2)
}

func TestIndexRepository_SnapshotLifecycle(t *testing.T) {
	_, repo, _ := setupRepos(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveSnapshot(ctx, "t1", []byte{1, 2, 3}))
	require.NoError(t, repo.SaveSnapshot(ctx, "t2", []byte{4}))

	snapshots, err := repo.Snapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, []byte{1, 2, 3}, snapshots["t1"])
	assert.Equal(t, []byte{4}, snapshots["t2"])

	// Overwrite replaces.
	require.NoError(t, repo.SaveSnapshot(ctx, "t1", []byte{9}))
	snapshots, err = repo.Snapshots(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, snapshots["t1"])

	// Delete, including a missing tenant, succeeds.
	require.NoError(t, repo.DeleteSnapshot(ctx, "t1"))
	require.NoError(t, repo.DeleteSnapshot(ctx, "ghost"))

	snapshots, err = repo.Snapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, snapshots, 1)
}

func TestManifestRepository_RoundTrip(t *testing.T) {
	_, _, repo := setupRepos(t)
	ctx := context.Background()

	_, err := repo.GetManifest(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, repo.SaveManifest(ctx, &core.Manifest{
		Model:     "text-embedding-3-small",
		Dimension: 1536,
	}))

	manifest, err := repo.GetManifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", manifest.Model)
	assert.Equal(t, 1536, manifest.Dimension)
	assert.NotZero(t, manifest.UpdatedAtMicro)
}
