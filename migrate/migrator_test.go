package migrate

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/provex/ragstore/core"
	embedmock "github.com/provex/ragstore/embed/mock"
	"github.com/provex/ragstore/engine"
	"github.com/provex/ragstore/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves chunks from memory, failing on demand.
type fakeSource struct {
	chunks  map[string]*core.Chunk
	order   []string
	listErr error
	failIDs map[string]bool
}

func (s *fakeSource) ChunkIDs(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.order, nil
}

func (s *fakeSource) ResolveChunk(ctx context.Context, chunkID string) (*core.Chunk, error) {
	if s.failIDs[chunkID] {
		return nil, errors.New("unreadable chunk file")
	}
	chunk, ok := s.chunks[chunkID]
	if !ok {
		return nil, errors.New("unknown chunk")
	}
	return chunk, nil
}

var _ Source = (*fakeSource)(nil)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	chunkRepo, indexRepo, manifestRepo, backend, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(func() {
		manifestRepo.Close()
		indexRepo.Close()
		chunkRepo.Close()
		backend.Close()
	})

	eng, err := engine.New(context.Background(), chunkRepo, indexRepo, manifestRepo, embedmock.NewProvider())
	require.NoError(t, err)
	t.Cleanup(eng.Release)
	return eng
}

func sourceChunk(tenantID, chunkID string) *core.Chunk {
	return &core.Chunk{
		ChunkID:    chunkID,
		DocumentID: "doc-" + chunkID,
		Content:    "contenu " + chunkID,
		Metadata:   map[string]string{"source_type": "fiche_technique"},
		TenantID:   tenantID,
	}
}

func fastConfig() *Config {
	return &Config{ReportInterval: 1, MaxRetries: 2, RetryDelay: time.Millisecond}
}

func TestNewMigrator_RequiredArgs(t *testing.T) {
	eng := newTestEngine(t)
	source := &fakeSource{}

	_, err := NewMigrator(nil, source, nil, nil)
	assert.ErrorIs(t, err, ErrEngineRequired)

	_, err = NewMigrator(eng, nil, nil, nil)
	assert.ErrorIs(t, err, ErrSourceRequired)

	m, err := NewMigrator(eng, source, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().MaxRetries, m.config.MaxRetries)
}

func TestRun_MigratesAllChunks(t *testing.T) {
	eng := newTestEngine(t)
	source := &fakeSource{
		chunks: map[string]*core.Chunk{
			"c1": sourceChunk("t1", "c1"),
			"c2": sourceChunk("t1", "c2"),
			"c3": sourceChunk("t2", "c3"),
		},
		order: []string{"c1", "c2", "c3"},
	}

	var progress bytes.Buffer
	m, err := NewMigrator(eng, source, fastConfig(), &progress)
	require.NoError(t, err)

	migrated, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, migrated)

	assert.Equal(t, 2, eng.VectorCount("t1"))
	assert.Equal(t, 1, eng.VectorCount("t2"))
	assert.Contains(t, progress.String(), "Starting migration of 3 chunks")
	assert.Contains(t, progress.String(), "Migrated 3 chunks, skipped 0")
}

func TestRun_SkipsUnresolvableChunks(t *testing.T) {
	eng := newTestEngine(t)
	source := &fakeSource{
		chunks: map[string]*core.Chunk{
			"c1": sourceChunk("t1", "c1"),
			"c3": sourceChunk("t1", "c3"),
		},
		order:   []string{"c1", "c2", "c3"},
		failIDs: map[string]bool{"c2": true},
	}

	var progress bytes.Buffer
	m, err := NewMigrator(eng, source, fastConfig(), &progress)
	require.NoError(t, err)

	migrated, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, migrated)
	assert.Equal(t, 2, eng.VectorCount("t1"))
	assert.Contains(t, progress.String(), "skipped 1")
}

func TestRun_SkipsChunksThatFailValidation(t *testing.T) {
	eng := newTestEngine(t)
	invalid := sourceChunk("t1", "c2")
	invalid.Content = ""
	source := &fakeSource{
		chunks: map[string]*core.Chunk{
			"c1": sourceChunk("t1", "c1"),
			"c2": invalid,
		},
		order: []string{"c1", "c2"},
	}

	m, err := NewMigrator(eng, source, fastConfig(), nil)
	require.NoError(t, err)

	migrated, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, migrated)
	assert.Equal(t, 1, eng.VectorCount("t1"))
}

func TestRun_EmptySource(t *testing.T) {
	eng := newTestEngine(t)
	source := &fakeSource{}

	var progress bytes.Buffer
	m, err := NewMigrator(eng, source, fastConfig(), &progress)
	require.NoError(t, err)

	migrated, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, migrated)
	assert.Contains(t, progress.String(), "No chunks found")
}

func TestRun_EnumerationFailureAborts(t *testing.T) {
	eng := newTestEngine(t)
	source := &fakeSource{listErr: errors.New("index file missing")}

	m, err := NewMigrator(eng, source, fastConfig(), nil)
	require.NoError(t, err)

	migrated, err := m.Run(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, migrated)
}

func TestRun_ContextCancellation(t *testing.T) {
	eng := newTestEngine(t)
	source := &fakeSource{
		chunks: map[string]*core.Chunk{
			"c1": sourceChunk("t1", "c1"),
			"c2": sourceChunk("t1", "c2"),
		},
		order: []string{"c1", "c2"},
	}

	m, err := NewMigrator(eng, source, fastConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	migrated, err := m.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, migrated)
}
