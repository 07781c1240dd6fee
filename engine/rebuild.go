package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/index"
)

// rebuildTenant reconstructs a tenant's index from its surviving chunk
// records: each chunk is re-embedded in original insertion order and
// reassigned a contiguous position 0..n-1. The updated records and the
// fresh snapshot are persisted before the in-memory state is swapped.
// Callers must hold the tenant's write lock (or own the state
// exclusively, as during load).
func (e *Engine) rebuildTenant(ctx context.Context, tenantID string, ts *tenantState, metas []*core.ChunkMeta) error {
	ix, err := index.New(e.provider.Dimension())
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		if err := e.snapshots.DeleteSnapshot(ctx, tenantID); err != nil {
			return err
		}
		ts.index = ix
		ts.chunkIDs = nil
		return nil
	}

	// Stable order: the positions chunks held before the rebuild.
	ordered := make([]*core.ChunkMeta, len(metas))
	copy(ordered, metas)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].IndexPosition < ordered[j].IndexPosition
	})

	chunks := make([]*core.Chunk, len(ordered))
	for i, meta := range ordered {
		chunk, err := e.chunks.GetChunk(ctx, tenantID, meta.ChunkID)
		if err != nil {
			return fmt.Errorf("loading chunk %q for rebuild: %w", meta.ChunkID, err)
		}
		chunks[i] = chunk
	}

	vectors, err := e.embedAll(ctx, chunks)
	if err != nil {
		return err
	}

	chunkIDs := make([]string, len(chunks))
	for i, chunk := range chunks {
		position, err := ix.Append(vectors[i])
		if err != nil {
			return fmt.Errorf("appending vector for chunk %q: %w", chunk.ChunkID, err)
		}
		chunk.IndexPosition = position
		chunkIDs[i] = chunk.ChunkID
	}

	if err := e.chunks.PutChunks(ctx, chunks...); err != nil {
		return err
	}
	if err := e.snapshots.SaveSnapshot(ctx, tenantID, index.Snapshot(ix)); err != nil {
		return err
	}

	ts.index = ix
	ts.chunkIDs = chunkIDs
	e.logger.Info("tenant index rebuilt", "tenantID", tenantID, "chunks", len(chunks))
	return nil
}

// embedAll embeds every chunk's content concurrently on the worker
// pool, preserving input order. The first error wins; remaining work
// still drains before returning.
func (e *Engine) embedAll(ctx context.Context, chunks []*core.Chunk) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))
	errs := make([]error, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		i, chunk := i, chunk
		submitErr := e.pool.Submit(func() {
			defer wg.Done()
			vectors[i], errs[i] = e.embedChunkText(ctx, chunk)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("embedding chunk %q: %w", chunks[i].ChunkID, err)
		}
	}
	return vectors, nil
}
