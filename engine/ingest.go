package engine

import (
	"context"
	"fmt"

	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/enrich"
)

// embedChunkText produces the vector for a chunk's content, applying
// storage enrichment first when enabled.
func (e *Engine) embedChunkText(ctx context.Context, chunk *core.Chunk) ([]float32, error) {
	text := chunk.Content
	if e.storageEnrichment {
		text = enrich.ForStorage(text, chunk.Metadata)
	}
	return e.provider.EmbedText(ctx, text)
}

// AddChunk embeds a chunk's content and stores it in its tenant's
// partition. An empty TenantID resolves to the default tenant. The
// chunk's IndexPosition is assigned here as the tenant's vector count
// before insertion.
//
// The chunk record is persisted before the in-memory index is touched.
// Any later failure undoes both the record write and the in-memory
// append, so a failed AddChunk leaves no trace and is safe to retry.
func (e *Engine) AddChunk(ctx context.Context, chunk *core.Chunk) error {
	if chunk == nil {
		return core.ErrInvalidChunk
	}
	chunk.TenantID = e.resolveTenant(chunk.TenantID)
	if err := core.ValidateChunk(chunk); err != nil {
		return err
	}

	vector, err := e.embedChunkText(ctx, chunk)
	if err != nil {
		return err
	}

	ts := e.tenant(chunk.TenantID)
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if err := ts.ensureIndex(e.provider.Dimension()); err != nil {
		return err
	}

	position := ts.index.Len()
	chunk.IndexPosition = position
	if err := e.chunks.PutChunks(ctx, chunk); err != nil {
		return err
	}

	if _, err := ts.index.Append(vector); err != nil {
		e.undoChunkWrite(ctx, chunk)
		return fmt.Errorf("appending vector for chunk %q: %w", chunk.ChunkID, err)
	}
	ts.chunkIDs = append(ts.chunkIDs, chunk.ChunkID)

	if err := e.flushTenant(ctx, chunk.TenantID, ts); err != nil {
		// Roll back the in-memory append as well as the record write:
		// leaving the vector appended would let a retry of the same
		// chunk claim a second position.
		ts.index.Truncate(position)
		ts.chunkIDs = ts.chunkIDs[:position]
		e.undoChunkWrite(ctx, chunk)
		e.logger.Error("failed to flush tenant snapshot",
			"tenantID", chunk.TenantID, "err", err)
		return err
	}

	e.logger.Debug("chunk added",
		"tenantID", chunk.TenantID,
		"chunkID", chunk.ChunkID,
		"documentID", chunk.DocumentID,
		"position", chunk.IndexPosition)
	return nil
}

// undoChunkWrite deletes a chunk record written by a failed AddChunk.
// A failed undo is logged, not returned: the records-vs-index desync it
// leaves behind is repaired by the rebuild on next load.
func (e *Engine) undoChunkWrite(ctx context.Context, chunk *core.Chunk) {
	if err := e.chunks.DeleteChunks(ctx, chunk.TenantID, chunk.ChunkID); err != nil {
		e.logger.Error("failed to undo chunk write",
			"tenantID", chunk.TenantID, "chunkID", chunk.ChunkID, "err", err)
	}
}

// AddChunks adds chunks one at a time, stopping at the first failure.
func (e *Engine) AddChunks(ctx context.Context, chunks ...*core.Chunk) error {
	for _, chunk := range chunks {
		if err := e.AddChunk(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}
