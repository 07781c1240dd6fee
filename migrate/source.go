package migrate

import (
	"context"

	"github.com/provex/ragstore/core"
)

// Source is the read-only view of a predecessor store that migration
// consumes: an enumerable set of chunk IDs, each resolvable to its
// full record. Records that cannot be resolved are skipped by the
// migrator, not fatal.
type Source interface {
	// ChunkIDs lists every chunk ID known to the source store.
	ChunkIDs(ctx context.Context) ([]string, error)

	// ResolveChunk loads the full record for one chunk ID. The
	// returned chunk carries its original tenant assignment.
	ResolveChunk(ctx context.Context, chunkID string) (*core.Chunk, error)
}
