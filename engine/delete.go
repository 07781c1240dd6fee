package engine

import "context"

// DeleteDocument removes every chunk belonging to a document, across
// all tenants, and rebuilds each affected tenant's index from its
// surviving chunks. Returns false when no chunk references the
// document; that is a no-op, not an error.
//
// The rebuild re-embeds survivors in their original insertion order
// and reassigns positions 0..n-1, restoring the position bijection the
// append-only index cannot maintain through deletions natively.
func (e *Engine) DeleteDocument(ctx context.Context, documentID string) (bool, error) {
	metas, err := e.chunks.MetasByDocument(ctx, documentID)
	if err != nil {
		return false, err
	}
	if len(metas) == 0 {
		e.logger.Warn("document not found, nothing deleted", "documentID", documentID)
		return false, nil
	}

	doomed := make(map[string][]string) // tenant -> chunk IDs
	for _, meta := range metas {
		doomed[meta.TenantID] = append(doomed[meta.TenantID], meta.ChunkID)
	}

	for tenantID, chunkIDs := range doomed {
		if err := e.deleteFromTenant(ctx, tenantID, chunkIDs); err != nil {
			return false, err
		}
	}

	e.logger.Info("document deleted", "documentID", documentID, "chunks", len(metas), "tenants", len(doomed))
	return true, nil
}

// deleteFromTenant removes the given chunks from one tenant and
// rebuilds its index from the survivors.
func (e *Engine) deleteFromTenant(ctx context.Context, tenantID string, chunkIDs []string) error {
	ts := e.tenant(tenantID)
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if err := e.chunks.DeleteChunks(ctx, tenantID, chunkIDs...); err != nil {
		return err
	}

	survivors, err := e.chunks.MetasByTenant(ctx, tenantID)
	if err != nil {
		return err
	}
	return e.rebuildTenant(ctx, tenantID, ts, survivors)
}

// Tenants returns the IDs of every tenant with loaded state, in no
// particular order.
func (e *Engine) Tenants() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.tenants))
	for id := range e.tenants {
		ids = append(ids, id)
	}
	return ids
}

// VectorCount returns the number of vectors currently indexed for a
// tenant. Unknown tenants count zero.
func (e *Engine) VectorCount(tenantID string) int {
	ts, ok := e.lookupTenant(e.resolveTenant(tenantID))
	if !ok {
		return 0
	}
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	if ts.index == nil {
		return 0
	}
	return ts.index.Len()
}
