package engine

import (
	"context"
	"sort"

	"github.com/provex/ragstore/core"
)

// TenantSummary reports what a tenant currently holds: its distinct
// documents, their titles and source types, and per-type counts.
// Document titles and source types come from the metadata of the
// document's first encountered chunk.
func (e *Engine) TenantSummary(ctx context.Context, tenantID string) (*core.TenantSummary, error) {
	tenantID = e.resolveTenant(tenantID)

	metas, err := e.chunks.MetasByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	docs := make(map[string]*core.DocumentSummary)
	for _, meta := range metas {
		doc, ok := docs[meta.DocumentID]
		if !ok {
			doc = &core.DocumentSummary{
				DocumentID: meta.DocumentID,
				Title:      metadataOr(meta.Metadata, "title", "Document sans titre"),
				SourceType: metadataOr(meta.Metadata, "source_type", "unknown"),
			}
			docs[meta.DocumentID] = doc
		}
		doc.ChunkCount++
	}

	summary := &core.TenantSummary{
		TenantID:      tenantID,
		DocumentCount: len(docs),
		DocumentTypes: make(map[string]int),
		Documents:     make([]core.DocumentSummary, 0, len(docs)),
	}
	for _, doc := range docs {
		summary.DocumentTypes[doc.SourceType]++
		summary.Documents = append(summary.Documents, *doc)
	}
	sort.Slice(summary.Documents, func(i, j int) bool {
		return summary.Documents[i].DocumentID < summary.Documents[j].DocumentID
	})

	return summary, nil
}

func metadataOr(metadata map[string]string, key, fallback string) string {
	if value, ok := metadata[key]; ok && value != "" {
		return value
	}
	return fallback
}
