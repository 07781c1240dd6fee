// Copyright 2025 Provex Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package engine

import (
	"context"

	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/enrich"
	"github.com/provex/ragstore/rank"
)

// DefaultTopK is the result count used when QueryOptions leaves TopK
// unset.
const DefaultTopK = 10

// overFetchFactor is the multiplier applied to TopK when requesting
// nearest neighbors, leaving margin for metadata filtering and
// re-ranking before truncation.
const overFetchFactor = 4

// QueryOptions carries the optional parameters of a retrieval query.
type QueryOptions struct {
	// TenantID scopes the query to one tenant partition. Empty means
	// the engine's default tenant.
	TenantID string

	// TopK is the maximum number of chunks to return. Zero or negative
	// means DefaultTopK.
	TopK int

	// Filters are exact-match constraints on chunk metadata. A chunk
	// missing a filtered key is excluded; absence is not a wildcard.
	Filters map[string]string

	// SectionType biases enrichment and scoring toward one section
	// family ("Caractéristiques techniques", "Avantages", ...).
	SectionType string

	// Product scopes the query to a product by name and category.
	Product *core.ProductContext
}

func (o *QueryOptions) normalize() {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
}

// Query runs the full retrieval pipeline for a query string: section
// enrichment, embedding, over-fetched nearest-neighbor search, metadata
// filtering, hybrid scoring, and deterministic ranking. An unknown or
// empty tenant yields an empty result, not an error.
func (e *Engine) Query(ctx context.Context, queryText string, opts *QueryOptions) (*core.RAGResult, error) {
	return e.QueryWithMonitor(ctx, queryText, opts, nil)
}

// QueryWithMonitor runs Query with monitoring callbacks at each stage
// of the pipeline.
func (e *Engine) QueryWithMonitor(ctx context.Context, queryText string, opts *QueryOptions, monitor QueryMonitor) (*core.RAGResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if opts == nil {
		opts = &QueryOptions{}
	}
	opts.normalize()
	tenantID := e.resolveTenant(opts.TenantID)

	filters := opts.Filters
	if filters == nil {
		filters = map[string]string{}
	}

	monitor.Start(queryText)

	enriched := enrich.Query(queryText, opts.SectionType)
	enriched = enrich.WithProductContext(enriched, opts.Product)
	monitor.AfterEnrichment(enriched)

	result := &core.RAGResult{
		Query: core.RAGQuery{
			QueryText:     queryText,
			EnrichedQuery: enriched,
			Filters:       filters,
			TopK:          opts.TopK,
		},
		Chunks: []*core.ScoredChunk{},
	}

	ts, ok := e.lookupTenant(tenantID)
	if !ok {
		monitor.Finish(result)
		return result, nil
	}

	ts.mu.RLock()
	defer ts.mu.RUnlock()
	if ts.index == nil || ts.index.Len() == 0 {
		monitor.Finish(result)
		return result, nil
	}

	vector, err := e.provider.EmbedText(ctx, enriched)
	if err != nil {
		e.logger.Error("error embedding query", "tenantID", tenantID, "err", err)
		return nil, err
	}

	k := opts.TopK * overFetchFactor
	if k > ts.index.Len() {
		k = ts.index.Len()
	}
	neighbors, err := ts.index.Search(vector, k)
	if err != nil {
		return nil, err
	}
	monitor.AfterVectorSearch(len(neighbors))

	scored := make([]*core.ScoredChunk, 0, len(neighbors))
	for _, neighbor := range neighbors {
		chunkID := ts.chunkIDs[neighbor.Position]
		chunk, err := e.chunks.GetChunk(ctx, tenantID, chunkID)
		if err != nil {
			e.logger.Warn("skipping unresolvable chunk",
				"tenantID", tenantID, "chunkID", chunkID, "err", err)
			continue
		}
		if !matchesFilters(chunk.Metadata, opts.Filters) {
			continue
		}
		scored = append(scored, &core.ScoredChunk{
			Chunk: chunk,
			Score: rank.Score(neighbor.Distance, chunk.Content, opts.SectionType),
		})
	}
	monitor.AfterFiltering(len(scored))

	rank.Sort(scored)
	if len(scored) > opts.TopK {
		scored = scored[:opts.TopK]
	}

	result.Chunks = scored
	result.TotalChunks = len(scored)
	monitor.Finish(result)
	return result, nil
}

// GetContext is the thin projection of Query consumed by the
// generation pipeline: it returns just the ordered chunks.
func (e *Engine) GetContext(ctx context.Context, queryText string, opts *QueryOptions) ([]*core.Chunk, error) {
	result, err := e.Query(ctx, queryText, opts)
	if err != nil {
		return nil, err
	}
	chunks := make([]*core.Chunk, len(result.Chunks))
	for i, scored := range result.Chunks {
		chunks[i] = scored.Chunk
	}
	return chunks, nil
}

// matchesFilters reports whether metadata satisfies every filter
// entry exactly. A missing key excludes the chunk.
func matchesFilters(metadata, filters map[string]string) bool {
	for key, want := range filters {
		got, ok := metadata[key]
		if !ok || got != want {
			return false
		}
	}
	return true
}
