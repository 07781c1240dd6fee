package core

//go:generate go run ../cmd/musgen

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// DefaultTenantID is used when an operation does not name a tenant.
const DefaultTenantID = "default"

// ChunkIDFromContent derives a deterministic chunk ID from text content
// using BLAKE2b hashing. Identical content always yields the same ID.
func ChunkIDFromContent(text string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil))
}

// Chunk is a unit of retrievable text scoped to one tenant and one source
// document. Identity is the pair (TenantID, ChunkID); a ChunkID may repeat
// across tenants.
type Chunk struct {
	ChunkID    string
	DocumentID string
	Content    string
	Metadata   map[string]string
	TenantID   string
	// IndexPosition is the chunk's offset in its tenant's vector index,
	// assigned at append time as the vector count before insertion.
	IndexPosition int
}

// ChunkMeta mirrors the fields of a Chunk needed for reverse lookup
// without loading the full record.
type ChunkMeta struct {
	TenantID      string
	ChunkID       string
	DocumentID    string
	IndexPosition int
	Metadata      map[string]string
}

// Manifest records the embedding model a store's indexes were built with.
// A provider whose dimension disagrees with the manifest cannot open the
// store; the data must be migrated first.
type Manifest struct {
	Model     string
	Dimension int
	// UpdatedAtMicro is the last write time in Unix microseconds.
	UpdatedAtMicro int64
}

// ProductContext carries optional product information appended to a query
// before embedding.
type ProductContext struct {
	Name     string
	Category string
}

// RAGQuery captures both the literal query text and the enriched form that
// was actually embedded, along with the metadata filters applied.
type RAGQuery struct {
	QueryText     string
	EnrichedQuery string
	Filters       map[string]string
	TopK          int
}

// ScoredChunk is a retrieved chunk with its final relevance score.
type ScoredChunk struct {
	Chunk *Chunk
	Score float64
}

// RAGResult is the outcome of a retrieval query: the query as executed and
// the matching chunks in descending score order.
type RAGResult struct {
	Query       RAGQuery
	Chunks      []*ScoredChunk
	TotalChunks int
}

// DocumentSummary describes one document of a tenant, reconstructed from
// its chunks' metadata.
type DocumentSummary struct {
	DocumentID string
	Title      string
	SourceType string
	ChunkCount int
}

// TenantSummary is a rollup of the documents a tenant has indexed.
type TenantSummary struct {
	TenantID      string
	DocumentCount int
	DocumentTypes map[string]int
	Documents     []DocumentSummary
}
