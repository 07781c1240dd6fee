// Package engine implements the vector-store engine: per-tenant
// similarity indexes over durable chunk storage, with ingestion,
// enriched retrieval, document deletion with index rebuild, and the
// manifest check that forces migration on embedding-model changes.
//
// Chunk records are the source of truth; each tenant's index is a
// derived cache that is rebuilt from the records whenever its
// persisted snapshot is missing or out of step with them. All mutating
// operations serialize on a per-tenant lock, so reads never observe a
// partially rebuilt index.
package engine
