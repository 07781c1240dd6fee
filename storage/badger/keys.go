package badger

import (
	"fmt"
	"strings"
)

// Key prefixes for different data types. Tenant, chunk and document IDs
// are embedded verbatim, so they must not contain the ':' separator;
// core.ValidateChunk enforces this before anything reaches storage.
const (
	chunkRecordPrefix = "chkrec"
	chunkMetaPrefix   = "chkmeta"
	chunkDocPrefix    = "chkdoc"
	indexSnapPrefix   = "tenidx"
	manifestKey       = "manifest"
)

// makeChunkKey generates a key for a chunk record.
// Format: prefix:tenantID:chunkID
func makeChunkKey(tenantID, chunkID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", chunkRecordPrefix, tenantID, chunkID))
}

// makeChunkMetaKey generates a key for a chunk's metadata mirror.
// Format: prefix:tenantID:chunkID
func makeChunkMetaKey(tenantID, chunkID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", chunkMetaPrefix, tenantID, chunkID))
}

// makeChunkDocKey generates a composite key for the document index.
// Format: prefix:documentID:tenantID:chunkID
func makeChunkDocKey(documentID, tenantID, chunkID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s:%s", chunkDocPrefix, documentID, tenantID, chunkID))
}

// splitChunkDocKey extracts (tenantID, chunkID) from a document index key.
func splitChunkDocKey(key []byte, documentID string) (tenantID, chunkID string, ok bool) {
	prefix := fmt.Sprintf("%s:%s:", chunkDocPrefix, documentID)
	rest, found := strings.CutPrefix(string(key), prefix)
	if !found {
		return "", "", false
	}
	tenantID, chunkID, ok = strings.Cut(rest, ":")
	return
}

// makeIndexSnapshotKey generates a key for a tenant's index snapshot.
func makeIndexSnapshotKey(tenantID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", indexSnapPrefix, tenantID))
}

// splitIndexSnapshotKey extracts the tenant ID from a snapshot key.
func splitIndexSnapshotKey(key []byte) (tenantID string, ok bool) {
	return strings.CutPrefix(string(key), indexSnapPrefix+":")
}

// makeManifestKey generates the key for the store manifest.
func makeManifestKey() []byte {
	return []byte(manifestKey)
}
