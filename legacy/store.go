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

package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/migrate"
)

const (
	chunksIndexFile = "chunks_index.json"
	chunksDirName   = "chunks"
)

// indexEntry is one row of the predecessor's chunks_index.json.
type indexEntry struct {
	ChunkID    string `json:"chunk_id"`
	DocumentID string `json:"document_id"`
	ClientID   string `json:"client_id"`
	Title      string `json:"title"`
}

// chunkRecord is the on-disk shape of one chunk file. Metadata values
// were written as arbitrary JSON scalars.
type chunkRecord struct {
	ChunkID    string         `json:"chunk_id"`
	DocumentID string         `json:"document_id"`
	Content    string         `json:"content"`
	Metadata   map[string]any `json:"metadata"`
}

// Store reads the JSON-file layout of the predecessor vector store:
// a chunks_index.json mapping chunk IDs to their tenant, plus one
// chunks/<chunk_id>.json record per chunk. It is read-only and exists
// solely as a migration source.
type Store struct {
	dir     string
	entries map[string]indexEntry
}

var _ migrate.Source = (*Store)(nil)

// Open reads a predecessor store's index from its data directory.
func Open(dir string) (*Store, error) {
	data, err := os.ReadFile(filepath.Join(dir, chunksIndexFile))
	if err != nil {
		return nil, fmt.Errorf("reading legacy chunk index: %w", err)
	}

	var entries map[string]indexEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing legacy chunk index: %w", err)
	}

	return &Store{dir: dir, entries: entries}, nil
}

// ChunkIDs lists every chunk ID in the legacy index, sorted for
// reproducible migration order.
func (s *Store) ChunkIDs(_ context.Context) ([]string, error) {
	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// ResolveChunk loads one chunk's full record from its JSON file. The
// tenant comes from the index entry's client ID, defaulting when the
// legacy data carries none.
func (s *Store) ResolveChunk(_ context.Context, chunkID string) (*core.Chunk, error) {
	entry, ok := s.entries[chunkID]
	if !ok {
		return nil, fmt.Errorf("chunk %q not in legacy index", chunkID)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, chunksDirName, chunkID+".json"))
	if err != nil {
		return nil, fmt.Errorf("reading legacy chunk %q: %w", chunkID, err)
	}

	var record chunkRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parsing legacy chunk %q: %w", chunkID, err)
	}

	tenantID := entry.ClientID
	if tenantID == "" {
		tenantID = core.DefaultTenantID
	}

	return &core.Chunk{
		ChunkID:    record.ChunkID,
		DocumentID: record.DocumentID,
		Content:    record.Content,
		Metadata:   stringifyMetadata(record.Metadata),
		TenantID:   tenantID,
	}, nil
}

// Len returns the number of chunks in the legacy index.
func (s *Store) Len() int {
	return len(s.entries)
}

// stringifyMetadata flattens legacy JSON scalar values to strings.
// Non-scalar values (arrays, objects) are dropped.
func stringifyMetadata(raw map[string]any) map[string]string {
	if raw == nil {
		return nil
	}
	metadata := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			metadata[key] = v
		case float64:
			metadata[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			metadata[key] = strconv.FormatBool(v)
		case nil:
		default:
		}
	}
	return metadata
}
