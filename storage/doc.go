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


// Package storage provides the storage abstraction layer for ragstore.
//
// This package defines repository interfaces that decouple storage
// implementation from the retrieval engine. Three repositories cover the
// persisted layout:
//
//   - ChunkRepository: one record per (tenant, chunk) plus a metadata
//     mirror used for reverse lookup without loading full records
//   - IndexRepository: one serialized vector-index snapshot per tenant
//   - ManifestRepository: the embedding model and dimension the store's
//     indexes were built with
//
// Constructors in backend packages return these interfaces rather than
// concrete types, so alternative backends and test doubles can be swapped
// in without touching consumers:
//
//	repo, err := badger.NewChunkRepository(backend)
//
// All repository implementations must be thread-safe, and every mutating
// call must be atomic: a crash mid-write may lose the call but must never
// leave a half-applied one.
//
// All methods accept a context.Context for cancellation. Pass
// context.Background() when no timeout is needed.
package storage
