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


package core

import (
	"fmt"
	"strings"
)

// ValidateChunk validates a Chunk according to domain rules.
//
// Validation rules:
//   - ChunkID, DocumentID, Content and TenantID must not be empty
//   - ChunkID, DocumentID and TenantID must not contain ':' (reserved as
//     the storage key separator)
//   - IndexPosition must not be negative
//
// NOT validated:
//   - Metadata (nil and empty maps are both fine)
func ValidateChunk(chunk *Chunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.ChunkID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyChunkID)
	}

	if chunk.DocumentID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyDocumentID)
	}

	if chunk.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if chunk.TenantID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyTenantID)
	}

	for _, id := range []string{chunk.ChunkID, chunk.DocumentID, chunk.TenantID} {
		if strings.Contains(id, ":") {
			return fmt.Errorf("%w: %w: %q", ErrInvalidChunk, ErrInvalidIDCharacter, id)
		}
	}

	if chunk.IndexPosition < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrNegativeIndexPosition)
	}

	return nil
}
