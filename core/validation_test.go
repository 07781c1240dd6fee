package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validChunk() *Chunk {
	return &Chunk{
		ChunkID:    "c1",
		DocumentID: "d1",
		Content:    "some content",
		TenantID:   "t1",
	}
}

func TestValidateChunk_Valid(t *testing.T) {
	assert.NoError(t, ValidateChunk(validChunk()))
}

func TestValidateChunk_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Chunk)
		wantErr error
	}{
		{
			name:    "empty chunk ID",
			mutate:  func(c *Chunk) { c.ChunkID = "" },
			wantErr: ErrEmptyChunkID,
		},
		{
			name:    "empty document ID",
			mutate:  func(c *Chunk) { c.DocumentID = "" },
			wantErr: ErrEmptyDocumentID,
		},
		{
			name:    "empty content",
			mutate:  func(c *Chunk) { c.Content = "" },
			wantErr: ErrEmptyContent,
		},
		{
			name:    "empty tenant ID",
			mutate:  func(c *Chunk) { c.TenantID = "" },
			wantErr: ErrEmptyTenantID,
		},
		{
			name:    "colon in chunk ID",
			mutate:  func(c *Chunk) { c.ChunkID = "a:b" },
			wantErr: ErrInvalidIDCharacter,
		},
		{
			name:    "colon in tenant ID",
			mutate:  func(c *Chunk) { c.TenantID = "t:1" },
			wantErr: ErrInvalidIDCharacter,
		},
		{
			name:    "negative index position",
			mutate:  func(c *Chunk) { c.IndexPosition = -1 },
			wantErr: ErrNegativeIndexPosition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunk := validChunk()
			tt.mutate(chunk)

			err := ValidateChunk(chunk)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidChunk)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateChunk_Nil(t *testing.T) {
	assert.ErrorIs(t, ValidateChunk(nil), ErrInvalidChunk)
}

func TestChunkIDFromContent_Deterministic(t *testing.T) {
	a := ChunkIDFromContent("Cuve 500 L")
	b := ChunkIDFromContent("Cuve 500 L")
	c := ChunkIDFromContent("Cuve 1000 L")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16) // 8 bytes hex encoded
}
