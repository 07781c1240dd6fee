package storage

import (
	"testing"

	"github.com/provex/ragstore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkSerializationRoundTrip(t *testing.T) {
	chunk := &core.Chunk{
		ChunkID:    "c1",
		DocumentID: "d1",
		Content:    "Cuve de 500 L, hauteur : 120 cm",
		Metadata: map[string]string{
			"title":       "Fiche cuve",
			"source_type": "fiche_technique",
		},
		TenantID:      "acme",
		IndexPosition: 7,
	}

	got, err := UnmarshalChunk(MarshalChunk(chunk))
	require.NoError(t, err)
	assert.Equal(t, chunk, got)
}

func TestChunkUnmarshalCorrupt(t *testing.T) {
	_, err := UnmarshalChunk([]byte{0xff, 0xff})
	assert.Error(t, err)
}
