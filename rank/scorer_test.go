package rank

import (
	"testing"

	"github.com/provex/ragstore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseScore(t *testing.T) {
	assert.InDelta(t, 10.0, BaseScore(0), 1e-9)
	assert.InDelta(t, 5.0, BaseScore(1), 1e-9)
	assert.InDelta(t, 1.0, BaseScore(9), 1e-9)
	assert.Greater(t, BaseScore(0.5), BaseScore(2.0))
}

func TestContentBonus_TechnicalDensity(t *testing.T) {
	// Two measured values, no list structure.
	bonus := ContentBonus("Cuve 500 L, hauteur 120 cm")
	assert.InDelta(t, 1.0, bonus, 1e-9)

	// No technical content at all.
	assert.InDelta(t, 0.0, ContentBonus("Un excellent choix"), 1e-9)
}

func TestContentBonus_DensityCap(t *testing.T) {
	// Ten measured values; density bonus caps at 3.
	content := "1 cm 2 cm 3 cm 4 cm 5 cm 6 cm 7 cm 8 cm 9 cm 10 cm"
	assert.InDelta(t, 3.0, ContentBonus(content), 1e-9)
}

func TestContentBonus_ListStructure(t *testing.T) {
	bulleted := "Caractéristiques:\n• Robuste\n• Léger"
	assert.InDelta(t, 1.0, ContentBonus(bulleted), 1e-9)

	numbered := "Étapes:\n1. Poser la cuve\n2. Brancher"
	assert.InDelta(t, 1.0, ContentBonus(numbered), 1e-9)
}

func TestSectionBonus_TechnicalSpecs(t *testing.T) {
	// Three technical terms (dimension, poids, garantie) and two units
	// (cm, kg) mentioned in prose.
	content := "dimension et poids: garantie incluse, mesures en cm et kg"

	bonus := SectionBonus(content, "Caractéristiques techniques")
	assert.Greater(t, bonus, 0.0)
	assert.LessOrEqual(t, bonus, 5.0) // 2.5 terms cap + 2.5 units cap
}

func TestSectionBonus_TermCaps(t *testing.T) {
	// Every advantage term present: bonus must cap at 5.
	content := "avantage bénéfice atout point fort meilleur optimal efficace " +
		"pratique facile rapide économique durable fiable robuste innovant exclusif unique"
	assert.InDelta(t, 5.0, SectionBonus(content, "Avantages"), 1e-9)
}

func TestSectionBonus_UnknownSection(t *testing.T) {
	assert.Zero(t, SectionBonus("avantage durable", "rubrique-inconnue"))
	assert.Zero(t, SectionBonus("avantage durable", ""))
}

func TestScore_TechnicalScenario(t *testing.T) {
	// A chunk full of measured values queried for the technical section
	// must score above its distance-only base.
	content := "Cuve 500 L, hauteur 120 cm"
	distance := float32(0.5)

	score := Score(distance, content, "Caractéristiques techniques")
	assert.Greater(t, score, BaseScore(distance))
}

func TestSort_DescendingScore(t *testing.T) {
	chunks := []*core.ScoredChunk{
		{Chunk: &core.Chunk{ChunkID: "a"}, Score: 3},
		{Chunk: &core.Chunk{ChunkID: "b"}, Score: 9},
		{Chunk: &core.Chunk{ChunkID: "c"}, Score: 6},
	}
	Sort(chunks)

	assert.Equal(t, "b", chunks[0].Chunk.ChunkID)
	assert.Equal(t, "c", chunks[1].Chunk.ChunkID)
	assert.Equal(t, "a", chunks[2].Chunk.ChunkID)
}

func TestSort_TieBreaksOnDescendingChunkID(t *testing.T) {
	chunks := []*core.ScoredChunk{
		{Chunk: &core.Chunk{ChunkID: "aaa"}, Score: 5},
		{Chunk: &core.Chunk{ChunkID: "zzz"}, Score: 5},
		{Chunk: &core.Chunk{ChunkID: "mmm"}, Score: 5},
	}
	Sort(chunks)

	require.Len(t, chunks, 3)
	assert.Equal(t, "zzz", chunks[0].Chunk.ChunkID)
	assert.Equal(t, "mmm", chunks[1].Chunk.ChunkID)
	assert.Equal(t, "aaa", chunks[2].Chunk.ChunkID)
}
