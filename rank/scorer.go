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

package rank

import (
	"regexp"
	"sort"
	"strings"

	"github.com/provex/ragstore/core"
)

const (
	densityBonusPerMatch = 0.5
	densityBonusCap      = 3.0
	listBonus            = 1.0
	vocabBonusPerTerm    = 0.5
)

// technicalDensityRE matches measured values (number plus unit) in
// lowercased content. Each match signals technical density.
var technicalDensityRE = regexp.MustCompile(`\d+(?:[.,]\d+)?\s*(?:cm|mm|m|pouces|po|inch|kg|g|l|w|kw|bar|%)`)

// List markers: bullets and numbered items.
var (
	bulletListRE   = regexp.MustCompile(`[•\-\*]\s+[\p{L}\d_]`)
	numberedListRE = regexp.MustCompile(`\d+\.\s+[\p{L}\d_]`)
)

// sectionVocab is the bonus vocabulary for one section-type family:
// content mentioning these terms is more likely to serve that section.
type sectionVocab struct {
	aliases []string
	terms   []string
	cap     float64
}

// technicalVocab is special-cased: the technical section family counts
// two separately capped vocabularies, general terms and measure units.
var technicalVocab = struct {
	aliases []string
	terms   []string
	units   []string
	cap     float64
}{
	aliases: []string{"caractéristiques techniques", "spécifications", "fiche technique", "specs", "technique"},
	terms: []string{
		"dimension", "poids", "capacité", "matériau", "technique", "spécification",
		"caractéristique", "mesure", "performance", "puissance", "résistance", "norme",
		"certification", "garantie", "composition",
	},
	units: []string{"cm", "mm", "m", "kg", "g", "l", "litre", "w", "kw", "bar", "°c", "db", "hz"},
	cap:   2.5,
}

var sectionVocabs = []sectionVocab{
	{
		aliases: []string{"avantages", "bénéfices", "points forts", "atouts"},
		terms: []string{
			"avantage", "bénéfice", "atout", "point fort", "meilleur", "optimal",
			"efficace", "pratique", "facile", "rapide", "économique", "durable",
			"fiable", "robuste", "innovant", "exclusif", "unique",
		},
		cap: 5,
	},
	{
		aliases: []string{"description", "présentation", "introduction", "aperçu"},
		terms: []string{
			"description", "présentation", "introduction", "aperçu", "produit",
			"conçu", "développé", "solution", "gamme", "modèle", "série",
		},
		cap: 5,
	},
	{
		aliases: []string{"cas d'usage", "applications", "utilisations", "exemples", "scénarios"},
		terms: []string{
			"cas d'usage", "application", "utilisation", "exemple", "scénario",
			"contexte", "situation", "client", "utilisateur", "besoin", "solution",
		},
		cap: 5,
	},
	{
		aliases: []string{"installation", "montage", "mise en service", "assemblage", "configuration"},
		terms: []string{
			"installation", "mise en service", "montage", "assemblage", "configuration",
			"étape", "procédure", "outil", "connecter", "brancher", "fixer", "visser",
		},
		cap: 5,
	},
	{
		aliases: []string{"entretien", "maintenance", "nettoyage", "conservation"},
		terms: []string{
			"entretien", "maintenance", "nettoyage", "conservation", "stockage",
			"hivernage", "protection", "durabilité", "préserver", "prolonger",
		},
		cap: 5,
	},
}

// BaseScore converts a squared L2 distance into the 0-10 relevance
// scale: 10 at distance zero, falling toward zero as distance grows.
func BaseScore(distance float32) float64 {
	return 10.0 / (1.0 + float64(distance))
}

// ContentBonus scores section-independent signals in a chunk's
// content: technical density (measured values, capped at 3) and the
// presence of list structure (+1).
func ContentBonus(content string) float64 {
	lowered := strings.ToLower(content)

	density := len(technicalDensityRE.FindAllString(lowered, -1))
	bonus := float64(density) * densityBonusPerMatch
	if bonus > densityBonusCap {
		bonus = densityBonusCap
	}

	if bulletListRE.MatchString(content) || numberedListRE.MatchString(content) {
		bonus += listBonus
	}

	return bonus
}

// SectionBonus scores how well a chunk's content matches the
// vocabulary of the requested section type. Unknown or empty section
// types contribute nothing.
func SectionBonus(content, sectionType string) float64 {
	if sectionType == "" {
		return 0
	}
	needle := strings.ToLower(sectionType)
	lowered := strings.ToLower(content)

	if containsAlias(technicalVocab.aliases, needle) {
		bonus := cappedVocabBonus(lowered, technicalVocab.terms, technicalVocab.cap)
		bonus += cappedVocabBonus(lowered, technicalVocab.units, technicalVocab.cap)
		return bonus
	}

	for _, vocab := range sectionVocabs {
		if containsAlias(vocab.aliases, needle) {
			return cappedVocabBonus(lowered, vocab.terms, vocab.cap)
		}
	}
	return 0
}

// Score computes the full relevance score of a chunk for a query:
// the distance-derived base plus content and section bonuses.
func Score(distance float32, content, sectionType string) float64 {
	return BaseScore(distance) + ContentBonus(content) + SectionBonus(content, sectionType)
}

// Sort orders scored chunks by descending score. Ties break on
// descending chunk ID so results are fully deterministic.
func Sort(chunks []*core.ScoredChunk) {
	sort.Slice(chunks, func(i, j int) bool {
		if chunks[i].Score != chunks[j].Score {
			return chunks[i].Score > chunks[j].Score
		}
		return chunks[i].Chunk.ChunkID > chunks[j].Chunk.ChunkID
	})
}

func containsAlias(aliases []string, needle string) bool {
	for _, alias := range aliases {
		if alias == needle {
			return true
		}
	}
	return false
}

func cappedVocabBonus(lowered string, terms []string, limit float64) float64 {
	count := 0
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			count++
		}
	}
	bonus := float64(count) * vocabBonusPerTerm
	if bonus > limit {
		bonus = limit
	}
	return bonus
}
