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

package enrich

import (
	"strings"

	"github.com/provex/ragstore/core"
)

// sectionGroup maps a family of section-type aliases to the fixed
// retrieval instruction prepended to queries targeting that section.
type sectionGroup struct {
	aliases     []string
	instruction string
}

var sectionGroups = []sectionGroup{
	{
		aliases:     []string{"caractéristiques techniques", "spécifications", "fiche technique", "specs", "technique"},
		instruction: "Recherche exhaustive d'informations techniques détaillées sur: dimensions, poids, capacité, matériaux, performance, normes, compatibilité, résistance, garantie, couleur, composition. Inclure toutes les mesures, valeurs et spécifications précises. ",
	},
	{
		aliases:     []string{"avantages", "bénéfices", "points forts", "atouts"},
		instruction: "Recherche exhaustive d'informations sur les avantages, bénéfices et points forts: atouts, valeur ajoutée, différenciation, innovation, exclusivité, économies, facilité, confort, durabilité, fiabilité, praticité. ",
	},
	{
		aliases:     []string{"utilisation", "mode d'emploi", "fonctionnement", "usage", "emploi"},
		instruction: "Recherche exhaustive d'informations sur l'utilisation, le fonctionnement et le mode d'emploi: étapes détaillées, procédure complète, manipulation, réglages, paramètres, précautions, conseils pratiques, astuces d'utilisation. ",
	},
	{
		aliases:     []string{"description", "présentation", "introduction", "aperçu"},
		instruction: "Recherche exhaustive d'une description générale et complète du produit: vue d'ensemble, introduction, contexte, positionnement, public cible, besoins adressés, problèmes résolus, histoire du produit. ",
	},
	{
		aliases:     []string{"fonctionnalités", "fonctions", "usages", "caractéristiques", "features"},
		instruction: "Recherche exhaustive des fonctionnalités, fonctions et usages du produit: toutes les capacités, options, modes, réglages, paramètres configurables, variantes, extensions possibles. ",
	},
	{
		aliases:     []string{"cas d'usage", "applications", "utilisations", "exemples", "scénarios"},
		instruction: "Recherche exhaustive des cas d'usage, applications et exemples d'utilisation concrets: tous les scénarios, situations, contextes d'utilisation, témoignages, retours d'expérience, secteurs d'application. ",
	},
	{
		aliases:     []string{"installation", "montage", "mise en service", "assemblage", "configuration"},
		instruction: "Recherche exhaustive sur l'installation, le montage et la mise en service: toutes les étapes de configuration, préparation, outils nécessaires, temps requis, précautions, connexions, branchements, tests. ",
	},
	{
		aliases:     []string{"entretien", "maintenance", "nettoyage", "conservation"},
		instruction: "Recherche exhaustive sur l'entretien, la maintenance et le nettoyage: fréquence, méthodes, produits recommandés, précautions, durabilité, conservation, stockage, hivernage, protection. ",
	},
	{
		aliases:     []string{"environnement", "écologie", "développement durable", "impact"},
		instruction: "Recherche exhaustive sur l'impact environnemental, l'écologie et le développement durable: matériaux recyclables, économie d'énergie, réduction des déchets, empreinte carbone, certifications environnementales. ",
	},
	{
		aliases:     []string{"sécurité", "protection", "précautions", "avertissements"},
		instruction: "Recherche exhaustive sur la sécurité, les protections et précautions: normes de sécurité, dispositifs de protection, avertissements, contre-indications, risques potentiels, mesures préventives. ",
	},
}

// instructionFor returns the retrieval instruction for a section type,
// or "" when the section type is unknown.
func instructionFor(sectionType string) string {
	needle := strings.ToLower(sectionType)
	for _, group := range sectionGroups {
		for _, alias := range group.aliases {
			if needle == alias {
				return group.instruction
			}
		}
	}
	return ""
}

// Query enriches a retrieval query for a given section type. Known
// section types get a fixed instruction sentence prepended; unknown or
// empty section types leave the query unchanged. The transformation is
// deterministic: the same inputs always yield the same output.
func Query(query, sectionType string) string {
	if sectionType == "" {
		return query
	}
	instruction := instructionFor(sectionType)
	if instruction == "" {
		return query
	}
	return instruction + query
}

// WithProductContext appends product scoping to an already enriched
// query: the product name and, when present, its category.
func WithProductContext(query string, product *core.ProductContext) string {
	if product == nil {
		return query
	}
	if product.Name != "" {
		query += " pour le produit " + product.Name
	}
	if product.Category != "" {
		query += " dans la catégorie " + product.Category
	}
	return query
}
