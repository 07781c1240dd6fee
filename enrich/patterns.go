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

import "regexp"

// Category is one detectable family of technical information, with the
// patterns that recognize it. Categories are evaluated in catalog
// order so enrichment output is deterministic.
type Category struct {
	Name     string
	Patterns []*regexp.Regexp
}

func mustCompile(exprs ...string) []*regexp.Regexp {
	regexps := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		regexps[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return regexps
}

// catalog holds the technical-information categories in their fixed
// evaluation order. The vocabulary is French because the corpus this
// engine serves is French product documentation.
var catalog = []Category{
	{
		Name: "dimensions",
		Patterns: mustCompile(
			`\d+\s*(?:cm|mm|m|pouces|po|inch)(?:\s*[xX]\s*\d+\s*(?:cm|mm|m|pouces|po|inch))+`,
			`(?:hauteur|largeur|longueur|diamètre|profondeur|épaisseur)\s*:?\s*\d+\s*(?:cm|mm|m|pouces|po|inch)`,
			`(?:dimensions|taille|mesure)\s*:?\s*\d+`,
			`\d+\s*(?:cm|mm|m)\s*(?:de|d')\s*(?:hauteur|largeur|longueur|diamètre|profondeur|épaisseur)`,
		),
	},
	{
		Name: "poids",
		Patterns: mustCompile(
			`\d+(?:[.,]\d+)?\s*(?:kg|g|tonnes|lbs|t)`,
			`(?:poids|masse|charge)\s*:?\s*\d+(?:[.,]\d+)?`,
			`(?:pèse|pesant)\s*\d+(?:[.,]\d+)?\s*(?:kg|g|tonnes|lbs|t)`,
		),
	},
	{
		Name: "capacité",
		Patterns: mustCompile(
			`\d+(?:[.,]\d+)?\s*(?:L|l|litres|litre|m3|mL|cl|m³)`,
			`(?:capacité|contenance|volume|stockage)\s*:?\s*\d+(?:[.,]\d+)?`,
			`(?:peut contenir|contient jusqu'à)\s*\d+(?:[.,]\d+)?\s*(?:L|l|litres|litre|m3|mL|cl|m³)`,
		),
	},
	{
		Name: "matériaux",
		Patterns: mustCompile(
			`(?:fabriqué|composé|constitué|conçu)\s*(?:en|de|d')\s*(?:plastique|métal|acier|bois|aluminium|PE|PVC|PEHD|polypropylène|polyéthylène|inox)`,
			`(?:matériau|matière|composition|structure)\s*:?\s*(?:plastique|métal|acier|bois|aluminium|PE|PVC|PEHD|polypropylène|polyéthylène|inox)`,
			`(?:en|de)\s*(?:plastique|métal|acier|bois|aluminium|PE|PVC|PEHD|polypropylène|polyéthylène|inox)\s*(?:de qualité|résistant|durable)`,
		),
	},
	{
		Name: "couleur",
		Patterns: mustCompile(
			`(?:couleur|coloris|teinte)\s*:?\s*(?:blanc|noir|gris|bleu|vert|rouge|jaune|marron|beige|anthracite|transparent)`,
			`(?:disponible en|existe en|proposé en|livré en)\s*(?:blanc|noir|gris|bleu|vert|rouge|jaune|marron|beige|anthracite|transparent)`,
			`(?:blanc|noir|gris|bleu|vert|rouge|jaune|marron|beige|anthracite|transparent)\s*(?:mat|brillant|satiné)`,
		),
	},
	{
		Name: "performance",
		Patterns: mustCompile(
			`(?:débit|pression|résistance|performance|puissance|rendement)\s*:?\s*\d+(?:[.,]\d+)?\s*(?:W|kW|bar|l/min|m³/h)`,
			`(?:consommation|rendement|efficacité|productivité)\s*:?\s*\d+(?:[.,]\d+)?`,
			`(?:jusqu'à|max|maximum)\s*\d+(?:[.,]\d+)?\s*(?:W|kW|bar|l/min|m³/h|%)`,
		),
	},
	{
		Name: "garantie",
		Patterns: mustCompile(
			`(?:garantie|durée de vie|assurance qualité)\s*:?\s*\d+\s*(?:an|ans|mois|année|années)`,
			`garantie\s*(?:constructeur|fabricant|usine)\s*(?:de)?\s*\d+\s*(?:an|ans|mois|année|années)`,
			`(?:garanti|assuré)\s*(?:pendant|durant|pour)\s*\d+\s*(?:an|ans|mois|année|années)`,
		),
	},
	{
		Name: "installation",
		Patterns: mustCompile(
			`(?:installation|montage|assemblage|mise en place)\s*(?:facile|simple|rapide|sans outil)`,
			`(?:s'installe|se monte|s'assemble)\s*(?:facilement|simplement|rapidement|sans outil)`,
			`(?:temps d'installation|durée de montage)\s*:?\s*\d+\s*(?:min|minute|minutes|heure|heures)`,
		),
	},
	{
		Name: "normes",
		Patterns: mustCompile(
			`(?:norme|certification|homologation|standard)\s*:?\s*(?:CE|NF|ISO|EN|DIN)\s*\d*`,
			`(?:conforme|répond|respecte)\s*(?:à la|aux)\s*(?:norme|certification|homologation|standard)\s*(?:CE|NF|ISO|EN|DIN)\s*\d*`,
			`(?:CE|NF|ISO|EN|DIN)\s*\d*\s*(?:certifié|homologué|approuvé)`,
		),
	},
	{
		Name: "compatibilité",
		Patterns: mustCompile(
			`(?:compatible|adapté|conçu)\s*(?:avec|pour)\s*(?:les|tous les|différents)?\s*(?:modèles|marques|systèmes|appareils)`,
			`(?:compatibilité|adaptation)\s*(?:avec|pour)\s*(?:les|tous les|différents)?\s*(?:modèles|marques|systèmes|appareils)`,
			`(?:s'adapte|se connecte|s'intègre)\s*(?:à|avec|sur)\s*(?:les|tous les|différents)?\s*(?:modèles|marques|systèmes|appareils)`,
		),
	},
}

// Categories returns the names of all technical-information categories
// in evaluation order.
func Categories() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.Name
	}
	return names
}
