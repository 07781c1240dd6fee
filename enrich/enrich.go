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

import "strings"

// maxExcerptsPerCategory bounds how many excerpts one category may
// contribute to the storage prefix, to keep it from dwarfing the text.
const maxExcerptsPerCategory = 2

// CategoryMatch pairs a detected category with the excerpts of the
// source text that matched it, in order of detection.
type CategoryMatch struct {
	Name     string
	Excerpts []string
}

// CategorizeTechnicalContent detects technical information in text and
// groups the matching excerpts by category. Categories with no match
// are omitted; the returned slice follows catalog order.
func CategorizeTechnicalContent(text string) []CategoryMatch {
	var matches []CategoryMatch
	for _, category := range catalog {
		var excerpts []string
		for _, pattern := range category.Patterns {
			excerpts = append(excerpts, pattern.FindAllString(text, -1)...)
		}
		if len(excerpts) > 0 {
			matches = append(matches, CategoryMatch{Name: category.Name, Excerpts: excerpts})
		}
	}
	return matches
}

// ForStorage enriches a chunk's text before it is embedded for
// storage. Detected technical categories are summarized into a prefix
// with up to two excerpts each, followed by source and title tags from
// the metadata when present. Text with no detected category is
// returned unchanged.
func ForStorage(text string, metadata map[string]string) string {
	matches := CategorizeTechnicalContent(text)
	if len(matches) == 0 {
		return text
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}

	var b strings.Builder
	b.WriteString("Ce texte contient des informations techniques sur: ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(". ")

	for _, m := range matches {
		excerpts := m.Excerpts
		if len(excerpts) > maxExcerptsPerCategory {
			excerpts = excerpts[:maxExcerptsPerCategory]
		}
		b.WriteString("[")
		b.WriteString(m.Name)
		b.WriteString(": ")
		b.WriteString(strings.Join(excerpts, " | "))
		b.WriteString("] ")
	}

	if metadata != nil {
		if sourceType, ok := metadata["source_type"]; ok {
			b.WriteString("[source: ")
			b.WriteString(sourceType)
			b.WriteString("] ")
		}
		if title, ok := metadata["title"]; ok {
			b.WriteString("[document: ")
			b.WriteString(title)
			b.WriteString("] ")
		}
	}

	b.WriteString(text)
	return b.String()
}
