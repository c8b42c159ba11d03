// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package catalog builds the ordered set of linkable entities used by the
// auto-link rewriter: published entrepreneur names plus static countries,
// sectors and glossary terms.
package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Category classifies where an entity came from. It does not affect
// matching.
type Category string

const (
	CategoryPerson Category = "person"
	CategoryPlace  Category = "place"
	CategorySector Category = "sector"
	CategoryTerm   Category = "glossary-term"
)

// LinkableEntity is a name eligible for auto-linking and the path its
// anchor points to.
type LinkableEntity struct {
	// Name is the display string matched in text, case-insensitively.
	Name string `json:"name" yaml:"name"`

	// TargetPath is the href of the generated anchor.
	TargetPath string `json:"target_path" yaml:"target_path"`

	Category Category `json:"category" yaml:"category"`
}

// Key returns the comparison key for an entity name: NFC-normalized,
// lowercased and trimmed. Names equal under Key are the same entity.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// Order sorts entities by name length (in runes) descending and drops
// later entries whose Key repeats an earlier one. Ties keep input order, so
// profiles listed before static data win equal-length conflicts. Empty
// names are removed. The input slice is not modified.
func Order(entities []LinkableEntity) []LinkableEntity {
	sorted := make([]LinkableEntity, 0, len(entities))
	for _, e := range entities {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		sorted = append(sorted, e)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return utf8.RuneCountInString(sorted[i].Name) > utf8.RuneCountInString(sorted[j].Name)
	})

	seen := make(map[string]bool, len(sorted))
	out := sorted[:0]
	for _, e := range sorted {
		k := Key(e.Name)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, e)
	}
	return out
}
