// Copyright AfriWiki contributors, 2026. All rights reserved.

package autolink

import (
	"fmt"
	"strings"

	"github.com/afriwiki/afriwiki/internal/catalog"
)

// NameRef is a person referenced by a document, such as an article author
// or an entrepreneur cited in a profile body.
type NameRef struct {
	Slug        string
	DisplayName string
}

// ParseNameRef parses "slug=Display Name".
func ParseNameRef(s string) (NameRef, error) {
	slug, name, ok := strings.Cut(s, "=")
	slug, name = strings.TrimSpace(slug), strings.TrimSpace(name)
	if !ok || slug == "" || name == "" {
		return NameRef{}, fmt.Errorf("name reference %q: want slug=Display Name", s)
	}
	return NameRef{Slug: slug, DisplayName: name}, nil
}

// NameEntities converts refs into person entities under prefix, ordered
// longest name first with duplicate names removed.
func NameEntities(refs []NameRef, prefix string) []catalog.LinkableEntity {
	prefix = strings.TrimRight(prefix, "/")
	entities := make([]catalog.LinkableEntity, 0, len(refs))
	for _, r := range refs {
		if r.Slug == "" {
			continue
		}
		entities = append(entities, catalog.LinkableEntity{
			Name:       r.DisplayName,
			TargetPath: prefix + "/" + r.Slug,
			Category:   catalog.CategoryPerson,
		})
	}
	return catalog.Order(entities)
}

// LinkNames links the first occurrence of each referenced display name in
// text, with the same policy as Rewrite. When two refs share a display
// name, the first one listed wins.
func LinkNames(text string, refs []NameRef, prefix string) (string, error) {
	return NewLinker(NameEntities(refs, prefix)).Rewrite(text)
}
