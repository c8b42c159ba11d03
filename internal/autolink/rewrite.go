// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package autolink inserts hyperlinks to known entities into text and HTML.
//
// The input is split into text runs and markup runs with an HTML tokenizer;
// only text runs outside anchors, scripts, styles and code are searched, so
// generated anchors never land inside a tag, an attribute or an existing
// link. Each entity links at most its first whole-word occurrence.
package autolink

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/afriwiki/afriwiki/internal/catalog"
)

// ErrMalformedInput is returned for input that is not valid UTF-8 text.
var ErrMalformedInput = errors.New("autolink: input is not valid UTF-8 text")

// TitlePrefix starts the title attribute of every generated anchor.
const TitlePrefix = "Voir la page "

type rule struct {
	entity catalog.LinkableEntity
	key    string
	re     *regexp.Regexp
}

// Linker applies one catalog to any number of documents. It compiles one
// pattern per entity up front and is safe for concurrent use.
type Linker struct {
	rules []rule
}

// NewLinker compiles entities in the order given. Callers pass a catalog
// already ordered longest-name-first (see catalog.Order); entries with an
// empty name or target are ignored.
func NewLinker(entities []catalog.LinkableEntity) *Linker {
	rules := make([]rule, 0, len(entities))
	for _, e := range entities {
		if strings.TrimSpace(e.Name) == "" || e.TargetPath == "" {
			continue
		}
		rules = append(rules, rule{
			entity: e,
			key:    linkKey(e.Name),
			re:     compileName(e.Name),
		})
	}
	return &Linker{rules: rules}
}

// Len returns the number of compiled entities.
func (l *Linker) Len() int {
	return len(l.rules)
}

// Rewrite is a convenience for NewLinker(entities).Rewrite(text).
func Rewrite(text string, entities []catalog.LinkableEntity) (string, error) {
	return NewLinker(entities).Rewrite(text)
}

// linkState is the per-call record of what is already linked. names is
// keyed by linkKey. targets holds the hrefs of anchors in the input and of
// person anchors added in this call; it only gates person entities, so a
// surname is not linked once its full name is.
type linkState struct {
	names   map[string]bool
	targets map[string]bool
}

func newLinkState(anchors []existingAnchor) *linkState {
	st := &linkState{names: make(map[string]bool), targets: make(map[string]bool)}
	for _, a := range anchors {
		if k := linkKey(a.text); k != "" {
			st.names[k] = true
		}
		if a.href != "" {
			st.targets[a.href] = true
		}
	}
	return st
}

func (st *linkState) linked(r rule) bool {
	if st.names[r.key] {
		return true
	}
	return r.entity.Category == catalog.CategoryPerson && st.targets[r.entity.TargetPath]
}

func (st *linkState) mark(r rule) {
	st.names[r.key] = true
	if r.entity.Category == catalog.CategoryPerson {
		st.targets[r.entity.TargetPath] = true
	}
}

// linkKey folds a name or anchor text for the linked-name set: catalog.Key
// plus typographic apostrophes and runs of any Unicode space collapsed, so
// text matched through an alternative spelling keys like the entity name.
func linkKey(s string) string {
	k := strings.NewReplacer("’", "'", "‘", "'").Replace(catalog.Key(s))
	return strings.Join(strings.FieldsFunc(k, unicode.IsSpace), " ")
}

// Rewrite wraps the first eligible occurrence of each entity in an anchor
// and returns the result. Entities are applied in order, each one seeing
// the output of the previous. An entity is skipped when its name is
// already the text of an anchor, present in the input or added earlier in
// this call, which makes Rewrite idempotent on its own output. A person
// entity is also skipped when its profile is already linked.
func (l *Linker) Rewrite(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrMalformedInput
	}
	if text == "" || len(l.rules) == 0 {
		return text, nil
	}

	segs, anchors := split(text)
	st := newLinkState(anchors)
	changed := false

	for _, r := range l.rules {
		if st.linked(r) {
			continue
		}
		var ok bool
		segs, ok = linkFirst(segs, r)
		if ok {
			st.mark(r)
			changed = true
		}
	}

	if !changed {
		return text, nil
	}
	return join(segs), nil
}

// linkFirst replaces the first match of r in an unprotected text segment
// with an anchor, splitting that segment in place.
func linkFirst(segs []segment, r rule) ([]segment, bool) {
	for i, s := range segs {
		if s.kind != textSegment || s.protected {
			continue
		}
		loc := findWord(r.re, s.raw)
		if loc == nil {
			continue
		}

		replacement := make([]segment, 0, 5)
		if loc[0] > 0 {
			replacement = append(replacement, segment{kind: textSegment, raw: s.raw[:loc[0]]})
		}
		replacement = append(replacement,
			segment{kind: markupSegment, raw: openTag(r.entity)},
			segment{kind: textSegment, raw: s.raw[loc[0]:loc[1]], protected: true},
			segment{kind: markupSegment, raw: "</a>"},
		)
		if loc[1] < len(s.raw) {
			replacement = append(replacement, segment{kind: textSegment, raw: s.raw[loc[1]:]})
		}

		out := make([]segment, 0, len(segs)+len(replacement)-1)
		out = append(out, segs[:i]...)
		out = append(out, replacement...)
		out = append(out, segs[i+1:]...)
		return out, true
	}
	return segs, false
}

func openTag(e catalog.LinkableEntity) string {
	return `<a href="` + html.EscapeString(e.TargetPath) +
		`" title="` + html.EscapeString(TitlePrefix+e.Name) + `">`
}
