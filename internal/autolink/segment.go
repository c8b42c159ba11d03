// Copyright AfriWiki contributors, 2026. All rights reserved.

package autolink

import (
	"strings"

	"golang.org/x/net/html"
)

type segmentKind int

const (
	textSegment segmentKind = iota
	markupSegment
)

// segment is a run of the input, kept byte-for-byte. Text segments are
// candidates for linking unless protected.
type segment struct {
	kind      segmentKind
	raw       string
	protected bool
}

// existingAnchor is an anchor already present in the input.
type existingAnchor struct {
	href string
	text string
}

// protectedElements are elements whose text content is never linked.
var protectedElements = map[string]bool{
	"a":        true,
	"script":   true,
	"style":    true,
	"textarea": true,
	"title":    true,
	"code":     true,
	"pre":      true,
}

// split tokenizes s into text and markup runs. Concatenating the raw
// fields of the result reproduces s exactly. It also reports the anchors
// already present in s.
func split(s string) ([]segment, []existingAnchor) {
	z := html.NewTokenizer(strings.NewReader(s))

	var (
		segs     []segment
		anchors  []existingAnchor
		open     = make(map[string]int)
		depth    int
		anchor   *existingAnchor
		anchText strings.Builder
		consumed int
	)

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF is the only error for an in-memory reader. An unterminated
			// trailing tag is not emitted as a token and is recovered below.
			break
		}

		// Raw must be copied before TagName, which lowercases in place.
		raw := string(z.Raw())
		consumed += len(raw)

		switch tt {
		case html.TextToken:
			segs = append(segs, segment{kind: textSegment, raw: raw, protected: depth > 0})
			if anchor != nil {
				anchText.WriteString(raw)
			}
			continue

		case html.StartTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if protectedElements[tag] {
				open[tag]++
				depth++
			}
			if tag == "a" {
				anchor = &existingAnchor{href: hrefAttr(z, hasAttr)}
				anchText.Reset()
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if open[tag] > 0 {
				open[tag]--
				depth--
			}
			if tag == "a" && anchor != nil {
				anchor.text = html.UnescapeString(anchText.String())
				anchors = append(anchors, *anchor)
				anchor = nil
			}
		}

		segs = append(segs, segment{kind: markupSegment, raw: raw})
	}

	if consumed < len(s) {
		segs = append(segs, segment{kind: markupSegment, raw: s[consumed:]})
	}
	return segs, anchors
}

func hrefAttr(z *html.Tokenizer, more bool) string {
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		if string(key) == "href" {
			return string(val)
		}
	}
	return ""
}

func join(segs []segment) string {
	n := 0
	for _, s := range segs {
		n += len(s.raw)
	}
	var b strings.Builder
	b.Grow(n)
	for _, s := range segs {
		b.WriteString(s.raw)
	}
	return b.String()
}
