// Copyright AfriWiki contributors, 2026. All rights reserved.

package autolink

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Text runs are matched in their raw (still escaped) form, so a name
// character may appear as a character reference or in decomposed form.
const (
	apostropheAlt = `(?:'|’|‘|&#0*39;|&#[xX]0*27;|&apos;|&rsquo;|&lsquo;)`
	spaceAlt      = `(?:\s|&nbsp;|&#0*160;|&#[xX]0*[aA]0;|\x{00A0})+`
	ampersandAlt  = `(?:&amp;|&#0*38;|&)`
)

// compileName builds a case-insensitive pattern matching name in raw
// HTML text. Word boundaries are checked separately by isWordBoundary
// because regexp's \b is ASCII-only.
func compileName(name string) *regexp.Regexp {
	name = norm.NFC.String(strings.TrimSpace(name))

	var b strings.Builder
	b.WriteString(`(?i)`)
	inSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteString(spaceAlt)
			}
			inSpace = true
			continue
		}
		inSpace = false

		switch r {
		case '\'', '’', '‘':
			b.WriteString(apostropheAlt)
		case '&':
			b.WriteString(ampersandAlt)
		default:
			b.WriteString(runePattern(r))
		}
	}
	return regexp.MustCompile(b.String())
}

// runePattern matches r in either composed or decomposed form.
func runePattern(r rune) string {
	composed := string(r)
	decomposed := norm.NFD.String(composed)
	if decomposed == composed {
		return regexp.QuoteMeta(composed)
	}
	return `(?:` + regexp.QuoteMeta(composed) + `|` + regexp.QuoteMeta(decomposed) + `)`
}

// isWordBoundary reports whether text[start:end] is not glued to a
// neighbouring letter, digit or combining mark.
func isWordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) || unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}

// insideReference reports whether byte offset i falls strictly inside a
// character reference such as "&amp;" or "&#39;".
func insideReference(text string, i int) bool {
	j := i
	for j > 0 && isRefByte(text[j-1]) {
		j--
	}
	if j == 0 || text[j-1] != '&' {
		return false
	}
	k := i
	for k < len(text) && isRefByte(text[k]) {
		k++
	}
	return k < len(text) && text[k] == ';' && (j < i || k > i)
}

func isRefByte(b byte) bool {
	return b == '#' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// findWord returns the byte offsets of the first boundary-delimited match
// of re in text, or nil.
func findWord(re *regexp.Regexp, text string) []int {
	for offset := 0; offset < len(text); {
		loc := re.FindStringIndex(text[offset:])
		if loc == nil {
			return nil
		}
		start, end := offset+loc[0], offset+loc[1]
		if isWordBoundary(text, start, end) && !insideReference(text, start) && !insideReference(text, end) {
			return []int{start, end}
		}
		// Retry one rune past the rejected start.
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return nil
}
