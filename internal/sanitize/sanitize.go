// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package sanitize strips dangerous markup from user-submitted content
// before it is rendered.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = newUGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// newUGCPolicy allows the formatting a profile body needs. Nothing
// executable survives it.
func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre", "span")
	p.RequireNoFollowOnLinks(false)
	p.RequireNoFollowOnFullyQualifiedLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// HTML returns body with script, style, event-handler attributes and
// unsafe URLs removed. Text content of allowed elements is preserved.
// Policies are safe for concurrent use.
func HTML(body string) string {
	return ugcPolicy.Sanitize(body)
}

// Text strips every tag and returns escaped plain text, for excerpts and
// title attributes.
func Text(body string) string {
	return strictPolicy.Sanitize(body)
}
