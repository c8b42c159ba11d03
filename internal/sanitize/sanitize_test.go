// Copyright AfriWiki contributors, 2026. All rights reserved.

package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML_StripsScriptAndHandlers(t *testing.T) {
	got := HTML(`<script>alert(1)</script><p onclick="x()">hi</p>`)

	assert.NotContains(t, got, "<script")
	assert.NotContains(t, got, "alert(1)")
	assert.NotContains(t, got, "onclick")
	assert.Equal(t, "<p>hi</p>", got)
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "formatting kept",
			in:   `<p>Fondatrice de <strong>PayKa</strong>, <em>fintech</em> dakaroise.</p>`,
			want: `<p>Fondatrice de <strong>PayKa</strong>, <em>fintech</em> dakaroise.</p>`,
		},
		{
			name: "relative link untouched",
			in:   `<a href="/e/jane-doe">Jane Doe</a>`,
			want: `<a href="/e/jane-doe">Jane Doe</a>`,
		},
		{
			name: "javascript url dropped",
			in:   `<a href="javascript:alert(1)">clic</a>`,
			want: `clic`,
		},
		{
			name: "style element removed with content",
			in:   `<style>body{display:none}</style><p>ok</p>`,
			want: `<p>ok</p>`,
		},
		{
			name: "code class kept",
			in:   `<pre><code class="language-go">x := 1</code></pre>`,
			want: `<pre><code class="language-go">x := 1</code></pre>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTML(tt.in))
		})
	}
}

func TestHTML_ExternalLinks(t *testing.T) {
	got := HTML(`<a href="https://example.org">site</a>`)

	assert.Contains(t, got, `href="https://example.org"`)
	assert.Contains(t, got, "nofollow")
	assert.Contains(t, got, "noopener")
	assert.Contains(t, got, `target="_blank"`)
}

func TestText(t *testing.T) {
	assert.Equal(t, "Jane &amp; Doe", Text(`<b>Jane</b> &amp; <i onclick="x()">Doe</i>`))
	assert.Equal(t, "", Text(`<script>alert(1)</script>`))
}
