// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountHTML(t *testing.T) {
	words, links, err := countHTML(strings.NewReader(
		`<p>Le <a href="/pays/ke">Kenya</a> et le <a href="/pays/sn">Sénégal</a></p>`))
	require.NoError(t, err)
	assert.Equal(t, 5, words)
	assert.Equal(t, 2, links)
}

func TestWalkContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("<p>un deux</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignoré"), 0o644))

	st, err := walkContent(dir)
	require.NoError(t, err)
	assert.Equal(t, contentStats{files: 1, words: 2}, st)

	st, err = walkContent(filepath.Join(dir, "absent"))
	require.NoError(t, err)
	assert.Equal(t, contentStats{}, st)
}
