// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for i, c := range contents {
		p := filepath.Join(dir, string(rune('a'+i))+".html")
		require.NoError(t, os.WriteFile(p, []byte(c), 0o644))
		paths = append(paths, p)
	}
	return paths
}

func TestTransformFiles_KeepsArgumentOrder(t *testing.T) {
	paths := writeFiles(t, "un\n", "deux\n", "trois\n")

	var out bytes.Buffer
	err := transformFiles(paths, false, &out, func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "UN\nDEUX\nTROIS\n", out.String())
}

func TestTransformFiles_InPlace(t *testing.T) {
	paths := writeFiles(t, "un", "deux")

	var out bytes.Buffer
	err := transformFiles(paths, true, &out, func(s string) (string, error) {
		return "<p>" + s + "</p>", nil
	})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "<p>deux</p>", string(data))
}

func TestTransformFiles_Errors(t *testing.T) {
	paths := writeFiles(t, "ok")
	boom := errors.New("boom")

	err := transformFiles(paths, false, &bytes.Buffer{}, func(string) (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)

	err = transformFiles([]string{filepath.Join(t.TempDir(), "absent.html")}, false, &bytes.Buffer{},
		func(s string) (string, error) { return s, nil })
	assert.Error(t, err)
}
