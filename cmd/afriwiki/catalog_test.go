// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afriwiki/afriwiki/internal/catalog"
)

func TestWriteCatalogFile(t *testing.T) {
	entities := []catalog.LinkableEntity{
		{Name: "Kenya", TargetPath: "/pays/ke", Category: catalog.CategoryPlace},
	}
	dir := t.TempDir()

	path := filepath.Join(dir, "catalog.json")
	require.NoError(t, writeCatalogFile(path, "json", entities))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"target_path": "/pays/ke"`)

	path = filepath.Join(dir, "catalog.yaml")
	require.NoError(t, writeCatalogFile(path, "yaml", entities))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "target_path: /pays/ke")
}

func TestWriteCatalogFile_Errors(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "catalog.xml")
	assert.Error(t, writeCatalogFile(path, "xml", nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file for an unsupported format")

	assert.Error(t, writeCatalogFile(filepath.Join(dir, "absent", "catalog.yaml"), "yaml", nil))
}
