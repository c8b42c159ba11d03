// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
)

// Catalog writes the current entity catalog to data/catalog.yaml.
func Catalog() error {
	if err := Build(); err != nil {
		return err
	}
	out := filepath.Join("data", "catalog.yaml")
	if err := run(filepath.Join(binDir, binName), "catalog", "export", "--format", "yaml", "-o", out); err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

// Link auto-links every HTML file under content/ in place.
func Link() error {
	if err := Build(); err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join("content", "*.html"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No HTML files under content/.")
		return nil
	}
	args := append([]string{"link", "--in-place"}, files...)
	if err := run(filepath.Join(binDir, binName), args...); err != nil {
		return fmt.Errorf("linking content: %w", err)
	}
	fmt.Printf("Linked %d files.\n", len(files))
	return nil
}
