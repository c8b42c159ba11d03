// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/afriwiki/afriwiki/internal/catalog"
	"github.com/afriwiki/afriwiki/pkg/types"
)

// Stats prints the static catalog size per category, the content/ word and
// link counts, and Go line counts.
func Stats() error {
	b, err := catalog.NewBuilder(nil, types.CatalogConfig{}, nil)
	if err != nil {
		return err
	}
	counts := make(map[catalog.Category]int)
	for _, e := range b.Static() {
		counts[e.Category]++
	}
	fmt.Println("Static catalog:")
	for _, c := range []catalog.Category{catalog.CategoryPlace, catalog.CategorySector, catalog.CategoryTerm} {
		fmt.Printf("  %-14s %d\n", c, counts[c])
	}

	content, err := walkContent("content")
	if err != nil {
		return err
	}
	fmt.Printf("Content: %d HTML files, %d words, %d links\n", content.files, content.words, content.links)

	prod, test, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Go lines: %d production, %d tests\n", prod, test)
	return nil
}

type contentStats struct {
	files int
	words int
	links int
}

// walkContent sums text statistics over the HTML files under root. A
// missing root counts as empty.
func walkContent(root string) (contentStats, error) {
	var st contentStats
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		words, links, err := countHTML(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		st.files++
		st.words += words
		st.links += links
		return nil
	})
	return st, err
}

// countHTML counts the words in text nodes and the anchor elements of an
// HTML document.
func countHTML(r io.Reader) (words, links int, err error) {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return words, links, nil
			}
			return words, links, z.Err()
		case html.TextToken:
			words += len(strings.Fields(string(z.Text())))
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "a" {
				links++
			}
		}
	}
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and test files. Hidden and underscore directories are skipped.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}

func nonBlankLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	return n, nil
}
