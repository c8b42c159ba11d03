// Copyright AfriWiki contributors, 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/afriwiki/afriwiki/internal/catalog"
	"github.com/afriwiki/afriwiki/internal/store"
)

// newBuilder returns a catalog builder over the profile store. With
// staticOnly, or when the store cannot be opened, the builder has no
// lister and produces static entities only. The returned func releases
// the store.
func newBuilder(staticOnly bool) (*catalog.Builder, func(), error) {
	var (
		lister  catalog.ProfileLister
		release = func() {}
	)
	if !staticOnly {
		s, err := store.Open(cfg.Store)
		if err != nil {
			logger.Warn("profile store unavailable, linking static entities only", zap.Error(err))
		} else {
			lister = s
			release = func() { s.Close() }
		}
	}

	b, err := catalog.NewBuilder(lister, cfg.Catalog, logger)
	if err != nil {
		release()
		return nil, nil, err
	}
	return b, release, nil
}

// readInput reads path, or stdin when path is "" or "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// transformFiles applies fn to every path concurrently. Results are written
// back in place, or to w in argument order.
func transformFiles(paths []string, inPlace bool, w io.Writer, fn func(string) (string, error)) error {
	outputs := make([]string, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			in, err := readInput(p)
			if err != nil {
				return err
			}
			out, err := fn(in)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			if inPlace {
				if err := os.WriteFile(p, []byte(out), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", p, err)
				}
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if inPlace {
		return nil
	}
	for _, out := range outputs {
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
