// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package render turns user-submitted markdown or HTML into display HTML:
// convert, sanitize, link referenced names, then link catalog entities.
package render

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"

	"github.com/afriwiki/afriwiki/internal/autolink"
	"github.com/afriwiki/afriwiki/internal/catalog"
	"github.com/afriwiki/afriwiki/internal/sanitize"
	"github.com/afriwiki/afriwiki/pkg/types"
)

// compiled pairs a catalog snapshot with its linker.
type compiled struct {
	snapshot *catalog.Snapshot
	linker   *autolink.Linker
}

// Renderer is safe for concurrent use.
type Renderer struct {
	cache       *catalog.Cache
	prefix      string
	linkCatalog bool
	md          goldmark.Markdown
	logger      *zap.Logger

	linker atomic.Pointer[compiled]
}

// New returns a Renderer linking entities from cache. cache may be nil,
// in which case only referenced names are linked.
func New(cache *catalog.Cache, catCfg types.CatalogConfig, cfg types.RenderConfig, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	catCfg = catCfg.WithDefaults()
	return &Renderer{
		cache:       cache,
		prefix:      catCfg.ProfilePrefix,
		linkCatalog: cfg.LinkCatalog && cache != nil,
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table, extension.Strikethrough),
			// Raw HTML passes through goldmark and is sanitized afterwards.
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		logger: logger.Named("render"),
	}
}

// Markdown converts a markdown body to HTML, sanitizes it, links the
// first mention of each referenced person and then the catalog entities.
func (r *Renderer) Markdown(ctx context.Context, body string, refs []autolink.NameRef) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return r.link(ctx, sanitize.HTML(buf.String()), refs)
}

// HTML sanitizes an HTML fragment and links catalog entities in it.
func (r *Renderer) HTML(ctx context.Context, fragment string) (string, error) {
	return r.link(ctx, sanitize.HTML(fragment), nil)
}

func (r *Renderer) link(ctx context.Context, safe string, refs []autolink.NameRef) (string, error) {
	out := safe
	if len(refs) > 0 {
		var err error
		out, err = autolink.LinkNames(out, refs, r.prefix)
		if err != nil {
			return "", err
		}
	}
	if !r.linkCatalog {
		return out, nil
	}
	return r.catalogLinker(ctx).Rewrite(out)
}

// catalogLinker returns the linker for the current snapshot, compiling a
// new one when the cache has rebuilt since the last call.
func (r *Renderer) catalogLinker(ctx context.Context) *autolink.Linker {
	snap := r.cache.Get(ctx)
	if c := r.linker.Load(); c != nil && c.snapshot == snap {
		return c.linker
	}
	c := &compiled{snapshot: snap, linker: autolink.NewLinker(snap.Entities)}
	r.linker.Store(c)
	r.logger.Debug("compiled catalog linker",
		zap.Int("entities", c.linker.Len()), zap.Time("built_at", snap.BuiltAt))
	return c.linker
}
