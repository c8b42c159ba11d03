// Copyright AfriWiki contributors, 2026. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/afriwiki/afriwiki/pkg/types"
)

// ErrInvalidProfile marks a profile row that cannot become linkable entities.
var ErrInvalidProfile = errors.New("invalid profile record")

// slugPattern matches lowercase hyphen-separated slugs.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ProfileLister lists published profiles. The SQLite store implements it;
// any data source returning nullable rows can.
type ProfileLister interface {
	ListPublished(ctx context.Context) ([]types.ProfileRecord, error)
}

// PublishedProfile is a validated profile row.
type PublishedProfile struct {
	ID        string
	FirstName string
	LastName  string
	Slug      string
}

// ProfileFromRecord validates a raw row. Last name and slug are required
// and the slug must be lowercase and hyphen-separated.
func ProfileFromRecord(rec types.ProfileRecord) (PublishedProfile, error) {
	p := PublishedProfile{
		ID:        strings.TrimSpace(rec.ID.String),
		FirstName: strings.TrimSpace(rec.FirstName.String),
		LastName:  strings.TrimSpace(rec.LastName.String),
		Slug:      strings.TrimSpace(rec.Slug.String),
	}
	if !rec.LastName.Valid || p.LastName == "" {
		return PublishedProfile{}, fmt.Errorf("%w: missing last name (id %q)", ErrInvalidProfile, p.ID)
	}
	if !rec.Slug.Valid || !slugPattern.MatchString(p.Slug) {
		return PublishedProfile{}, fmt.Errorf("%w: bad slug %q (id %q)", ErrInvalidProfile, p.Slug, p.ID)
	}
	return p, nil
}

// Entities returns the full-name and last-name entities for the profile,
// both pointing at prefix/slug. A profile without a first name yields a
// single entity.
func (p PublishedProfile) Entities(prefix string) []LinkableEntity {
	path := strings.TrimRight(prefix, "/") + "/" + p.Slug
	last := LinkableEntity{Name: p.LastName, TargetPath: path, Category: CategoryPerson}
	if p.FirstName == "" {
		return []LinkableEntity{last}
	}
	full := LinkableEntity{Name: p.FirstName + " " + p.LastName, TargetPath: path, Category: CategoryPerson}
	return []LinkableEntity{full, last}
}

// Builder assembles catalogs from a profile lister and static reference
// data.
type Builder struct {
	lister ProfileLister
	cfg    types.CatalogConfig
	static []LinkableEntity
	logger *zap.Logger
}

// NewBuilder loads the reference data named by cfg.ReferenceFile (or the
// embedded data) and returns a Builder. lister may be nil, in which case
// every catalog is static-only. A nil logger discards output.
func NewBuilder(lister ProfileLister, cfg types.CatalogConfig, logger *zap.Logger) (*Builder, error) {
	cfg = cfg.WithDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	ref, err := LoadReference(cfg.ReferenceFile)
	if err != nil {
		return nil, err
	}
	return &Builder{
		lister: lister,
		cfg:    cfg,
		static: ref.Entities(),
		logger: logger.Named("catalog"),
	}, nil
}

// Static returns the ordered static-only catalog.
func (b *Builder) Static() []LinkableEntity {
	return Order(b.static)
}

// Build lists published profiles, converts each into entities, appends
// the static entities and returns the ordered catalog. The listing is
// bounded by cfg.FetchTimeout; when it fails or times out Build logs a
// warning and returns the static catalog. Invalid rows are logged and
// skipped. Build never fails.
func (b *Builder) Build(ctx context.Context) []LinkableEntity {
	people := b.profileEntities(ctx)
	all := make([]LinkableEntity, 0, len(people)+len(b.static))
	all = append(all, people...)
	all = append(all, b.static...)
	return Order(all)
}

func (b *Builder) profileEntities(ctx context.Context) []LinkableEntity {
	if b.lister == nil {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, b.cfg.FetchTimeout)
	defer cancel()

	type listing struct {
		records []types.ProfileRecord
		err     error
	}
	done := make(chan listing, 1)
	go func() {
		records, err := b.lister.ListPublished(fetchCtx)
		done <- listing{records, err}
	}()

	var (
		records []types.ProfileRecord
		err     error
	)
	select {
	case l := <-done:
		records, err = l.records, l.err
	case <-fetchCtx.Done():
		err = fetchCtx.Err()
	}
	if err != nil {
		b.logger.Warn("profile listing unavailable, using static entities",
			zap.Error(err), zap.Duration("timeout", b.cfg.FetchTimeout))
		return nil
	}

	var out []LinkableEntity
	for _, rec := range records {
		p, err := ProfileFromRecord(rec)
		if err != nil {
			b.logger.Warn("skipping profile row", zap.Error(err))
			continue
		}
		out = append(out, p.Entities(b.cfg.ProfilePrefix)...)
	}
	b.logger.Debug("profile entities built",
		zap.Int("rows", len(records)), zap.Int("entities", len(out)))
	return out
}
