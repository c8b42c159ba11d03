// Copyright AfriWiki contributors, 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/afriwiki/afriwiki/pkg/types"
)

// --- test helpers ---

type fakeLister struct {
	records []types.ProfileRecord
	err     error
	delay   time.Duration
}

func (f *fakeLister) ListPublished(ctx context.Context) ([]types.ProfileRecord, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.records, f.err
}

func str(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func record(id, first, last, slug string) types.ProfileRecord {
	return types.ProfileRecord{ID: str(id), FirstName: str(first), LastName: str(last), Slug: str(slug)}
}

func observedBuilder(t *testing.T, lister ProfileLister, cfg types.CatalogConfig) (*Builder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	b, err := NewBuilder(lister, cfg, zap.New(core))
	require.NoError(t, err)
	return b, logs
}

func find(entities []LinkableEntity, name string) (LinkableEntity, bool) {
	for _, e := range entities {
		if e.Name == name {
			return e, true
		}
	}
	return LinkableEntity{}, false
}

// --- tests ---

func TestProfileFromRecord(t *testing.T) {
	tests := []struct {
		name    string
		rec     types.ProfileRecord
		want    PublishedProfile
		wantErr bool
	}{
		{
			name: "valid",
			rec:  record("1", " Aïcha ", "Diallo", "aicha-diallo"),
			want: PublishedProfile{ID: "1", FirstName: "Aïcha", LastName: "Diallo", Slug: "aicha-diallo"},
		},
		{
			name: "null first name",
			rec:  types.ProfileRecord{ID: str("2"), LastName: str("Ba"), Slug: str("ba")},
			want: PublishedProfile{ID: "2", LastName: "Ba", Slug: "ba"},
		},
		{name: "null last name", rec: types.ProfileRecord{ID: str("3"), FirstName: str("X"), Slug: str("x")}, wantErr: true},
		{name: "blank last name", rec: record("4", "X", "  ", "x"), wantErr: true},
		{name: "null slug", rec: types.ProfileRecord{ID: str("5"), LastName: str("Ba")}, wantErr: true},
		{name: "uppercase slug", rec: record("6", "", "Ba", "Amadou-Ba"), wantErr: true},
		{name: "slug with slash", rec: record("7", "", "Ba", "a/b"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProfileFromRecord(tt.rec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidProfile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublishedProfile_Entities(t *testing.T) {
	p := PublishedProfile{FirstName: "Jane", LastName: "Doe", Slug: "jane-doe"}
	assert.Equal(t, []LinkableEntity{
		{Name: "Jane Doe", TargetPath: "/e/jane-doe", Category: CategoryPerson},
		{Name: "Doe", TargetPath: "/e/jane-doe", Category: CategoryPerson},
	}, p.Entities("/e/"))

	p.FirstName = ""
	assert.Equal(t, []LinkableEntity{
		{Name: "Doe", TargetPath: "/profils/jane-doe", Category: CategoryPerson},
	}, p.Entities("/profils"))
}

func TestBuild_ProfilesAndStatic(t *testing.T) {
	lister := &fakeLister{records: []types.ProfileRecord{
		record("1", "Aïcha", "Diallo", "aicha-diallo"),
		record("2", "", "Okafor", "okafor"),
	}}
	b, _ := observedBuilder(t, lister, types.CatalogConfig{})

	entities := b.Build(context.Background())

	for name, path := range map[string]string{
		"Aïcha Diallo":  "/e/aicha-diallo",
		"Diallo":        "/e/aicha-diallo",
		"Okafor":        "/e/okafor",
		"Sénégal":       "/pays/sn",
		"Côte d'Ivoire": "/pays/ci",
		"fintech":       "/secteurs/fintech",
	} {
		e, ok := find(entities, name)
		if assert.True(t, ok, name) {
			assert.Equal(t, path, e.TargetPath, name)
		}
	}
	assert.Equal(t, Order(entities), entities, "Build output is ordered")
}

func TestBuild_ProfileWinsNameConflict(t *testing.T) {
	lister := &fakeLister{records: []types.ProfileRecord{record("1", "", "Mali", "mali")}}
	b, _ := observedBuilder(t, lister, types.CatalogConfig{})

	e, ok := find(b.Build(context.Background()), "Mali")
	require.True(t, ok)
	assert.Equal(t, "/e/mali", e.TargetPath)
}

func TestBuild_ListingFailureFallsBackToStatic(t *testing.T) {
	b, logs := observedBuilder(t, &fakeLister{err: errors.New("connection refused")}, types.CatalogConfig{})

	entities := b.Build(context.Background())

	assert.Equal(t, b.Static(), entities)
	e, ok := find(entities, "Sénégal")
	require.True(t, ok)
	assert.Equal(t, "/pays/sn", e.TargetPath)

	warn := logs.FilterMessage("profile listing unavailable, using static entities")
	require.Equal(t, 1, warn.Len())
	assert.Equal(t, zap.WarnLevel, warn.All()[0].Level)
}

func TestBuild_ListingTimeout(t *testing.T) {
	lister := &fakeLister{
		records: []types.ProfileRecord{record("1", "Jane", "Doe", "jane-doe")},
		delay:   time.Second,
	}
	b, logs := observedBuilder(t, lister, types.CatalogConfig{FetchTimeout: 10 * time.Millisecond})

	start := time.Now()
	entities := b.Build(context.Background())

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	_, ok := find(entities, "Jane Doe")
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("profile listing unavailable, using static entities").Len())
}

func TestBuild_SkipsInvalidRows(t *testing.T) {
	lister := &fakeLister{records: []types.ProfileRecord{
		record("1", "Jane", "Doe", "jane-doe"),
		{ID: str("2"), FirstName: str("Sans")},
		record("3", "Mauvais", "Slug", "Mauvais Slug"),
	}}
	b, logs := observedBuilder(t, lister, types.CatalogConfig{})

	entities := b.Build(context.Background())

	_, ok := find(entities, "Jane Doe")
	assert.True(t, ok)
	_, ok = find(entities, "Mauvais Slug")
	assert.False(t, ok)
	assert.Equal(t, 2, logs.FilterMessage("skipping profile row").Len())
}

func TestBuild_NilLister(t *testing.T) {
	b, err := NewBuilder(nil, types.CatalogConfig{}, nil)
	require.NoError(t, err)
	assert.Equal(t, b.Static(), b.Build(context.Background()))
}
