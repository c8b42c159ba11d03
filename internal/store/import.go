// Copyright AfriWiki contributors, 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/afriwiki/afriwiki/pkg/types"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ImportSummary holds counts from a profile import run.
type ImportSummary struct {
	Imported int
	Updated  int
	Failed   int
}

// Total returns the number of profiles processed.
func (s ImportSummary) Total() int {
	return s.Imported + s.Updated + s.Failed
}

// ImportFile reads a YAML list of profiles from path and upserts them.
func (s *Store) ImportFile(ctx context.Context, path string, w io.Writer) (ImportSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("reading %s: %w", path, err)
	}
	var profiles []types.Profile
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return ImportSummary{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s.Import(ctx, profiles, w)
}

// Import upserts profiles by slug, writing one progress line per profile
// and a summary to w. Invalid profiles are counted as failed and do not
// stop the run. A profile without an ID keeps its stored ID or gets a new
// UUID.
func (s *Store) Import(ctx context.Context, profiles []types.Profile, w io.Writer) (ImportSummary, error) {
	var summary ImportSummary

	for _, p := range profiles {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		p = normalizeProfile(p)
		if err := validateProfile(p); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", p.Slug, err)
			summary.Failed++
			continue
		}

		updated, err := s.upsert(ctx, p)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", p.Slug, err)
			summary.Failed++
			continue
		}
		if updated {
			fmt.Fprintf(w, "updated  %s\n", p.Slug)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "imported %s\n", p.Slug)
			summary.Imported++
		}
	}

	fmt.Fprintf(w, "\nimported: %d, updated: %d, failed: %d\n",
		summary.Imported, summary.Updated, summary.Failed)
	return summary, nil
}

func normalizeProfile(p types.Profile) types.Profile {
	p.ID = strings.TrimSpace(p.ID)
	p.Slug = strings.TrimSpace(p.Slug)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Country = strings.ToLower(strings.TrimSpace(p.Country))
	p.Sector = strings.TrimSpace(p.Sector)
	return p
}

func validateProfile(p types.Profile) error {
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("invalid slug %q", p.Slug)
	}
	if p.LastName == "" {
		return errors.New("last name is required")
	}
	return nil
}

// upsert inserts or updates p and reports whether a row already existed.
func (s *Store) upsert(ctx context.Context, p types.Profile) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM profiles WHERE slug = ?`, p.Slug).Scan(&existingID)
	exists := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, fmt.Errorf("looking up slug: %w", err)
	}

	switch {
	case p.ID == "" && exists:
		p.ID = existingID
	case p.ID == "":
		p.ID = uuid.NewString()
	}

	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = s.now()
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO profiles (id, slug, first_name, last_name, headline, country, sector, bio, published, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			id=excluded.id, first_name=excluded.first_name, last_name=excluded.last_name,
			headline=excluded.headline, country=excluded.country, sector=excluded.sector,
			bio=excluded.bio, published=excluded.published, updated_at=excluded.updated_at`,
		p.ID, p.Slug, p.FirstName, p.LastName, p.Headline, p.Country, p.Sector, p.Bio,
		boolInt(p.Published), updatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return false, fmt.Errorf("upserting profile: %w", err)
	}
	return exists, tx.Commit()
}
