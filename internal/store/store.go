// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package store persists entrepreneur profiles in SQLite and lists the
// published ones for the entity catalog.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/afriwiki/afriwiki/pkg/types"
)

const dbFile = "afriwiki.db"

// ErrNotFound is returned when no profile has the requested slug.
var ErrNotFound = errors.New("profile not found")

// Store manages the profile database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the profile database at cfg.DataDir/afriwiki.db
// and creates the schema if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	cfg = cfg.WithDefaults()
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			slug TEXT NOT NULL UNIQUE,
			first_name TEXT,
			last_name TEXT,
			headline TEXT,
			country TEXT,
			sector TEXT,
			bio TEXT,
			published INTEGER NOT NULL DEFAULT 0,
			updated_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_published ON profiles(published)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='profiles_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists > 0 {
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE profiles_fts USING fts5(
			first_name, last_name, headline, bio,
			content=profiles, content_rowid=rowid
		)`,
		`CREATE TRIGGER profiles_ai AFTER INSERT ON profiles BEGIN
			INSERT INTO profiles_fts(rowid, first_name, last_name, headline, bio)
			VALUES (new.rowid, new.first_name, new.last_name, new.headline, new.bio);
		END`,
		`CREATE TRIGGER profiles_ad AFTER DELETE ON profiles BEGIN
			INSERT INTO profiles_fts(profiles_fts, rowid, first_name, last_name, headline, bio)
			VALUES ('delete', old.rowid, old.first_name, old.last_name, old.headline, old.bio);
		END`,
		`CREATE TRIGGER profiles_au AFTER UPDATE ON profiles BEGIN
			INSERT INTO profiles_fts(profiles_fts, rowid, first_name, last_name, headline, bio)
			VALUES ('delete', old.rowid, old.first_name, old.last_name, old.headline, old.bio);
			INSERT INTO profiles_fts(rowid, first_name, last_name, headline, bio)
			VALUES (new.rowid, new.first_name, new.last_name, new.headline, new.bio);
		END`,
	}
	for _, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating FTS infrastructure: %w", err)
		}
	}
	return nil
}

// ListPublished returns the raw rows of every published profile ordered
// by slug. Columns are returned as stored; validation is the caller's job.
func (s *Store) ListPublished(ctx context.Context) ([]types.ProfileRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, first_name, last_name, slug FROM profiles WHERE published = 1 ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("listing published profiles: %w", err)
	}
	defer rows.Close()

	var records []types.ProfileRecord
	for rows.Next() {
		var r types.ProfileRecord
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Slug); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SetPublished sets the published flag of the profile with slug.
func (s *Store) SetPublished(ctx context.Context, slug string, published bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET published = ?, updated_at = ? WHERE slug = ?`,
		boolInt(published), s.now().UTC().Format(time.RFC3339), slug)
	if err != nil {
		return fmt.Errorf("updating profile %s: %w", slug, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating profile %s: %w", slug, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return nil
}

const profileColumns = `id, slug, first_name, last_name, headline, country, sector, bio, published, updated_at`

// Get returns the profile with slug.
func (s *Store) Get(ctx context.Context, slug string) (*types.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE slug = ?`, slug)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up profile %s: %w", slug, err)
	}
	return p, nil
}

// List returns every profile ordered by slug.
func (s *Store) List(ctx context.Context) ([]types.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY slug`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()
	return collectProfiles(rows)
}

// Search runs an FTS5 query over names, headlines and bios and returns up
// to limit profiles ranked by relevance. A limit of zero returns 20.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]types.Profile, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.slug, p.first_name, p.last_name, p.headline, p.country,
			p.sector, p.bio, p.published, p.updated_at
		FROM profiles_fts
		JOIN profiles p ON p.rowid = profiles_fts.rowid
		WHERE profiles_fts MATCH ?
		ORDER BY profiles_fts.rank
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching profiles: %w", err)
	}
	defer rows.Close()
	return collectProfiles(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*types.Profile, error) {
	var (
		p                                   types.Profile
		first, last, headline, country, sec sql.NullString
		bio, updated                        sql.NullString
		published                           int
	)
	if err := row.Scan(&p.ID, &p.Slug, &first, &last, &headline, &country, &sec, &bio, &published, &updated); err != nil {
		return nil, err
	}
	p.FirstName = first.String
	p.LastName = last.String
	p.Headline = headline.String
	p.Country = country.String
	p.Sector = sec.String
	p.Bio = bio.String
	p.Published = published != 0
	if updated.Valid {
		if t, err := time.Parse(time.RFC3339, updated.String); err == nil {
			p.UpdatedAt = t
		}
	}
	return &p, nil
}

func collectProfiles(rows *sql.Rows) ([]types.Profile, error) {
	var out []types.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
