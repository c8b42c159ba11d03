// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package types defines shared data structures for AfriWiki: configuration,
// entrepreneur profiles as authored in import files, and the raw profile
// rows handed out by the data store.
package types

import (
	"database/sql"
	"time"
)

// Profile is an entrepreneur profile as written in an import file.
type Profile struct {
	// ID is a stable identifier. Import assigns a UUID when it is empty.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Slug is the URL segment of the profile page (e.g. "jane-doe").
	Slug string `json:"slug" yaml:"slug"`

	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`

	// Headline is a one-line description ("Fondatrice de ...").
	Headline string `json:"headline,omitempty" yaml:"headline,omitempty"`

	// Country is the ISO 3166-1 alpha-2 code of the entrepreneur's country.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`

	// Sector is a sector slug (e.g. "fintech").
	Sector string `json:"sector,omitempty" yaml:"sector,omitempty"`

	// Bio is the markdown body of the profile page.
	Bio string `json:"bio,omitempty" yaml:"bio,omitempty"`

	// Published controls visibility; only published profiles are linkable.
	Published bool `json:"published" yaml:"published"`

	UpdatedAt time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// FullName returns "First Last", or the last name alone when the first
// name is empty.
func (p Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProfileRecord is a published profile row as the data store returns it.
// Every column is nullable; callers must validate before use.
type ProfileRecord struct {
	ID        sql.NullString
	FirstName sql.NullString
	LastName  sql.NullString
	Slug      sql.NullString
}
