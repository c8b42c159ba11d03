// Copyright AfriWiki contributors, 2026. All rights reserved.

package types

import "time"

const (
	// DefaultProfilePrefix is the path prefix for entrepreneur profile pages.
	DefaultProfilePrefix = "/e"

	// DefaultCacheTTL bounds how long a built catalog is reused before the
	// next Get rebuilds it.
	DefaultCacheTTL = 10 * time.Minute

	// DefaultFetchTimeout bounds the profile listing read during a catalog build.
	DefaultFetchTimeout = 3 * time.Second

	// DefaultDataDir holds the profile database.
	DefaultDataDir = "data"
)

// CatalogConfig holds settings for building the entity catalog.
type CatalogConfig struct {
	// ProfilePrefix is prepended to a profile slug to form its target path
	// (e.g. "/e" yields "/e/jane-doe").
	ProfilePrefix string `json:"profile_prefix" mapstructure:"profile_prefix" yaml:"profile_prefix"`

	// CacheTTL is the lifetime of a cached catalog snapshot. Zero disables
	// time-based expiry; the snapshot is then only rebuilt on Invalidate.
	CacheTTL time.Duration `json:"cache_ttl" mapstructure:"cache_ttl" yaml:"cache_ttl"`

	// FetchTimeout bounds the profile listing read. On timeout the catalog
	// falls back to static entities.
	FetchTimeout time.Duration `json:"fetch_timeout" mapstructure:"fetch_timeout" yaml:"fetch_timeout"`

	// ReferenceFile optionally replaces the embedded static reference data
	// (countries, sectors, glossary terms) with a YAML file on disk.
	ReferenceFile string `json:"reference_file,omitempty" mapstructure:"reference_file" yaml:"reference_file,omitempty"`
}

// WithDefaults returns a copy of c with zero fields set to their defaults.
func (c CatalogConfig) WithDefaults() CatalogConfig {
	if c.ProfilePrefix == "" {
		c.ProfilePrefix = DefaultProfilePrefix
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = 0
	}
	return c
}

// StoreConfig holds settings for the SQLite profile store.
type StoreConfig struct {
	// DataDir is the directory holding afriwiki.db.
	DataDir string `json:"data_dir" mapstructure:"data_dir" yaml:"data_dir"`
}

// WithDefaults returns a copy of c with zero fields set to their defaults.
func (c StoreConfig) WithDefaults() StoreConfig {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	return c
}

// AccessConfig holds the authorization settings read once at startup.
type AccessConfig struct {
	// AdminEmails lists the accounts allowed to publish and unpublish profiles.
	AdminEmails []string `json:"admin_emails" mapstructure:"admin_emails" yaml:"admin_emails"`
}

// RenderConfig holds settings for the markdown/HTML render pipeline.
type RenderConfig struct {
	// LinkCatalog controls whether catalog entities are auto-linked after
	// author names. Defaults to true.
	LinkCatalog bool `json:"link_catalog" mapstructure:"link_catalog" yaml:"link_catalog"`
}

// Config groups all settings for the afriwiki CLI.
type Config struct {
	Catalog CatalogConfig `json:"catalog" mapstructure:"catalog" yaml:"catalog"`
	Store   StoreConfig   `json:"store" mapstructure:"store" yaml:"store"`
	Access  AccessConfig  `json:"access" mapstructure:"access" yaml:"access"`
	Render  RenderConfig  `json:"render" mapstructure:"render" yaml:"render"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			ProfilePrefix: DefaultProfilePrefix,
			CacheTTL:      DefaultCacheTTL,
			FetchTimeout:  DefaultFetchTimeout,
		},
		Store:  StoreConfig{DataDir: DefaultDataDir},
		Render: RenderConfig{LinkCatalog: true},
	}
}
