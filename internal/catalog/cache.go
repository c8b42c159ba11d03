// Copyright AfriWiki contributors, 2026. All rights reserved.

package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is an immutable built catalog. Callers must not modify
// Entities.
type Snapshot struct {
	Entities []LinkableEntity
	BuiltAt  time.Time
}

// Source builds catalogs. *Builder implements it.
type Source interface {
	Build(ctx context.Context) []LinkableEntity
}

// Cache holds the current catalog snapshot for a process. A rebuild
// publishes a new snapshot; a published snapshot is never patched.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time

	current atomic.Pointer[Snapshot]
	stale   atomic.Bool

	// mu serializes rebuilds so concurrent expired Gets build once.
	mu sync.Mutex
}

// NewCache returns an empty cache over source. A ttl of zero disables
// time-based expiry.
func NewCache(source Source, ttl time.Duration) *Cache {
	return &Cache{source: source, ttl: ttl, now: time.Now}
}

// Get returns the current snapshot, building it first when the cache is
// empty, invalidated or older than the TTL.
func (c *Cache) Get(ctx context.Context) *Snapshot {
	if s := c.current.Load(); s != nil && !c.expired(s) {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have rebuilt while we waited.
	if s := c.current.Load(); s != nil && !c.expired(s) {
		return s
	}
	return c.rebuildLocked(ctx)
}

// Refresh rebuilds the snapshot now and returns it.
func (c *Cache) Refresh(ctx context.Context) *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rebuildLocked(ctx)
}

// Invalidate marks the current snapshot stale; the next Get rebuilds.
// Callers already holding the old snapshot keep using it safely.
func (c *Cache) Invalidate() {
	c.stale.Store(true)
}

// Peek returns the current snapshot without building, or nil.
func (c *Cache) Peek() *Snapshot {
	return c.current.Load()
}

func (c *Cache) expired(s *Snapshot) bool {
	if c.stale.Load() {
		return true
	}
	return c.ttl > 0 && c.now().Sub(s.BuiltAt) >= c.ttl
}

func (c *Cache) rebuildLocked(ctx context.Context) *Snapshot {
	// Clear before building so an Invalidate during the build survives.
	c.stale.Store(false)
	s := &Snapshot{
		Entities: c.source.Build(ctx),
		BuiltAt:  c.now(),
	}
	c.current.Store(s)
	return s
}
