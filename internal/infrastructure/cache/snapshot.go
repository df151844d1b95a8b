package cache

import (
	"sync"
	"time"

	"github.com/Waschdachs-Git/RepFinder/internal/domain"
)

// SnapshotCache is a thread-safe single-value cache holding the current
// catalog snapshot with its fetch timestamp. The loader owns one instance;
// expiry makes the next Load refresh synchronously. Concurrent refreshes at
// expiry are tolerated: every reload produces an equivalent snapshot, so the
// last writer simply wins.
type SnapshotCache struct {
	mutex     sync.RWMutex
	catalog   *domain.Catalog
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewSnapshotCache creates a snapshot cache with the given TTL.
func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	return NewSnapshotCacheWithClock(ttl, time.Now)
}

// NewSnapshotCacheWithClock creates a snapshot cache with an injected clock,
// so tests control expiry deterministically.
func NewSnapshotCacheWithClock(ttl time.Duration, now func() time.Time) *SnapshotCache {
	return &SnapshotCache{
		ttl: ttl,
		now: now,
	}
}

// Get returns the cached snapshot, or ErrCacheMiss when empty or expired.
func (c *SnapshotCache) Get() (*domain.Catalog, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.catalog == nil {
		return nil, domain.ErrCacheMiss
	}
	if c.now().After(c.fetchedAt.Add(c.ttl)) {
		return nil, domain.ErrCacheMiss
	}
	return c.catalog, nil
}

// Set stores a fresh snapshot, stamping it with the current time.
func (c *SnapshotCache) Set(catalog *domain.Catalog) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.catalog = catalog
	c.fetchedAt = c.now()
}

// Clear drops the cached snapshot, forcing a reload on the next Get.
func (c *SnapshotCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.catalog = nil
	c.fetchedAt = time.Time{}
}

// FetchedAt returns when the current snapshot was stored (zero when empty).
func (c *SnapshotCache) FetchedAt() time.Time {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.fetchedAt
}
