// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"sync"
	"time"

	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// defaultCacheTTL bounds load on the remote repository: repeated identical
// queries within the window are answered from memory.
const defaultCacheTTL = 10 * time.Minute

// resultCache stores remote result pages keyed by (query, page, size).
// Entries are immutable once written and expire purely by age; there is
// no capacity bound and no LRU bookkeeping.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry

	// now is replaceable in tests.
	now func() time.Time
}

type cacheEntry struct {
	records []types.Record
	stored  time.Time
}

func newResultCache(ttl time.Duration) *resultCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func cacheKey(query string, page, size int) string {
	return fmt.Sprintf("%s|%d|%d", query, page, size)
}

func (c *resultCache) get(query string, page, size int) ([]types.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey(query, page, size)]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.stored) > c.ttl {
		delete(c.entries, cacheKey(query, page, size))
		return nil, false
	}
	return entry.records, true
}

func (c *resultCache) put(query string, page, size int, records []types.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Lazy sweep: drop anything already expired while we hold the lock.
	cutoff := c.now().Add(-c.ttl)
	for k, e := range c.entries {
		if e.stored.Before(cutoff) {
			delete(c.entries, k)
		}
	}

	c.entries[cacheKey(query, page, size)] = cacheEntry{records: records, stored: c.now()}
}
