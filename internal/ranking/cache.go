package ranking

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	defaultCacheTTL      = 60 * time.Second
	defaultCacheCapacity = 200
)

type cacheEntry struct {
	matches  []types.EnhancedJobMatch
	storedAt time.Time
}

// MatchCache is a bounded TTL cache for ranked results. Eviction is
// oldest-insertion-first; the clock is injectable so tests control
// expiry deterministically.
type MatchCache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	order    []string
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewMatchCache builds a cache with the given TTL and entry bound.
// Non-positive arguments fall back to the defaults.
func NewMatchCache(ttl time.Duration, capacity int) *MatchCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	return &MatchCache{
		entries:  make(map[string]cacheEntry),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// cacheKey identifies one (candidate, criteria) combination. Skills are
// sorted so criteria ordering does not fragment the cache.
func cacheKey(criteria *types.RankCriteria) string {
	skills := make([]string, len(criteria.Skills))
	copy(skills, criteria.Skills)
	sort.Strings(skills)

	return strings.Join([]string{
		criteria.CandidateID,
		strings.Join(skills, ","),
		criteria.Location,
		string(criteria.WorkType),
	}, "|")
}

// Get returns the cached matches for a key, or false on miss or expiry.
func (c *MatchCache) Get(key string) ([]types.EnhancedJobMatch, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		c.remove(key)
		return nil, false
	}

	matches := make([]types.EnhancedJobMatch, len(entry.matches))
	copy(matches, entry.matches)
	return matches, true
}

// Put stores matches for a key, evicting the oldest entry when full.
// Expired entries are swept first so they never count against the
// capacity bound.
func (c *MatchCache) Put(key string, matches []types.EnhancedJobMatch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweepExpired()

	stored := make([]types.EnhancedJobMatch, len(matches))
	copy(stored, matches)

	if _, exists := c.entries[key]; !exists {
		for len(c.entries) >= c.capacity && len(c.order) > 0 {
			c.remove(c.order[0])
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = cacheEntry{matches: stored, storedAt: c.now()}
}

// InvalidateCandidate drops every cached result for one candidate, for
// use when their preferences or profile change.
func (c *MatchCache) InvalidateCandidate(candidateID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := candidateID + "|"
	for _, key := range append([]string(nil), c.order...) {
		if strings.HasPrefix(key, prefix) {
			c.remove(key)
		}
	}
}

// Len reports the live entry count.
func (c *MatchCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// sweepExpired drops every entry past its TTL. Expects c.mu held.
func (c *MatchCache) sweepExpired() {
	now := c.now()
	for _, key := range append([]string(nil), c.order...) {
		if now.Sub(c.entries[key].storedAt) > c.ttl {
			c.remove(key)
		}
	}
}

// remove expects c.mu held.
func (c *MatchCache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
