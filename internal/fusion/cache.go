package fusion

import (
	"sort"
	"strings"
	"sync"
)

// cacheSeparator joins the sorted word pair into a cache key. The character
// cannot appear in catalog words, so keys never collide across pairs.
const cacheSeparator = "⊕"

// Cache memoizes validated AI candidates for the lifetime of the process.
// Keys are built from the raw word text (not ids), because the text-based
// resolution path has no stable ids. There is no TTL, no size bound, and no
// persistence; a cold process starts empty. Concurrent misses for the same
// pair are not coalesced — duplicate in-flight AI calls are accepted, the
// last writer wins and entries for equal keys are equivalent in quality.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]Candidate
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]Candidate)}
}

// CacheKey builds the case-sensitive sorted key for two word texts.
func CacheKey(wordA, wordB string) string {
	pair := []string{wordA, wordB}
	sort.Strings(pair)
	return strings.Join(pair, cacheSeparator)
}

// Get returns the cached candidates for a word pair. The returned slice is
// shared; callers must not mutate it.
func (c *Cache) Get(wordA, wordB string) ([]Candidate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	cached, ok := c.entries[CacheKey(wordA, wordB)]
	return cached, ok
}

// Put stores validated candidates for a word pair, replacing any previous
// entry.
func (c *Cache) Put(wordA, wordB string, candidates []Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[CacheKey(wordA, wordB)] = candidates
}

// Len reports the number of cached pairs.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
