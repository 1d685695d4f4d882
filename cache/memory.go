package cache

import (
	"sync"
	"time"
)

// Item is a live cache entry together with the time it was stored.
type Item struct {
	Key      string
	Value    string
	StoredAt time.Time
}

type memoryEntry struct {
	value    string
	storedAt time.Time
}

// InMemoryCache is a thread-safe in-process cache with optional TTL.
// Entries restored from a snapshot keep their original age.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemoryCache creates an in-memory cache. A ttl of 0 or less keeps
// entries forever.
func NewInMemoryCache(ttl time.Duration) *InMemoryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &InMemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the value for key. Expired entries are dropped on access.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}

	if c.expired(entry.storedAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores value under key with the current time.
func (c *InMemoryCache) Set(key string, value string) error {
	c.Restore(key, value, c.now())
	return nil
}

// Restore stores value under key as if it had been set at storedAt. It
// reports false, storing nothing, when the entry is already expired.
func (c *InMemoryCache) Restore(key, value string, storedAt time.Time) bool {
	if c.expired(storedAt) {
		return false
	}

	c.mu.Lock()
	c.entries[key] = memoryEntry{value: value, storedAt: storedAt}
	c.mu.Unlock()
	return true
}

// Len returns the number of entries, expired ones included.
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear removes every entry.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]memoryEntry)
	c.mu.Unlock()
}

// Entries returns the live entries as a key-value map.
func (c *InMemoryCache) Entries() map[string]string {
	items := c.Items()
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[it.Key] = it.Value
	}
	return out
}

// Items returns the live entries with their storage times, in no
// particular order.
func (c *InMemoryCache) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]Item, 0, len(c.entries))
	for key, entry := range c.entries {
		if c.expired(entry.storedAt) {
			continue
		}
		items = append(items, Item{Key: key, Value: entry.value, StoredAt: entry.storedAt})
	}
	return items
}

func (c *InMemoryCache) expired(storedAt time.Time) bool {
	return c.ttl > 0 && c.now().Sub(storedAt) > c.ttl
}

var _ TranslationCache = (*InMemoryCache)(nil)
