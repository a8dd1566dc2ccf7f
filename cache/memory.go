/*
# Module: cache/memory.go
In-memory TTL cache, the default backend when Redis is not configured.

## Linked Modules
- [cache/cache](./cache.go) - Cache interface

## Tags
cache, memory, ttl

## Exports
MemoryCache, NewMemoryCache

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "cache/memory.go" ;
    code:description "In-memory TTL cache" ;
    code:linksTo [
        code:name "cache/cache" ;
        code:path "./cache.go" ;
        code:relationship "Cache interface"
    ] ;
    code:exports :MemoryCache, :NewMemoryCache ;
    code:tags "cache", "memory", "ttl" .
<!-- End LinkedDoc RDF -->
*/
package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value   []byte
	expires time.Time
}

// MemoryCache is a mutex-guarded map with per-entry expiry
type MemoryCache struct {
	entries map[string]memoryEntry
	ttl     time.Duration
	mutex   sync.RWMutex
}

// NewMemoryCache creates an in-memory cache whose entries expire after ttl
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}

	// Start cleanup goroutine (remove expired entries every 10 minutes)
	go c.cleanupExpiredEntries()

	return c
}

// Get returns the cached value for key if present and not expired
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	c.mutex.RLock()
	entry, ok := c.entries[key]
	c.mutex.RUnlock()

	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key for the cache TTL
func (c *MemoryCache) Set(key string, value []byte) {
	c.mutex.Lock()
	c.entries[key] = memoryEntry{
		value:   value,
		expires: time.Now().Add(c.ttl),
	}
	c.mutex.Unlock()
}

// cleanupExpiredEntries removes expired entries every 10 minutes
func (c *MemoryCache) cleanupExpiredEntries() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for key, entry := range c.entries {
			if now.After(entry.expires) {
				delete(c.entries, key)
			}
		}
		c.mutex.Unlock()
	}
}
