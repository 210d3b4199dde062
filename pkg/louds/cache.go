package louds

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the default size for the LRU cache.
const DefaultCacheSize = 1024

// notFound marks cached negative lookups.
const notFound = -1

// CachedTrie wraps a Trie with an LRU cache for lookups. Hot queries,
// including misses, are answered without walking the levels again.
type CachedTrie struct {
	trie  *Trie
	cache *lru.Cache[string, int]
	mu    sync.RWMutex
}

// NewCachedTrie creates a cached index with the default cache size.
func NewCachedTrie(t *Trie) (*CachedTrie, error) {
	return NewCachedTrieWithSize(t, DefaultCacheSize)
}

// NewCachedTrieWithSize creates a cached index with a custom cache size.
func NewCachedTrieWithSize(t *Trie, cacheSize int) (*CachedTrie, error) {
	cache, err := lru.New[string, int](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create LRU cache: %w", err)
	}

	return &CachedTrie{
		trie:  t,
		cache: cache,
	}, nil
}

// Lookup behaves like Trie.Lookup with caching.
func (c *CachedTrie) Lookup(query string) (int, bool) {
	c.mu.RLock()
	if id, ok := c.cache.Get(query); ok {
		c.mu.RUnlock()
		if id == notFound {
			return 0, false
		}
		return id, true
	}
	c.mu.RUnlock()

	id, ok := c.trie.Lookup(query)

	c.mu.Lock()
	if ok {
		c.cache.Add(query, id)
	} else {
		c.cache.Add(query, notFound)
	}
	c.mu.Unlock()

	return id, ok
}

// Trie returns the underlying index.
func (c *CachedTrie) Trie() *Trie {
	return c.trie
}

// ClearCache clears the LRU cache.
func (c *CachedTrie) ClearCache() {
	c.mu.Lock()
	c.cache.Purge()
	c.mu.Unlock()
}

// CacheLen returns the number of items in the cache.
func (c *CachedTrie) CacheLen() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}
