package ingredient

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultKeyCacheSize bounds a KeyCache built with a non-positive size.
const DefaultKeyCacheSize = 512

// KeyCache memoizes Normalize for repeated lines, such as the same recipe
// being added to the shopping list more than once. It is safe for concurrent
// use.
type KeyCache struct {
	lru *lru.Cache[string, string]
}

// NewKeyCache creates a cache holding at most size keys.
func NewKeyCache(size int) (*KeyCache, error) {
	if size <= 0 {
		size = DefaultKeyCacheSize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("create key cache: %w", err)
	}
	return &KeyCache{lru: c}, nil
}

// Key returns the normalized key for line. A nil cache normalizes directly.
func (c *KeyCache) Key(line string) string {
	if c == nil {
		return Normalize(line)
	}
	if key, ok := c.lru.Get(line); ok {
		return key
	}
	key := Normalize(line)
	c.lru.Add(line, key)
	return key
}

// Len reports the number of cached lines.
func (c *KeyCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge drops every cached key.
func (c *KeyCache) Purge() {
	if c != nil {
		c.lru.Purge()
	}
}
