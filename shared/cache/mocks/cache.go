package mocks

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"innsync/shared/cache"
)

// InMemoryCache implements cache.RedisCache over a plain map for tests.
type InMemoryCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		store: map[string][]byte{},
	}
}

// Save implements cache.RedisCache.
func (c *InMemoryCache) Save(_ context.Context, key string, value any, _ int) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[key] = data

	return nil
}

// Get implements cache.RedisCache.
func (c *InMemoryCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	data, ok := c.store[key]
	c.mu.Unlock()

	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(data, value)
}

// Delete implements cache.RedisCache.
func (c *InMemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.store, key)

	return nil
}

// Clear implements cache.RedisCache.
func (c *InMemoryCache) Clear(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	trimmed := strings.TrimSuffix(prefix, "*")

	for key := range c.store {
		if strings.HasPrefix(key, trimmed) {
			delete(c.store, key)
		}
	}

	return nil
}

// Len reports the number of stored entries.
func (c *InMemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.store)
}
