package infrastructure

import (
	"sync"

	"github.com/na2na-p/atelier/internal/domain"
)

// SlugIDCache はプロセス内のslug->ID対応表。インスタンスごとに独立しており、並行アクセス可能。
type SlugIDCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewSlugIDCache() *SlugIDCache {
	return &SlugIDCache{
		entries: make(map[string]string),
	}
}

func (c *SlugIDCache) Get(resourceType domain.ResourceType, slug string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.entries[slugCacheKey(resourceType, slug)]
	return id, ok
}

func (c *SlugIDCache) Set(resourceType domain.ResourceType, slug, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[slugCacheKey(resourceType, slug)] = id
}

func (c *SlugIDCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string)
}

func (c *SlugIDCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func slugCacheKey(resourceType domain.ResourceType, slug string) string {
	return resourceType.String() + ":" + slug
}
