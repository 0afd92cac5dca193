package cache

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/currency-converter/internal/domain"
)

var _ RateCache = (*MemoryCache)(nil)

// MemoryCache is the in-process fallback used when no redis address is
// configured.
type MemoryCache struct {
	mu      sync.Mutex
	table   domain.RateTable
	expires time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get(_ context.Context) (domain.RateTable, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table == nil || time.Now().After(c.expires) {
		return nil, false, nil
	}

	return c.table.Clone(), true, nil
}

func (c *MemoryCache) Set(_ context.Context, table domain.RateTable, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = table.Clone()
	c.expires = time.Now().Add(ttl)
	return nil
}
