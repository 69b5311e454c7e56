package cache

import (
	"context"
	"sync"
	"time"

	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

type memoryEntry struct {
	grid    *domain.TimelineGrid
	expires time.Time
}

// MemoryTimelineCache keeps timeline grids in process. It backs the API when
// Redis is not configured.
type MemoryTimelineCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	gen     int64
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryTimelineCache(ttl time.Duration) *MemoryTimelineCache {
	return &MemoryTimelineCache{ttl: ttl, entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryTimelineCache) Generation(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen, nil
}

func (c *MemoryTimelineCache) Get(ctx context.Context, key string) (*domain.TimelineGrid, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.grid, true, nil
}

func (c *MemoryTimelineCache) Set(ctx context.Context, key string, grid *domain.TimelineGrid) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{grid: grid, expires: c.now().Add(c.ttl)}
	return nil
}

func (c *MemoryTimelineCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.entries = make(map[string]memoryEntry)
	return nil
}
