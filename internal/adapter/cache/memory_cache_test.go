package cache

import (
	"context"
	"testing"
	"time"

	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTimelineCache_SetGetExpire(t *testing.T) {
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	c := NewMemoryTimelineCache(time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	grid := &domain.TimelineGrid{Start: now}
	require.NoError(t, c.Set(ctx, "timeline:0:2024-06-03:14", grid))

	got, ok, err := c.Get(ctx, "timeline:0:2024-06-03:14")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Same(t, grid, got)

	now = now.Add(time.Minute)
	_, ok, err = c.Get(ctx, "timeline:0:2024-06-03:14")
	require.NoError(t, err)
	assert.False(t, ok, "entry must expire after the ttl")
}

func TestMemoryTimelineCache_InvalidateStartsNewGeneration(t *testing.T) {
	c := NewMemoryTimelineCache(time.Minute)
	ctx := context.Background()

	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Zero(t, gen)

	require.NoError(t, c.Set(ctx, "timeline:0:2024-06-03:14", &domain.TimelineGrid{}))
	require.NoError(t, c.Invalidate(ctx))

	gen, err = c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	_, ok, err := c.Get(ctx, "timeline:0:2024-06-03:14")
	require.NoError(t, err)
	assert.False(t, ok)
}
