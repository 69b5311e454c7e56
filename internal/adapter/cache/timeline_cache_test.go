package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/adapter/cache"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleGrid() *domain.TimelineGrid {
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	return &domain.TimelineGrid{
		Start: start,
		End:   start.AddDate(0, 0, 1),
		Dates: []time.Time{start, start.AddDate(0, 0, 1)},
		Categories: []domain.TimelineCategory{{
			ID:   uuid.MustParse("8b5d0c9e-4e8b-4bd1-9f7d-8d6a7c1c0a01"),
			Code: "STUDIO_A",
			Name: "Studio A",
			Rooms: []domain.TimelineRoom{{
				ID:       uuid.MustParse("8b5d0c9e-4e8b-4bd1-9f7d-8d6a7c1c0a02"),
				Number:   "101",
				Bookings: []domain.TimelineBooking{},
			}},
		}},
		Stats: domain.TimelineStats{ActiveRooms: 1, TotalRevenue: decimal.NewFromInt(4000)},
	}
}

func TestRedisTimelineCache_Set(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)

	grid := sampleGrid()
	payload, err := json.Marshal(grid)
	require.NoError(t, err)

	mockRedis.ExpectSet("timeline:0:2024-06-03:2", string(payload), time.Minute).SetVal("OK")
	mockRedis.ExpectSAdd("timeline:keys", "timeline:0:2024-06-03:2").SetVal(1)

	require.NoError(t, c.Set(context.Background(), "timeline:0:2024-06-03:2", grid))

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRedisTimelineCache_GetHit(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)

	grid := sampleGrid()
	payload, err := json.Marshal(grid)
	require.NoError(t, err)

	mockRedis.ExpectGet("timeline:0:2024-06-03:2").SetVal(string(payload))

	got, ok, err := c.Get(context.Background(), "timeline:0:2024-06-03:2")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "101", got.Categories[0].Rooms[0].Number)
	assert.True(t, grid.Stats.TotalRevenue.Equal(got.Stats.TotalRevenue))
	assert.True(t, grid.Start.Equal(got.Start))
}

func TestRedisTimelineCache_GetMiss(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)

	mockRedis.ExpectGet("timeline:0:2024-06-03:14").RedisNil()

	got, ok, err := c.Get(context.Background(), "timeline:0:2024-06-03:14")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRedisTimelineCache_GetError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)

	mockRedis.ExpectGet("timeline:0:2024-06-03:14").SetErr(errors.New("i/o timeout"))

	_, ok, err := c.Get(context.Background(), "timeline:0:2024-06-03:14")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisTimelineCache_Generation(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)
	ctx := context.Background()

	mockRedis.ExpectGet("timeline:gen").RedisNil()
	gen, err := c.Generation(ctx)
	require.NoError(t, err)
	assert.Zero(t, gen)

	mockRedis.ExpectGet("timeline:gen").SetVal("7")
	gen, err = c.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), gen)

	mockRedis.ExpectGet("timeline:gen").SetErr(errors.New("i/o timeout"))
	_, err = c.Generation(ctx)
	assert.Error(t, err)

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRedisTimelineCache_Invalidate(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)

	mockRedis.ExpectIncr("timeline:gen").SetVal(1)
	mockRedis.ExpectSMembers("timeline:keys").SetVal([]string{"timeline:0:2024-06-03:14"})
	mockRedis.ExpectDel("timeline:0:2024-06-03:14", "timeline:keys").SetVal(2)

	require.NoError(t, c.Invalidate(context.Background()))

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRedisTimelineCache_InvalidateFailsWhenGenerationCannotMove(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	c := cache.NewRedisTimelineCache(db, time.Minute)

	mockRedis.ExpectIncr("timeline:gen").SetErr(errors.New("READONLY"))

	assert.Error(t, c.Invalidate(context.Background()))

	if err := mockRedis.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
