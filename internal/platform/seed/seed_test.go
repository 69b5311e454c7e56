package seed_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports/mocks"
	"github.com/srgjo27/hotel_pms/internal/platform/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultInventory(t *testing.T) {
	inv := seed.DefaultInventory()

	require.Len(t, inv, 9)
	assert.Equal(t, "STUDIO_A", inv[0].Code)
	assert.True(t, decimal.NewFromInt(2000).Equal(inv[0].WeekdayRate))
	assert.True(t, decimal.NewFromInt(2500).Equal(inv[0].WeekendRate))

	seen := map[string]bool{}
	total := 0
	for _, c := range inv {
		for _, n := range c.Rooms {
			assert.False(t, seen[n], "room %s listed twice", n)
			seen[n] = true
			total++
		}
	}
	assert.Equal(t, 43, total)
}

func TestApply_IsIdempotent(t *testing.T) {
	store := memory.NewStore()
	rooms := store.Rooms()
	ctx := context.Background()

	res, err := seed.Apply(ctx, rooms, seed.DefaultInventory(), quiet())
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Categories: 9, Rooms: 43}, res)

	all, err := rooms.ListRooms(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 43)

	var ktv domain.Room
	for _, r := range all {
		if r.Number == "501" {
			ktv = r
		}
	}
	require.NoError(t, rooms.SetRoomActive(ctx, ktv.ID, false))

	_, err = seed.Apply(ctx, rooms, seed.DefaultInventory(), quiet())
	require.NoError(t, err)

	categories, err := rooms.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 9)

	active, err := rooms.ListRooms(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 42, "re-seeding keeps a deactivated room closed")
}

func TestApply_StopsOnError(t *testing.T) {
	rooms := mocks.NewRoomRepository(t)
	ctx := context.Background()

	rooms.On("UpsertCategory", ctx, mock.Anything).Return(errors.New("db down")).Once()

	_, err := seed.Apply(ctx, rooms, seed.DefaultInventory(), quiet())
	assert.ErrorContains(t, err, "seed category STUDIO_A")
}
