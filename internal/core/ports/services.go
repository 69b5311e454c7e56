package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

// CalendarOracle decides which days are charged at the weekend rate.
type CalendarOracle interface {
	IsElevated(day time.Time) bool
}

// RoomLocker serializes writes that could double-book a room. The returned
// function releases the lock and is safe to call once.
type RoomLocker interface {
	LockRoom(ctx context.Context, roomID uuid.UUID) (func(), error)
}

// TimelineCache stores aggregated grids. Invalidate starts a new generation;
// callers read Generation before aggregating and key their entries with it.
type TimelineCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, key string) (*domain.TimelineGrid, bool, error)
	Set(ctx context.Context, key string, grid *domain.TimelineGrid) error
	Invalidate(ctx context.Context) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
