package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/adapter/calendar"
	"github.com/srgjo27/hotel_pms/internal/adapter/lock"
	"github.com/srgjo27/hotel_pms/internal/adapter/repository/memory"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
	"github.com/srgjo27/hotel_pms/internal/core/services"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func studioA() domain.RoomCategory {
	return domain.RoomCategory{
		ID:           uuid.New(),
		Code:         "STUDIO_A",
		Name:         "Studio A",
		WeekdayRate:  decimal.NewFromInt(2000),
		WeekendRate:  decimal.NewFromInt(2500),
		DisplayOrder: 10,
	}
}

func room101() *domain.Room {
	return &domain.Room{ID: uuid.New(), Number: "101", Category: studioA(), Active: true}
}

func adminCtx() (context.Context, domain.Actor) {
	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	return domain.ContextWithActor(context.Background(), actor), actor
}

// engine wires the booking service against the in-memory store, the way the
// API runs without Postgres and Redis.
type engine struct {
	store    *memory.Store
	bookings *services.BookingService
	room     *domain.Room
}

func newEngine(t *testing.T, opts ...services.Option) *engine {
	t.Helper()
	return newEngineWithBookings(t, nil, opts...)
}

// newEngineWithBookings lets a test wrap the booking repository the service writes through.
func newEngineWithBookings(t *testing.T, wrap func(ports.BookingRepository) ports.BookingRepository, opts ...services.Option) *engine {
	t.Helper()

	store := memory.NewStore()
	ctx := context.Background()

	category := studioA()
	require.NoError(t, store.Rooms().UpsertCategory(ctx, &category))

	room := &domain.Room{Number: "101", Category: category, Active: true}
	require.NoError(t, store.Rooms().UpsertRoom(ctx, room))

	var bookings ports.BookingRepository = store.Bookings()
	if wrap != nil {
		bookings = wrap(bookings)
	}

	opts = append([]services.Option{services.WithLogger(quietLogger()), services.WithClock(func() time.Time { return fixedNow })}, opts...)
	svc := services.NewBookingService(
		store.Rooms(),
		bookings,
		lock.NewMemoryLocker(),
		services.NewTariffCalculator(calendar.NewPhilippines(calendar.DefaultWeekend, nil)),
		opts...,
	)

	return &engine{store: store, bookings: svc, room: room}
}

func (e *engine) create(t *testing.T, guest, in, out string) *domain.Booking {
	t.Helper()
	b, err := e.bookings.CreateBooking(context.Background(), services.CreateBookingRequest{
		RoomID:    e.room.ID.String(),
		GuestName: guest,
		CheckIn:   in,
		CheckOut:  out,
	})
	require.NoError(t, err)
	return b
}
