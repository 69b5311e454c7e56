package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

type RoomRepository interface {
	GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error)
	GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.RoomCategory, error)
	ListCategories(ctx context.Context) ([]domain.RoomCategory, error)
	ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error)
	UpsertCategory(ctx context.Context, category *domain.RoomCategory) error
	UpsertRoom(ctx context.Context, room *domain.Room) error
	UpdateCategoryRates(ctx context.Context, categoryID uuid.UUID, weekday, weekend decimal.Decimal) error
	SetRoomActive(ctx context.Context, roomID uuid.UUID, active bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, bookingID uuid.UUID) error
	FindOverlapping(ctx context.Context, roomID uuid.UUID, stay domain.DateRange, statuses []domain.BookingStatus, exclude *uuid.UUID) ([]domain.Booking, error)
}

// SnapshotReader reads categories, active rooms and the bookings overlapping a
// window as one consistent view.
type SnapshotReader interface {
	Snapshot(ctx context.Context, window domain.DateRange) (*domain.InventorySnapshot, error)
}
