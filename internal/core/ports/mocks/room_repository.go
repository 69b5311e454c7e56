package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type RoomRepository struct {
	mock.Mock
}

func (_m *RoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	ret := _m.Called(ctx, roomID)

	var r0 *domain.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Room)
	}
	return r0, ret.Error(1)
}

func (_m *RoomRepository) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.RoomCategory, error) {
	ret := _m.Called(ctx, categoryID)

	var r0 *domain.RoomCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RoomCategory)
	}
	return r0, ret.Error(1)
}

func (_m *RoomRepository) ListCategories(ctx context.Context) ([]domain.RoomCategory, error) {
	ret := _m.Called(ctx)

	var r0 []domain.RoomCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RoomCategory)
	}
	return r0, ret.Error(1)
}

func (_m *RoomRepository) ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []domain.Room
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Room)
	}
	return r0, ret.Error(1)
}

func (_m *RoomRepository) UpsertCategory(ctx context.Context, category *domain.RoomCategory) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

func (_m *RoomRepository) UpsertRoom(ctx context.Context, room *domain.Room) error {
	ret := _m.Called(ctx, room)
	return ret.Error(0)
}

func (_m *RoomRepository) UpdateCategoryRates(ctx context.Context, categoryID uuid.UUID, weekday, weekend decimal.Decimal) error {
	ret := _m.Called(ctx, categoryID, weekday, weekend)
	return ret.Error(0)
}

func (_m *RoomRepository) SetRoomActive(ctx context.Context, roomID uuid.UUID, active bool) error {
	ret := _m.Called(ctx, roomID, active)
	return ret.Error(0)
}

// NewRoomRepository creates a mock that asserts its expectations when the test ends.
func NewRoomRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RoomRepository {
	m := &RoomRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
