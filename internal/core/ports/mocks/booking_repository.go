package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type BookingRepository struct {
	mock.Mock
}

func (_m *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ret := _m.Called(ctx, booking)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) error); ok {
		return rf(ctx, booking)
	}
	return ret.Error(0)
}

func (_m *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	ret := _m.Called(ctx, bookingID)

	var r0 *domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Booking)
	}
	return r0, ret.Error(1)
}

func (_m *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	ret := _m.Called(ctx, booking)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.Booking) error); ok {
		return rf(ctx, booking)
	}
	return ret.Error(0)
}

func (_m *BookingRepository) Delete(ctx context.Context, bookingID uuid.UUID) error {
	ret := _m.Called(ctx, bookingID)
	return ret.Error(0)
}

func (_m *BookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, stay domain.DateRange, statuses []domain.BookingStatus, exclude *uuid.UUID) ([]domain.Booking, error) {
	ret := _m.Called(ctx, roomID, stay, statuses, exclude)

	var r0 []domain.Booking
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Booking)
	}
	return r0, ret.Error(1)
}

// NewBookingRepository creates a mock that asserts its expectations when the test ends.
func NewBookingRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingRepository {
	m := &BookingRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
