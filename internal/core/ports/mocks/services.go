package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type SnapshotReader struct {
	mock.Mock
}

func (_m *SnapshotReader) Snapshot(ctx context.Context, window domain.DateRange) (*domain.InventorySnapshot, error) {
	ret := _m.Called(ctx, window)

	var r0 *domain.InventorySnapshot
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.InventorySnapshot)
	}
	return r0, ret.Error(1)
}

func NewSnapshotReader(t testingT) *SnapshotReader {
	m := &SnapshotReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type RoomLocker struct {
	mock.Mock
}

func (_m *RoomLocker) LockRoom(ctx context.Context, roomID uuid.UUID) (func(), error) {
	ret := _m.Called(ctx, roomID)

	var r0 func()
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(func())
	}
	return r0, ret.Error(1)
}

func NewRoomLocker(t testingT) *RoomLocker {
	m := &RoomLocker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type TimelineCache struct {
	mock.Mock
}

func (_m *TimelineCache) Generation(ctx context.Context) (int64, error) {
	ret := _m.Called(ctx)

	var r0 int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(int64)
	}
	return r0, ret.Error(1)
}

func (_m *TimelineCache) Get(ctx context.Context, key string) (*domain.TimelineGrid, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 *domain.TimelineGrid
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.TimelineGrid)
	}
	return r0, ret.Bool(1), ret.Error(2)
}

func (_m *TimelineCache) Set(ctx context.Context, key string, grid *domain.TimelineGrid) error {
	ret := _m.Called(ctx, key, grid)
	return ret.Error(0)
}

func (_m *TimelineCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func NewTimelineCache(t testingT) *TimelineCache {
	m := &TimelineCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) Publish(ctx context.Context, event domain.Event) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewEventPublisher(t testingT) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
