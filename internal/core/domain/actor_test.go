package domain_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorPermissions(t *testing.T) {
	member := domain.Actor{Role: domain.RoleMember}
	admin := domain.Actor{Role: domain.RoleAdmin}
	super := domain.Actor{Role: domain.RoleSuper}

	assert.False(t, member.CanEditBookings())
	assert.False(t, member.CanDeleteBookings())

	assert.True(t, admin.CanEditBookings())
	assert.True(t, admin.CanDeleteBookings())
	assert.False(t, admin.CanManageRates())
	assert.False(t, admin.CanManageRooms())

	assert.True(t, super.CanManageRates())
	assert.True(t, super.CanManageRooms())
}

func TestActorContext(t *testing.T) {
	_, ok := domain.ActorFromContext(context.Background())
	assert.False(t, ok)

	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleAdmin}
	got, ok := domain.ActorFromContext(domain.ContextWithActor(context.Background(), actor))
	require.True(t, ok)
	assert.Equal(t, actor, got)

	role, err := domain.ParseRole(" super ")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSuper, role)

	_, err = domain.ParseRole("owner")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventKey(t *testing.T) {
	b := newBooking(t, 4000)
	actor := uuid.New()

	evt := domain.NewBookingEvent(domain.EventBookingCreated, b, actor, time.Now())
	assert.Equal(t, b.ID.String(), evt.Key())
	assert.Equal(t, actor.String(), evt.ActorID)
	assert.Equal(t, "UNPAID", evt.Payment)

	anonymous := domain.NewBookingEvent(domain.EventBookingDeleted, b, uuid.Nil, time.Now())
	assert.Empty(t, anonymous.ActorID)

	assert.Equal(t, "room-1", domain.Event{RoomID: "room-1", CategoryID: "cat"}.Key())
	assert.Equal(t, "cat", domain.Event{CategoryID: "cat"}.Key())
}

func TestConflictError(t *testing.T) {
	err := &domain.ConflictError{
		RoomID: uuid.New(),
		Stay:   domain.DateRange{CheckIn: day(2024, 6, 3), CheckOut: day(2024, 6, 5)},
		Conflicts: []domain.Booking{
			{GuestName: "Juan", Stay: domain.DateRange{CheckIn: day(2024, 6, 4), CheckOut: day(2024, 6, 6)}},
		},
	}

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "Juan (2024-06-04..2024-06-06)")
}
