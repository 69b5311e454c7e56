package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

type AvailabilityChecker struct {
	bookingRepo ports.BookingRepository
}

func NewAvailabilityChecker(bookingRepo ports.BookingRepository) *AvailabilityChecker {
	return &AvailabilityChecker{bookingRepo: bookingRepo}
}

// FindConflicts returns every active booking of the room whose stay overlaps the
// candidate stay. Adjacent stays are not conflicts. exclude skips one booking,
// typically the one being edited.
func (a *AvailabilityChecker) FindConflicts(ctx context.Context, roomID uuid.UUID, stay domain.DateRange, exclude *uuid.UUID) ([]domain.Booking, error) {
	if err := stay.Validate(); err != nil {
		return nil, err
	}

	candidates, err := a.bookingRepo.FindOverlapping(ctx, roomID, stay, domain.ActiveStatuses, exclude)
	if err != nil {
		return nil, fmt.Errorf("find overlapping bookings: %w", err)
	}

	// Repositories filter in storage; the rule is re-applied so every backend agrees on it.
	conflicts := make([]domain.Booking, 0, len(candidates))
	for _, b := range candidates {
		if b.RoomID != roomID || !b.IsActive() || !b.Stay.Overlaps(stay) {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		conflicts = append(conflicts, b)
	}

	return conflicts, nil
}

// EnsureAvailable turns a non-empty conflict set into a *domain.ConflictError.
func (a *AvailabilityChecker) EnsureAvailable(ctx context.Context, roomID uuid.UUID, stay domain.DateRange, exclude *uuid.UUID) error {
	conflicts, err := a.FindConflicts(ctx, roomID, stay, exclude)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &domain.ConflictError{RoomID: roomID, Stay: stay, Conflicts: conflicts}
	}
	return nil
}
