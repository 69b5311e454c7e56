package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
)

// ConflictError reports the active bookings that block a stay on a room.
type ConflictError struct {
	RoomID    uuid.UUID
	Stay      DateRange
	Conflicts []Booking
}

func (e *ConflictError) Error() string {
	if len(e.Conflicts) == 0 {
		return fmt.Sprintf("conflict: room %s is already booked for %s", e.RoomID, e.Stay)
	}

	guests := make([]string, 0, len(e.Conflicts))
	for _, b := range e.Conflicts {
		guests = append(guests, fmt.Sprintf("%s (%s)", b.GuestName, b.Stay))
	}

	return fmt.Sprintf("conflict: room %s is already booked for %s by %s", e.RoomID, e.Stay, strings.Join(guests, ", "))
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Forbiddenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}
