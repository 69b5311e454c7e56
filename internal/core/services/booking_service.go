package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

type CreateBookingRequest struct {
	RoomID    string `json:"room_id"`
	GuestName string `json:"guest_name"`
	Contact   string `json:"contact"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Notes     string `json:"notes"`
}

type RescheduleRequest struct {
	// RoomID is optional; empty keeps the booking in its current room.
	RoomID   string `json:"room_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// StayQuery describes a candidate stay on a room, as used by the conflict and quote lookups.
type StayQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
	Exclude  string `form:"exclude"`
}

// maxLockAttempts bounds how often lockBooking chases a booking that keeps
// changing rooms between its unlocked and locked reads.
const maxLockAttempts = 3

type BookingService struct {
	roomRepo     ports.RoomRepository
	bookingRepo  ports.BookingRepository
	locker       ports.RoomLocker
	tariff       *TariffCalculator
	availability *AvailabilityChecker
	opts         options
}

func NewBookingService(roomRepo ports.RoomRepository, bookingRepo ports.BookingRepository, locker ports.RoomLocker, tariff *TariffCalculator, opts ...Option) *BookingService {
	return &BookingService{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		locker:       locker,
		tariff:       tariff,
		availability: NewAvailabilityChecker(bookingRepo),
		opts:         newOptions(opts),
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	roomID, err := parseID("room", req.RoomID)
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// Validated up front with a zero total; the price is only known under the lock.
	booking, err := domain.NewBooking(domain.NewBookingParams{
		RoomID:    roomID,
		GuestName: req.GuestName,
		Contact:   req.Contact,
		Stay:      stay,
		Total:     decimal.Zero,
		Notes:     req.Notes,
		CreatedBy: actorFrom(ctx),
		Now:       s.opts.now(),
	})
	if err != nil {
		return nil, err
	}

	room, err := s.bookableRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.LockRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("lock room %s: %w", room.Number, err)
	}
	defer unlock()

	if err := s.availability.EnsureAvailable(ctx, room.ID, stay, nil); err != nil {
		return nil, err
	}

	booking.TotalAmount = s.tariff.StayTotal(room, stay)

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.opts.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("room", room.Number),
		slog.String("stay", stay.String()),
		slog.String("total", booking.TotalAmount.StringFixed(2)),
	)
	s.opts.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingCreated, booking, booking.CreatedBy, s.opts.now()))

	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) UpdatePayment(ctx context.Context, bookingID string, paid decimal.Decimal) (*domain.Booking, error) {
	if paid.IsNegative() {
		return nil, domain.Validationf("paid amount must not be negative")
	}

	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, unlock, err := s.lockBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := booking.UpdatePayment(paid, s.opts.now()); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking payment: %w", err)
	}

	s.opts.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingPaymentUpdated, booking, actorFrom(ctx), s.opts.now()))

	return booking, nil
}

// UpdateStatus applies a status transition. Moving a cancelled or no-show booking
// back to an active status re-checks the room, which may have been re-let meanwhile.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status string) (*domain.Booking, error) {
	next, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, err
	}

	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, unlock, err := s.lockBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if booking.Status == next {
		return booking, nil
	}

	if !s.opts.transitions.Allows(booking.Status, next) {
		return nil, domain.Validationf("cannot change booking status from %s to %s", booking.Status, next)
	}

	reactivating := !booking.IsActive() && next.IsActive()

	if err := booking.ChangeStatus(next, s.opts.transitions, s.opts.now()); err != nil {
		return nil, err
	}

	if reactivating {
		if err := s.availability.EnsureAvailable(ctx, booking.RoomID, booking.Stay, &booking.ID); err != nil {
			return nil, err
		}
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if reactivating {
		s.opts.logger.InfoContext(ctx, "booking reactivated", slog.String("booking_id", booking.ID.String()), slog.String("status", string(next)))
	}
	s.opts.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingStatusChanged, booking, actorFrom(ctx), s.opts.now()))

	return booking, nil
}

// RescheduleBooking moves an active booking to new dates and/or another room and
// re-prices it with the target room's rates.
func (s *BookingService) RescheduleBooking(ctx context.Context, bookingID string, req RescheduleRequest) (*domain.Booking, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	targetID := booking.RoomID
	if strings.TrimSpace(req.RoomID) != "" {
		if targetID, err = parseID("room", req.RoomID); err != nil {
			return nil, err
		}
	}

	room, err := s.bookableRoom(ctx, targetID)
	if err != nil {
		return nil, err
	}

	// Both the current and the target room are held so payment and status
	// writes on the current room cannot interleave with the move.
	booking, unlock, err := s.lockBooking(ctx, id, room.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if !booking.IsActive() {
		return nil, domain.Validationf("cannot reschedule a %s booking", booking.Status)
	}

	if err := s.availability.EnsureAvailable(ctx, room.ID, stay, &booking.ID); err != nil {
		return nil, err
	}

	if err := booking.Reschedule(room.ID, stay, s.tariff.StayTotal(room, stay), s.opts.now()); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.opts.logger.InfoContext(ctx, "booking rescheduled",
		slog.String("booking_id", booking.ID.String()),
		slog.String("room", room.Number),
		slog.String("stay", stay.String()),
	)
	s.opts.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingRescheduled, booking, actorFrom(ctx), s.opts.now()))

	return booking, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, actor domain.Actor, bookingID string) error {
	if !actor.CanDeleteBookings() {
		return domain.Forbiddenf("role %s cannot delete bookings", actor.Role)
	}

	id, err := parseID("booking", bookingID)
	if err != nil {
		return err
	}

	booking, unlock, err := s.lockBooking(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if err := s.bookingRepo.Delete(ctx, booking.ID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.opts.logger.InfoContext(ctx, "booking deleted", slog.String("booking_id", booking.ID.String()), slog.String("actor", actor.ID.String()))
	s.opts.afterWrite(ctx, domain.NewBookingEvent(domain.EventBookingDeleted, booking, actor.ID, s.opts.now()))

	return nil
}

// lockBooking holds the lock of the booking's room, plus any extra rooms, and
// returns the booking as read under those locks. Every write to an existing
// booking goes through here so read-modify-write cycles never interleave.
func (s *BookingService) lockBooking(ctx context.Context, id uuid.UUID, extra ...uuid.UUID) (*domain.Booking, func(), error) {
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		current, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			return nil, nil, err
		}

		unlock, err := s.lockRooms(ctx, append([]uuid.UUID{current.RoomID}, extra...))
		if err != nil {
			return nil, nil, err
		}

		booking, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			unlock()
			return nil, nil, err
		}
		if booking.RoomID == current.RoomID {
			return booking, unlock, nil
		}

		// Moved to another room between the two reads.
		unlock()
	}

	return nil, nil, fmt.Errorf("%w: booking %s moved to another room while locking, retry", domain.ErrConflict, id)
}

// lockRooms takes the room locks in id order so two writers holding overlapping
// sets cannot wait on each other.
func (s *BookingService) lockRooms(ctx context.Context, ids []uuid.UUID) (func(), error) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	var held []func()
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i]()
		}
	}

	for i, id := range ids {
		if i > 0 && id == ids[i-1] {
			continue
		}
		unlock, err := s.locker.LockRoom(ctx, id)
		if err != nil {
			release()
			return nil, fmt.Errorf("lock room: %w", err)
		}
		held = append(held, unlock)
	}

	return release, nil
}

func (s *BookingService) FindConflicts(ctx context.Context, roomID string, q StayQuery) ([]domain.Booking, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(q.CheckIn, q.CheckOut)
	if err != nil {
		return nil, err
	}

	var exclude *uuid.UUID
	if strings.TrimSpace(q.Exclude) != "" {
		excludeID, err := parseID("booking", q.Exclude)
		if err != nil {
			return nil, err
		}
		exclude = &excludeID
	}

	return s.availability.FindConflicts(ctx, id, stay, exclude)
}

func (s *BookingService) QuoteStay(ctx context.Context, roomID string, q StayQuery) (*domain.Quote, error) {
	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	stay, err := parseStay(q.CheckIn, q.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quote := s.tariff.Quote(room, stay)
	return &quote, nil
}

func (s *BookingService) bookableRoom(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.Active {
		return nil, domain.Validationf("room %s is not open for booking", room.Number)
	}
	return room, nil
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domain.Validationf("invalid %s id %q", kind, raw)
	}
	return id, nil
}

func parseStay(checkIn, checkOut string) (domain.DateRange, error) {
	if strings.TrimSpace(checkIn) == "" || strings.TrimSpace(checkOut) == "" {
		return domain.DateRange{}, domain.Validationf("check-in and check-out dates are required")
	}

	in, err := domain.ParseDate(strings.TrimSpace(checkIn))
	if err != nil {
		return domain.DateRange{}, err
	}

	out, err := domain.ParseDate(strings.TrimSpace(checkOut))
	if err != nil {
		return domain.DateRange{}, err
	}

	return domain.NewDateRange(in, out)
}
