package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPencil    BookingStatus = "PENCIL"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCheckedIn BookingStatus = "CHECKED_IN"
	BookingNoShow    BookingStatus = "NO_SHOW"
	BookingCancelled BookingStatus = "CANCELLED"
)

// ActiveStatuses are the statuses that hold a room and count toward occupancy.
var ActiveStatuses = []BookingStatus{BookingPencil, BookingConfirmed, BookingCheckedIn}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", Validationf("invalid booking status %q", s)
	}
	return status, nil
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPencil, BookingConfirmed, BookingCheckedIn, BookingNoShow, BookingCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

func DerivePaymentStatus(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return PaymentPaid
	case paid.IsPositive():
		return PaymentPartial
	default:
		return PaymentUnpaid
	}
}

type Booking struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	GuestName   string
	Contact     string
	Stay        DateRange
	TotalAmount decimal.Decimal
	PaidAmount  decimal.Decimal
	Status      BookingStatus
	Notes       string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewBookingParams struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	GuestName string
	Contact   string
	Stay      DateRange
	Total     decimal.Decimal
	Notes     string
	CreatedBy uuid.UUID
	Now       time.Time
}

func NewBooking(p NewBookingParams) (*Booking, error) {
	if err := p.Stay.Validate(); err != nil {
		return nil, err
	}

	guest := strings.TrimSpace(p.GuestName)
	if guest == "" {
		return nil, Validationf("guest name is required")
	}

	if p.Total.IsNegative() {
		return nil, Validationf("total amount must not be negative")
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	now := p.Now.UTC()
	return &Booking{
		ID:          id,
		RoomID:      p.RoomID,
		GuestName:   guest,
		Contact:     strings.TrimSpace(p.Contact),
		Stay:        p.Stay,
		TotalAmount: p.Total,
		PaidAmount:  decimal.Zero,
		Status:      BookingPencil,
		Notes:       p.Notes,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// PaymentStatus is derived from the amounts on every read; it has no setter.
func (b *Booking) PaymentStatus() PaymentStatus {
	return DerivePaymentStatus(b.PaidAmount, b.TotalAmount)
}

func (b *Booking) Nights() int {
	return b.Stay.Nights()
}

func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

func (b *Booking) UpdatePayment(paid decimal.Decimal, now time.Time) error {
	if paid.IsNegative() {
		return Validationf("paid amount must not be negative")
	}
	b.PaidAmount = paid
	b.UpdatedAt = now.UTC()
	return nil
}

func (b *Booking) ChangeStatus(next BookingStatus, mode TransitionMode, now time.Time) error {
	if !next.IsValid() {
		return Validationf("invalid booking status %q", next)
	}
	if !mode.Allows(b.Status, next) {
		return Validationf("cannot change booking status from %s to %s", b.Status, next)
	}
	b.Status = next
	b.UpdatedAt = now.UTC()
	return nil
}

// Reschedule moves the stay to another range and/or room. The caller supplies the
// re-priced total because pricing depends on the target room.
func (b *Booking) Reschedule(roomID uuid.UUID, stay DateRange, total decimal.Decimal, now time.Time) error {
	if !b.IsActive() {
		return Validationf("cannot reschedule a %s booking", b.Status)
	}
	if err := stay.Validate(); err != nil {
		return err
	}
	if total.IsNegative() {
		return Validationf("total amount must not be negative")
	}
	b.RoomID = roomID
	b.Stay = stay
	b.TotalAmount = total
	b.UpdatedAt = now.UTC()
	return nil
}
