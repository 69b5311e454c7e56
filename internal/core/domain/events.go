package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingCreated        EventType = "booking.created"
	EventBookingPaymentUpdated EventType = "booking.payment_updated"
	EventBookingStatusChanged  EventType = "booking.status_changed"
	EventBookingRescheduled    EventType = "booking.rescheduled"
	EventBookingDeleted        EventType = "booking.deleted"
	EventCategoryRatesUpdated  EventType = "category.rates_updated"
	EventRoomActivationChanged EventType = "room.activation_changed"
)

// Event is emitted after a successful write for downstream consumers such as the audit log.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"booking_id,omitempty"`
	RoomID     string    `json:"room_id,omitempty"`
	CategoryID string    `json:"category_id,omitempty"`
	ActorID    string    `json:"actor_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Payment    string    `json:"payment_status,omitempty"`
	At         time.Time `json:"at"`
}

// Key groups events of the same aggregate on one partition.
func (e Event) Key() string {
	switch {
	case e.BookingID != "":
		return e.BookingID
	case e.RoomID != "":
		return e.RoomID
	default:
		return e.CategoryID
	}
}

func NewBookingEvent(t EventType, b *Booking, actor uuid.UUID, now time.Time) Event {
	evt := Event{
		Type:      t,
		BookingID: b.ID.String(),
		RoomID:    b.RoomID.String(),
		Status:    string(b.Status),
		Payment:   string(b.PaymentStatus()),
		At:        now.UTC(),
	}
	if actor != uuid.Nil {
		evt.ActorID = actor.String()
	}
	return evt
}
