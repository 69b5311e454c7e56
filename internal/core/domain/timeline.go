package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultTimelineDays = 14

// InventorySnapshot is a consistent read of everything a timeline needs.
type InventorySnapshot struct {
	Categories []RoomCategory
	Rooms      []Room
	Bookings   []Booking
}

type TimelineGrid struct {
	Start      time.Time          `json:"start"`
	End        time.Time          `json:"end"`
	Dates      []time.Time        `json:"dates"`
	PrevStart  time.Time          `json:"prev_start"`
	NextStart  time.Time          `json:"next_start"`
	Categories []TimelineCategory `json:"categories"`
	Stats      TimelineStats      `json:"stats"`
}

type TimelineCategory struct {
	ID    uuid.UUID      `json:"id"`
	Code  string         `json:"code"`
	Name  string         `json:"name"`
	Rooms []TimelineRoom `json:"rooms"`
}

type TimelineRoom struct {
	ID       uuid.UUID         `json:"id"`
	Number   string            `json:"number"`
	Bookings []TimelineBooking `json:"bookings"`
}

type TimelineBooking struct {
	ID            uuid.UUID       `json:"id"`
	GuestName     string          `json:"guest_name"`
	CheckIn       time.Time       `json:"check_in"`
	CheckOut      time.Time       `json:"check_out"`
	Nights        int             `json:"nights"`
	Status        BookingStatus   `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	Color         DisplayColor    `json:"color"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
}

type TimelineStats struct {
	TotalBookings int             `json:"total_bookings"`
	OccupiedRooms int             `json:"occupied_rooms"`
	ActiveRooms   int             `json:"active_rooms"`
	OccupancyRate float64         `json:"occupancy_rate"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

func NewTimelineBooking(b *Booking) TimelineBooking {
	return TimelineBooking{
		ID:            b.ID,
		GuestName:     b.GuestName,
		CheckIn:       b.Stay.CheckIn,
		CheckOut:      b.Stay.CheckOut,
		Nights:        b.Nights(),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus(),
		Color:         b.DisplayColor(),
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
	}
}
