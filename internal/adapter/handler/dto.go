package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

type updatePaymentRequest struct {
	PaidAmount *decimal.Decimal `json:"paid_amount"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type setActiveRequest struct {
	Active *bool `json:"active"`
}

type bookingResponse struct {
	ID            string               `json:"id"`
	RoomID        string               `json:"room_id"`
	GuestName     string               `json:"guest_name"`
	Contact       string               `json:"contact,omitempty"`
	CheckIn       string               `json:"check_in"`
	CheckOut      string               `json:"check_out"`
	Nights        int                  `json:"nights"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	PaidAmount    decimal.Decimal      `json:"paid_amount"`
	Status        domain.BookingStatus `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Color         domain.DisplayColor  `json:"color"`
	Notes         string               `json:"notes,omitempty"`
	CreatedBy     string               `json:"created_by,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func newBookingResponse(b *domain.Booking) bookingResponse {
	resp := bookingResponse{
		ID:            b.ID.String(),
		RoomID:        b.RoomID.String(),
		GuestName:     b.GuestName,
		Contact:       b.Contact,
		CheckIn:       b.Stay.CheckIn.Format(domain.DateLayout),
		CheckOut:      b.Stay.CheckOut.Format(domain.DateLayout),
		Nights:        b.Nights(),
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus(),
		Color:         b.DisplayColor(),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.CreatedBy != uuid.Nil {
		resp.CreatedBy = b.CreatedBy.String()
	}
	return resp
}

func newBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, newBookingResponse(&bookings[i]))
	}
	return out
}

type categoryResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	WeekdayRate  decimal.Decimal `json:"weekday_rate"`
	WeekendRate  decimal.Decimal `json:"weekend_rate"`
	DisplayOrder int             `json:"display_order"`
}

func newCategoryResponse(c *domain.RoomCategory) categoryResponse {
	return categoryResponse{
		ID:           c.ID.String(),
		Code:         c.Code,
		Name:         c.Name,
		WeekdayRate:  c.WeekdayRate,
		WeekendRate:  c.WeekendRate,
		DisplayOrder: c.DisplayOrder,
	}
}

type roomResponse struct {
	ID       string           `json:"id"`
	Number   string           `json:"number"`
	Active   bool             `json:"active"`
	Category categoryResponse `json:"category"`
}

func newRoomResponse(r *domain.Room) roomResponse {
	return roomResponse{
		ID:       r.ID.String(),
		Number:   r.Number,
		Active:   r.Active,
		Category: newCategoryResponse(&r.Category),
	}
}

type nightResponse struct {
	Date     string          `json:"date"`
	Elevated bool            `json:"elevated"`
	Rate     decimal.Decimal `json:"rate"`
}

type quoteResponse struct {
	RoomID   string          `json:"room_id"`
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
	Nights   []nightResponse `json:"nights"`
	Total    decimal.Decimal `json:"total"`
}

func newQuoteResponse(roomID string, q *domain.Quote) quoteResponse {
	nights := make([]nightResponse, 0, len(q.Nights))
	for _, n := range q.Nights {
		nights = append(nights, nightResponse{Date: n.Date.Format(domain.DateLayout), Elevated: n.Elevated, Rate: n.Rate})
	}
	return quoteResponse{
		RoomID:   roomID,
		CheckIn:  q.Stay.CheckIn.Format(domain.DateLayout),
		CheckOut: q.Stay.CheckOut.Format(domain.DateLayout),
		Nights:   nights,
		Total:    q.Total,
	}
}

type timelineBookingResponse struct {
	ID            string               `json:"id"`
	GuestName     string               `json:"guest_name"`
	CheckIn       string               `json:"check_in"`
	CheckOut      string               `json:"check_out"`
	Nights        int                  `json:"nights"`
	Status        domain.BookingStatus `json:"status"`
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Color         domain.DisplayColor  `json:"color"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	PaidAmount    decimal.Decimal      `json:"paid_amount"`
}

type timelineRoomResponse struct {
	ID       string                    `json:"id"`
	Number   string                    `json:"number"`
	Bookings []timelineBookingResponse `json:"bookings"`
}

type timelineCategoryResponse struct {
	ID    string                 `json:"id"`
	Code  string                 `json:"code"`
	Name  string                 `json:"name"`
	Rooms []timelineRoomResponse `json:"rooms"`
}

type timelineResponse struct {
	Start      string                     `json:"start"`
	End        string                     `json:"end"`
	Dates      []string                   `json:"dates"`
	PrevStart  string                     `json:"prev_start"`
	NextStart  string                     `json:"next_start"`
	Categories []timelineCategoryResponse `json:"categories"`
	Stats      domain.TimelineStats       `json:"stats"`
}

func newTimelineResponse(g *domain.TimelineGrid) timelineResponse {
	resp := timelineResponse{
		Start:      g.Start.Format(domain.DateLayout),
		End:        g.End.Format(domain.DateLayout),
		Dates:      make([]string, 0, len(g.Dates)),
		PrevStart:  g.PrevStart.Format(domain.DateLayout),
		NextStart:  g.NextStart.Format(domain.DateLayout),
		Categories: make([]timelineCategoryResponse, 0, len(g.Categories)),
		Stats:      g.Stats,
	}
	for _, d := range g.Dates {
		resp.Dates = append(resp.Dates, d.Format(domain.DateLayout))
	}

	for _, cat := range g.Categories {
		catResp := timelineCategoryResponse{
			ID:    cat.ID.String(),
			Code:  cat.Code,
			Name:  cat.Name,
			Rooms: make([]timelineRoomResponse, 0, len(cat.Rooms)),
		}
		for _, room := range cat.Rooms {
			roomResp := timelineRoomResponse{
				ID:       room.ID.String(),
				Number:   room.Number,
				Bookings: make([]timelineBookingResponse, 0, len(room.Bookings)),
			}
			for _, b := range room.Bookings {
				roomResp.Bookings = append(roomResp.Bookings, timelineBookingResponse{
					ID:            b.ID.String(),
					GuestName:     b.GuestName,
					CheckIn:       b.CheckIn.Format(domain.DateLayout),
					CheckOut:      b.CheckOut.Format(domain.DateLayout),
					Nights:        b.Nights,
					Status:        b.Status,
					PaymentStatus: b.PaymentStatus,
					Color:         b.Color,
					TotalAmount:   b.TotalAmount,
					PaidAmount:    b.PaidAmount,
				})
			}
			catResp.Rooms = append(catResp.Rooms, roomResp)
		}
		resp.Categories = append(resp.Categories, catResp)
	}
	return resp
}
