package services

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

// TariffCalculator prices stays night by night from the room category rates.
type TariffCalculator struct {
	calendar ports.CalendarOracle
}

func NewTariffCalculator(calendar ports.CalendarOracle) *TariffCalculator {
	return &TariffCalculator{calendar: calendar}
}

func (c *TariffCalculator) RateFor(room *domain.Room, day time.Time) decimal.Decimal {
	if c.calendar.IsElevated(domain.Day(day)) {
		return room.Category.WeekendRate
	}
	return room.Category.WeekdayRate
}

// StayTotal sums the nightly rate over [CheckIn, CheckOut). The checkout day is never billed.
func (c *TariffCalculator) StayTotal(room *domain.Room, stay domain.DateRange) decimal.Decimal {
	total := decimal.Zero
	for _, night := range stay.Days() {
		total = total.Add(c.RateFor(room, night))
	}
	return total
}

func (c *TariffCalculator) Quote(room *domain.Room, stay domain.DateRange) domain.Quote {
	q := domain.Quote{
		Stay:   stay,
		Nights: make([]domain.NightRate, 0, stay.Nights()),
		Total:  decimal.Zero,
	}

	for _, night := range stay.Days() {
		elevated := c.calendar.IsElevated(night)
		rate := room.Category.WeekdayRate
		if elevated {
			rate = room.Category.WeekendRate
		}

		q.Nights = append(q.Nights, domain.NightRate{Date: night, Elevated: elevated, Rate: rate})
		q.Total = q.Total.Add(rate)
	}

	return q
}
