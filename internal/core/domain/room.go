package domain

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomCategory struct {
	ID           uuid.UUID
	Code         string
	Name         string
	WeekdayRate  decimal.Decimal
	WeekendRate  decimal.Decimal
	DisplayOrder int
}

func (c *RoomCategory) SetRates(weekday, weekend decimal.Decimal) error {
	if weekday.IsNegative() || weekend.IsNegative() {
		return Validationf("rates must not be negative")
	}
	c.WeekdayRate = weekday
	c.WeekendRate = weekend
	return nil
}

type Room struct {
	ID       uuid.UUID
	Number   string
	Category RoomCategory
	Active   bool
}

// SortCategories orders categories for presentation: display order first, then name.
func SortCategories(categories []RoomCategory) {
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].DisplayOrder != categories[j].DisplayOrder {
			return categories[i].DisplayOrder < categories[j].DisplayOrder
		}
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})
}

// SortRooms orders rooms by number. Numeric room numbers compare as numbers, so
// "201" comes before "1001"; other labels follow them in string order.
func SortRooms(rooms []Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return lessRoomNumber(rooms[i].Number, rooms[j].Number)
	})
}

func lessRoomNumber(a, b string) bool {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		if x != y {
			return x < y
		}
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return a < b
}
