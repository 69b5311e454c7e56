package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

type CategorySeed struct {
	Code         string
	Name         string
	WeekdayRate  decimal.Decimal
	WeekendRate  decimal.Decimal
	DisplayOrder int
	Rooms        []string
}

func category(code, name string, weekday, weekend int64, order int, rooms ...string) CategorySeed {
	return CategorySeed{
		Code:         code,
		Name:         name,
		WeekdayRate:  decimal.NewFromInt(weekday),
		WeekendRate:  decimal.NewFromInt(weekend),
		DisplayOrder: order,
		Rooms:        rooms,
	}
}

// DefaultInventory is the property's room layout as of opening.
func DefaultInventory() []CategorySeed {
	return []CategorySeed{
		category("STUDIO_A", "Studio A", 2000, 2500, 10,
			"101", "102", "103", "104", "105", "106", "107", "110", "111", "112", "113", "114", "115", "116", "117"),
		category("STUDIO_A_PROMO", "Studio A Promo", 1800, 2200, 20, "108", "109", "118", "119"),
		category("STUDIO_B", "Studio B", 2200, 2700, 30, "201", "203", "205", "207", "209", "211", "212"),
		category("STUDIO_DELUXE", "Studio Deluxe", 2800, 3300, 40, "202", "204", "206", "208", "210"),
		category("FAMILY_NO_BALCONY", "Family Room w/o Balcony", 3500, 4000, 50, "216", "214"),
		category("FAMILY_WITH_BALCONY", "Family Room w/ Balcony", 4000, 4500, 60, "213", "215"),
		category("PENTHOUSE", "Penthouse", 6000, 7000, 70, "301", "302"),
		category("MODULE_HOUSE", "Module House", 5000, 6000, 80, "401", "402"),
		category("KTV", "KTV Room", 1500, 2000, 90, "501", "502", "503", "504"),
	}
}

type Result struct {
	Categories int
	Rooms      int
}

// Apply upserts every category with its rates and creates missing rooms. It is
// safe to run repeatedly; existing rooms keep their active flag.
func Apply(ctx context.Context, rooms ports.RoomRepository, inventory []CategorySeed, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var res Result
	for _, c := range inventory {
		cat := domain.RoomCategory{Code: c.Code, Name: c.Name, DisplayOrder: c.DisplayOrder}
		if err := cat.SetRates(c.WeekdayRate, c.WeekendRate); err != nil {
			return res, fmt.Errorf("seed category %s: %w", c.Code, err)
		}
		if err := rooms.UpsertCategory(ctx, &cat); err != nil {
			return res, fmt.Errorf("seed category %s: %w", c.Code, err)
		}
		res.Categories++

		for _, number := range c.Rooms {
			room := domain.Room{Number: number, Category: cat, Active: true}
			if err := rooms.UpsertRoom(ctx, &room); err != nil {
				return res, fmt.Errorf("seed room %s: %w", number, err)
			}
			res.Rooms++
		}

		logger.InfoContext(ctx, "room category seeded", slog.String("code", c.Code), slog.Int("rooms", len(c.Rooms)))
	}
	return res, nil
}
