package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

type UpdateRatesRequest struct {
	WeekdayRate decimal.Decimal `json:"weekday_rate"`
	WeekendRate decimal.Decimal `json:"weekend_rate"`
}

// RoomService manages the inventory side: category tariffs and room activation.
// Both changes are restricted to SUPER operators.
type RoomService struct {
	roomRepo ports.RoomRepository
	opts     options
}

func NewRoomService(roomRepo ports.RoomRepository, opts ...Option) *RoomService {
	return &RoomService{roomRepo: roomRepo, opts: newOptions(opts)}
}

// ListCategories returns the categories in presentation order with their current rates.
func (s *RoomService) ListCategories(ctx context.Context) ([]domain.RoomCategory, error) {
	categories, err := s.roomRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	domain.SortCategories(categories)
	return categories, nil
}

func (s *RoomService) UpdateCategoryRates(ctx context.Context, actor domain.Actor, categoryID string, req UpdateRatesRequest) (*domain.RoomCategory, error) {
	if !actor.CanManageRates() {
		return nil, domain.Forbiddenf("role %s cannot change rates", actor.Role)
	}

	id, err := parseID("category", categoryID)
	if err != nil {
		return nil, err
	}

	category, err := s.roomRepo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := category.SetRates(req.WeekdayRate, req.WeekendRate); err != nil {
		return nil, err
	}

	if err := s.roomRepo.UpdateCategoryRates(ctx, category.ID, category.WeekdayRate, category.WeekendRate); err != nil {
		return nil, fmt.Errorf("update category rates: %w", err)
	}

	s.opts.logger.InfoContext(ctx, "category rates updated",
		slog.String("category", category.Code),
		slog.String("weekday", category.WeekdayRate.StringFixed(2)),
		slog.String("weekend", category.WeekendRate.StringFixed(2)),
	)
	s.opts.afterWrite(ctx, domain.Event{
		Type:       domain.EventCategoryRatesUpdated,
		CategoryID: category.ID.String(),
		ActorID:    actor.ID.String(),
		At:         s.now(),
	})

	return category, nil
}

func (s *RoomService) SetRoomActive(ctx context.Context, actor domain.Actor, roomID string, active bool) (*domain.Room, error) {
	if !actor.CanManageRooms() {
		return nil, domain.Forbiddenf("role %s cannot change room availability", actor.Role)
	}

	id, err := parseID("room", roomID)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if room.Active == active {
		return room, nil
	}

	if err := s.roomRepo.SetRoomActive(ctx, room.ID, active); err != nil {
		return nil, fmt.Errorf("set room active: %w", err)
	}
	room.Active = active

	s.opts.logger.InfoContext(ctx, "room activation changed", slog.String("room", room.Number), slog.Bool("active", active))
	s.opts.afterWrite(ctx, domain.Event{
		Type:    domain.EventRoomActivationChanged,
		RoomID:  room.ID.String(),
		ActorID: actor.ID.String(),
		Status:  activeLabel(active),
		At:      s.now(),
	})

	return room, nil
}

func (s *RoomService) now() time.Time {
	return s.opts.now().UTC()
}

func activeLabel(active bool) string {
	if active {
		return "ACTIVE"
	}
	return "INACTIVE"
}
