package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/srgjo27/hotel_pms/internal/core/ports"
)

const MaxTimelineDays = 92

type TimelineQuery struct {
	Start string `form:"start"`
	Days  int    `form:"days"`
}

type TimelineService struct {
	snapshots ports.SnapshotReader
	opts      options
}

func NewTimelineService(snapshots ports.SnapshotReader, opts ...Option) *TimelineService {
	return &TimelineService{snapshots: snapshots, opts: newOptions(opts)}
}

// Timeline resolves the query defaults and returns the grid, from cache when possible.
func (s *TimelineService) Timeline(ctx context.Context, q TimelineQuery) (*domain.TimelineGrid, error) {
	start := s.DefaultWindowStart()
	if strings.TrimSpace(q.Start) != "" {
		parsed, err := domain.ParseDate(strings.TrimSpace(q.Start))
		if err != nil {
			return nil, err
		}
		start = parsed
	}

	days := q.Days
	if days == 0 {
		days = domain.DefaultTimelineDays
	}

	return s.BuildTimeline(ctx, start, days)
}

func (s *TimelineService) BuildTimeline(ctx context.Context, start time.Time, days int) (*domain.TimelineGrid, error) {
	if days < 1 || days > MaxTimelineDays {
		return nil, domain.Validationf("timeline length must be between 1 and %d days, got %d", MaxTimelineDays, days)
	}
	start = domain.Day(start)

	gen, cached := s.cacheGeneration(ctx)
	if cached {
		key := timelineKey(gen, start, days)
		grid, ok, err := s.opts.cache.Get(ctx, key)
		if err != nil {
			s.opts.logger.WarnContext(ctx, "timeline cache read failed", slog.String("key", key), slog.Any("err", err))
		} else if ok {
			return grid, nil
		}
	}

	return s.aggregate(ctx, start, days, gen, cached)
}

// refresh aggregates from storage and stores the result in the cache.
func (s *TimelineService) refresh(ctx context.Context, start time.Time, days int) (*domain.TimelineGrid, error) {
	gen, cached := s.cacheGeneration(ctx)
	return s.aggregate(ctx, start, days, gen, cached)
}

// aggregate reads the snapshot and, when cached is set, stores the grid under
// generation gen. gen must be read before the snapshot: a write that invalidates
// in between bumps the generation, so the grid lands under a key no reader uses.
func (s *TimelineService) aggregate(ctx context.Context, start time.Time, days int, gen int64, cached bool) (*domain.TimelineGrid, error) {
	window := domain.DateRange{CheckIn: start, CheckOut: start.AddDate(0, 0, days)}

	snap, err := s.snapshots.Snapshot(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("read inventory snapshot: %w", err)
	}

	grid := AggregateTimeline(snap, start, days)

	if cached {
		if err := s.opts.cache.Set(ctx, timelineKey(gen, start, days), grid); err != nil {
			s.opts.logger.WarnContext(ctx, "timeline cache write failed", slog.Any("err", err))
		}
	}

	return grid, nil
}

// cacheGeneration reports the current cache generation, or false when the
// cache is absent or unreadable and should be bypassed.
func (s *TimelineService) cacheGeneration(ctx context.Context) (int64, bool) {
	if s.opts.cache == nil {
		return 0, false
	}

	gen, err := s.opts.cache.Generation(ctx)
	if err != nil {
		s.opts.logger.WarnContext(ctx, "timeline cache generation read failed", slog.Any("err", err))
		return 0, false
	}
	return gen, true
}

// DefaultWindowStart is the Monday of the current week in the hotel's time zone.
func (s *TimelineService) DefaultWindowStart() time.Time {
	today := s.opts.now().In(s.opts.location)
	offset := (int(today.Weekday()) + 6) % 7
	monday := today.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// RunCacheWarmer rebuilds the default window every interval so the first
// timeline request after a write does not pay for the aggregation.
func (s *TimelineService) RunCacheWarmer(ctx context.Context, interval time.Duration) {
	if s.opts.cache == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.opts.logger.Info("timeline cache warmer started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.opts.logger.Info("timeline cache warmer stopped")
			return
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

func (s *TimelineService) warm(ctx context.Context) {
	start := s.DefaultWindowStart()
	if _, err := s.refresh(ctx, start, domain.DefaultTimelineDays); err != nil {
		s.opts.logger.ErrorContext(ctx, "timeline cache warm failed", slog.Any("err", err))
	}
}

func timelineKey(gen int64, start time.Time, days int) string {
	return fmt.Sprintf("timeline:%d:%s:%d", gen, start.Format(domain.DateLayout), days)
}

// AggregateTimeline lays the snapshot out as a category/room/booking grid over
// [start, start+days). It is pure so it can be tested without storage.
func AggregateTimeline(snap *domain.InventorySnapshot, start time.Time, days int) *domain.TimelineGrid {
	start = domain.Day(start)
	window := domain.DateRange{CheckIn: start, CheckOut: start.AddDate(0, 0, days)}

	grid := &domain.TimelineGrid{
		Start:      start,
		End:        start.AddDate(0, 0, days-1),
		Dates:      window.Days(),
		PrevStart:  start.AddDate(0, 0, -days),
		NextStart:  start.AddDate(0, 0, days),
		Categories: []domain.TimelineCategory{},
		Stats:      domain.TimelineStats{TotalRevenue: decimal.Zero},
	}

	roomsByCategory := make(map[uuid.UUID][]domain.Room)
	activeRooms := make(map[uuid.UUID]bool)
	for _, r := range snap.Rooms {
		if !r.Active {
			continue
		}
		roomsByCategory[r.Category.ID] = append(roomsByCategory[r.Category.ID], r)
		activeRooms[r.ID] = true
	}

	bookingsByRoom := make(map[uuid.UUID][]domain.Booking)
	for _, b := range snap.Bookings {
		if !activeRooms[b.RoomID] || !b.Stay.Overlaps(window) {
			continue
		}
		bookingsByRoom[b.RoomID] = append(bookingsByRoom[b.RoomID], b)
	}

	categories := append([]domain.RoomCategory(nil), snap.Categories...)
	domain.SortCategories(categories)

	occupied := 0
	for _, c := range categories {
		rooms := roomsByCategory[c.ID]
		if len(rooms) == 0 {
			continue
		}
		domain.SortRooms(rooms)

		tc := domain.TimelineCategory{ID: c.ID, Code: c.Code, Name: c.Name, Rooms: make([]domain.TimelineRoom, 0, len(rooms))}
		for _, r := range rooms {
			bookings := bookingsByRoom[r.ID]
			sort.SliceStable(bookings, func(i, j int) bool {
				return bookings[i].Stay.CheckIn.Before(bookings[j].Stay.CheckIn)
			})

			tr := domain.TimelineRoom{ID: r.ID, Number: r.Number, Bookings: make([]domain.TimelineBooking, 0, len(bookings))}
			hasActive := false
			for i := range bookings {
				b := &bookings[i]
				tr.Bookings = append(tr.Bookings, domain.NewTimelineBooking(b))
				grid.Stats.TotalBookings++
				grid.Stats.TotalRevenue = grid.Stats.TotalRevenue.Add(b.TotalAmount)
				if b.IsActive() {
					hasActive = true
				}
			}
			if hasActive {
				occupied++
			}

			tc.Rooms = append(tc.Rooms, tr)
			grid.Stats.ActiveRooms++
		}

		grid.Categories = append(grid.Categories, tc)
	}

	grid.Stats.OccupiedRooms = occupied
	if grid.Stats.ActiveRooms > 0 {
		grid.Stats.OccupancyRate = float64(occupied) / float64(grid.Stats.ActiveRooms)
	}

	return grid
}
