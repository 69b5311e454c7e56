package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

type roomRecord struct {
	id         uuid.UUID
	number     string
	categoryID uuid.UUID
	active     bool
}

// Store keeps the whole inventory in process memory. It backs local runs
// without Postgres and the service tests. Like the database, it refuses two
// active bookings on the same room with overlapping stays.
type Store struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]domain.RoomCategory
	rooms      map[uuid.UUID]roomRecord
	bookings   map[uuid.UUID]domain.Booking
}

func NewStore() *Store {
	return &Store{
		categories: make(map[uuid.UUID]domain.RoomCategory),
		rooms:      make(map[uuid.UUID]roomRecord),
		bookings:   make(map[uuid.UUID]domain.Booking),
	}
}

// Rooms and Bookings expose the store through the repository ports.
func (s *Store) Rooms() *RoomRepository       { return &RoomRepository{s: s} }
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

func (s *Store) room(id uuid.UUID) (domain.Room, bool) {
	rec, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, false
	}
	return domain.Room{
		ID:       rec.id,
		Number:   rec.number,
		Category: s.categories[rec.categoryID],
		Active:   rec.active,
	}, true
}

func (s *Store) Snapshot(ctx context.Context, window domain.DateRange) (*domain.InventorySnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &domain.InventorySnapshot{}
	for _, c := range s.categories {
		snap.Categories = append(snap.Categories, c)
	}
	for id, rec := range s.rooms {
		if !rec.active {
			continue
		}
		r, _ := s.room(id)
		snap.Rooms = append(snap.Rooms, r)
	}
	for _, b := range s.bookings {
		if b.Stay.Overlaps(window) {
			snap.Bookings = append(snap.Bookings, b)
		}
	}

	return snap, nil
}

type RoomRepository struct {
	s *Store
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.room(roomID)
	if !ok {
		return nil, domain.NotFoundf("room %s", roomID)
	}
	return &room, nil
}

func (r *RoomRepository) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.RoomCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.categories[categoryID]
	if !ok {
		return nil, domain.NotFoundf("room category %s", categoryID)
	}
	return &c, nil
}

func (r *RoomRepository) ListCategories(ctx context.Context) ([]domain.RoomCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.RoomCategory, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	domain.SortCategories(out)
	return out, nil
}

func (r *RoomRepository) ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.Room, 0, len(r.s.rooms))
	for id, rec := range r.s.rooms {
		if activeOnly && !rec.active {
			continue
		}
		room, _ := r.s.room(id)
		out = append(out, room)
	}
	domain.SortRooms(out)
	return out, nil
}

// UpsertCategory matches on code, like the unique index in Postgres.
func (r *RoomRepository) UpsertCategory(ctx context.Context, category *domain.RoomCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, existing := range r.s.categories {
		if existing.Code == category.Code {
			category.ID = id
			break
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.s.categories[category.ID] = *category
	return nil
}

// UpsertRoom matches on room number. An existing room keeps its active flag.
func (r *RoomRepository) UpsertRoom(ctx context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.categories[room.Category.ID]; !ok {
		return domain.NotFoundf("room category %s", room.Category.ID)
	}

	for id, existing := range r.s.rooms {
		if existing.number == room.Number {
			room.ID = id
			room.Active = existing.active
			break
		}
	}
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	r.s.rooms[room.ID] = roomRecord{id: room.ID, number: room.Number, categoryID: room.Category.ID, active: room.Active}
	return nil
}

func (r *RoomRepository) UpdateCategoryRates(ctx context.Context, categoryID uuid.UUID, weekday, weekend decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.categories[categoryID]
	if !ok {
		return domain.NotFoundf("room category %s", categoryID)
	}
	c.WeekdayRate = weekday
	c.WeekendRate = weekend
	r.s.categories[categoryID] = c
	return nil
}

func (r *RoomRepository) SetRoomActive(ctx context.Context, roomID uuid.UUID, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.rooms[roomID]
	if !ok {
		return domain.NotFoundf("room %s", roomID)
	}
	rec.active = active
	r.s.rooms[roomID] = rec
	return nil
}

type BookingRepository struct {
	s *Store
}

// overlapping must be called with the lock held.
func (r *BookingRepository) overlapping(b *domain.Booking) []domain.Booking {
	var out []domain.Booking
	for _, other := range r.s.bookings {
		if other.ID == b.ID || other.RoomID != b.RoomID || !other.IsActive() {
			continue
		}
		if other.Stay.Overlaps(b.Stay) {
			out = append(out, other)
		}
	}
	return out
}

func (r *BookingRepository) checkExclusion(b *domain.Booking) error {
	if !b.IsActive() {
		return nil
	}
	if conflicts := r.overlapping(b); len(conflicts) > 0 {
		return &domain.ConflictError{RoomID: b.RoomID, Stay: b.Stay, Conflicts: conflicts}
	}
	return nil
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[booking.RoomID]; !ok {
		return domain.NotFoundf("room %s", booking.RoomID)
	}
	if _, ok := r.s.bookings[booking.ID]; ok {
		return domain.Validationf("booking %s already exists", booking.ID)
	}
	if err := r.checkExclusion(booking); err != nil {
		return err
	}

	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[bookingID]
	if !ok {
		return nil, domain.NotFoundf("booking %s", bookingID)
	}
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[booking.ID]; !ok {
		return domain.NotFoundf("booking %s", booking.ID)
	}
	if _, ok := r.s.rooms[booking.RoomID]; !ok {
		return domain.NotFoundf("room %s", booking.RoomID)
	}
	if err := r.checkExclusion(booking); err != nil {
		return err
	}

	r.s.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[bookingID]; !ok {
		return domain.NotFoundf("booking %s", bookingID)
	}
	delete(r.s.bookings, bookingID)
	return nil
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, stay domain.DateRange, statuses []domain.BookingStatus, exclude *uuid.UUID) ([]domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[domain.BookingStatus]bool, len(statuses))
	for _, st := range statuses {
		wanted[st] = true
	}

	var out []domain.Booking
	for _, b := range r.s.bookings {
		if b.RoomID != roomID || !b.Stay.Overlaps(stay) {
			continue
		}
		if len(wanted) > 0 && !wanted[b.Status] {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		out = append(out, b)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Stay.CheckIn.Before(out[j].Stay.CheckIn)
	})
	return out, nil
}
