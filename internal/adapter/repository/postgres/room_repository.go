package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

const roomSelect = `
	SELECT r.id, r.number, r.active,
		c.id, c.code, c.name, c.weekday_rate, c.weekend_rate, c.display_order
	FROM rooms r
	JOIN room_categories c ON c.id = r.category_id
	`

const categorySelect = `
	SELECT id, code, name, weekday_rate, weekend_rate, display_order
	FROM room_categories
	`

type RoomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, roomID uuid.UUID) (*domain.Room, error) {
	room, err := scanRoom(r.db.QueryRowContext(ctx, roomSelect+`WHERE r.id = $1`, roomID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("room %s", roomID)
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

func (r *RoomRepository) GetCategory(ctx context.Context, categoryID uuid.UUID) (*domain.RoomCategory, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, categorySelect+`WHERE id = $1`, categoryID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("room category %s", categoryID)
		}
		return nil, fmt.Errorf("get room category: %w", err)
	}
	return c, nil
}

func (r *RoomRepository) ListCategories(ctx context.Context) ([]domain.RoomCategory, error) {
	return queryCategories(ctx, r.db)
}

func (r *RoomRepository) ListRooms(ctx context.Context, activeOnly bool) ([]domain.Room, error) {
	return queryRooms(ctx, r.db, activeOnly)
}

// UpsertCategory inserts or updates by code and writes the stored id back.
func (r *RoomRepository) UpsertCategory(ctx context.Context, category *domain.RoomCategory) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}

	query := `
	INSERT INTO room_categories (id, code, name, weekday_rate, weekend_rate, display_order)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (code) DO UPDATE
	SET name = EXCLUDED.name,
		weekday_rate = EXCLUDED.weekday_rate,
		weekend_rate = EXCLUDED.weekend_rate,
		display_order = EXCLUDED.display_order
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		category.ID, category.Code, category.Name,
		category.WeekdayRate, category.WeekendRate, category.DisplayOrder,
	).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("upsert room category %s: %w", category.Code, err)
	}

	return nil
}

// UpsertRoom inserts or re-categorizes by room number. An existing room keeps
// its active flag.
func (r *RoomRepository) UpsertRoom(ctx context.Context, room *domain.Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}

	query := `
	INSERT INTO rooms (id, number, category_id, active)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (number) DO UPDATE
	SET category_id = EXCLUDED.category_id
	RETURNING id, active
	`

	err := r.db.QueryRowContext(ctx, query, room.ID, room.Number, room.Category.ID, room.Active).
		Scan(&room.ID, &room.Active)
	if err != nil {
		return fmt.Errorf("upsert room %s: %w", room.Number, mapPQError(err))
	}

	return nil
}

func (r *RoomRepository) UpdateCategoryRates(ctx context.Context, categoryID uuid.UUID, weekday, weekend decimal.Decimal) error {
	query := `
	UPDATE room_categories
	SET weekday_rate = $1, weekend_rate = $2
	WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, weekday, weekend, categoryID)
	if err != nil {
		return mapPQError(err)
	}

	return expectOneRow(result, domain.NotFoundf("room category %s", categoryID))
}

func (r *RoomRepository) SetRoomActive(ctx context.Context, roomID uuid.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE rooms SET active = $1 WHERE id = $2`, active, roomID)
	if err != nil {
		return err
	}

	return expectOneRow(result, domain.NotFoundf("room %s", roomID))
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryCategories(ctx context.Context, q queryer) ([]domain.RoomCategory, error) {
	rows, err := q.QueryContext(ctx, categorySelect+`ORDER BY display_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list room categories: %w", err)
	}
	defer rows.Close()

	var out []domain.RoomCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}

	return out, rows.Err()
}

func queryRooms(ctx context.Context, q queryer, activeOnly bool) ([]domain.Room, error) {
	query := roomSelect
	if activeOnly {
		query += `WHERE r.active `
	}
	query += `ORDER BY r.number`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	domain.SortRooms(out)
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*domain.RoomCategory, error) {
	var c domain.RoomCategory
	if err := s.Scan(&c.ID, &c.Code, &c.Name, &c.WeekdayRate, &c.WeekendRate, &c.DisplayOrder); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanRoom(s scanner) (*domain.Room, error) {
	var room domain.Room
	c := &room.Category
	err := s.Scan(
		&room.ID,
		&room.Number,
		&room.Active,
		&c.ID,
		&c.Code,
		&c.Name,
		&c.WeekdayRate,
		&c.WeekendRate,
		&c.DisplayOrder,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func expectOneRow(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
