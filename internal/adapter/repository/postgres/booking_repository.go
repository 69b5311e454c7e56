package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

const bookingColumns = `id, room_id, guest_name, contact, check_in, check_out,
	total_amount, paid_amount, status, notes, created_by, created_at, updated_at`

const (
	codeExclusionViolation  = "23P01"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (id, room_id, guest_name, contact, check_in, check_out,
		total_amount, paid_amount, status, payment_status, notes, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.RoomID,
		booking.GuestName,
		booking.Contact,
		booking.Stay.CheckIn.Format(domain.DateLayout),
		booking.Stay.CheckOut.Format(domain.DateLayout),
		booking.TotalAmount,
		booking.PaidAmount,
		booking.Status,
		booking.PaymentStatus(),
		booking.Notes,
		nullUUID(booking.CreatedBy),
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return mapBookingError(err, booking)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundf("booking %s", bookingID)
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return b, nil
}

// Update writes every mutable column; payment_status is recomputed from the amounts.
func (r *BookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
	UPDATE bookings
	SET room_id = $1,
		check_in = $2,
		check_out = $3,
		total_amount = $4,
		paid_amount = $5,
		status = $6,
		payment_status = $7,
		notes = $8,
		updated_at = $9
	WHERE id = $10
	`

	result, err := r.db.ExecContext(ctx, query,
		booking.RoomID,
		booking.Stay.CheckIn.Format(domain.DateLayout),
		booking.Stay.CheckOut.Format(domain.DateLayout),
		booking.TotalAmount,
		booking.PaidAmount,
		booking.Status,
		booking.PaymentStatus(),
		booking.Notes,
		booking.UpdatedAt,
		booking.ID,
	)
	if err != nil {
		return mapBookingError(err, booking)
	}

	return expectOneRow(result, domain.NotFoundf("booking %s", booking.ID))
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		return err
	}

	return expectOneRow(result, domain.NotFoundf("booking %s", bookingID))
}

func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, stay domain.DateRange, statuses []domain.BookingStatus, exclude *uuid.UUID) ([]domain.Booking, error) {
	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE room_id = $1
		AND check_in < $3
		AND $2 < check_out
		AND status = ANY($4)
		AND ($5::uuid IS NULL OR id <> $5)
	ORDER BY check_in
	`

	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	var excluded uuid.NullUUID
	if exclude != nil {
		excluded = uuid.NullUUID{UUID: *exclude, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, query,
		roomID,
		stay.CheckIn.Format(domain.DateLayout),
		stay.CheckOut.Format(domain.DateLayout),
		pq.Array(names),
		excluded,
	)
	if err != nil {
		return nil, fmt.Errorf("find overlapping bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdBy uuid.NullUUID

	err := s.Scan(
		&b.ID,
		&b.RoomID,
		&b.GuestName,
		&b.Contact,
		&b.Stay.CheckIn,
		&b.Stay.CheckOut,
		&b.TotalAmount,
		&b.PaidAmount,
		&b.Status,
		&b.Notes,
		&createdBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Stay.CheckIn = domain.Day(b.Stay.CheckIn)
	b.Stay.CheckOut = domain.Day(b.Stay.CheckOut)
	if createdBy.Valid {
		b.CreatedBy = createdBy.UUID
	}

	return &b, nil
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

// mapBookingError turns constraint violations into domain errors. The
// exclusion constraint is the last line against double booking when two
// writers slip past the room lock.
func mapBookingError(err error, b *domain.Booking) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeExclusionViolation:
			return &domain.ConflictError{RoomID: b.RoomID, Stay: b.Stay}
		case codeForeignKeyViolation:
			return domain.NotFoundf("room %s", b.RoomID)
		case codeCheckViolation:
			return domain.Validationf("booking violates %s", pqErr.Constraint)
		}
	}
	return fmt.Errorf("write booking %s: %w", b.ID, err)
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeForeignKeyViolation:
			return domain.NotFoundf("%s", pqErr.Detail)
		case codeCheckViolation:
			return domain.Validationf("violates %s", pqErr.Constraint)
		}
	}
	return err
}
