package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/srgjo27/hotel_pms/internal/core/domain"
)

type SnapshotReader struct {
	db *sql.DB
}

func NewSnapshotReader(db *sql.DB) *SnapshotReader {
	return &SnapshotReader{db: db}
}

// Snapshot reads categories, active rooms and the bookings overlapping window in
// one repeatable-read transaction, so a booking committed halfway through is
// either fully visible or not at all.
func (r *SnapshotReader) Snapshot(ctx context.Context, window domain.DateRange) (*domain.InventorySnapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	snap := &domain.InventorySnapshot{}

	if snap.Categories, err = queryCategories(ctx, tx); err != nil {
		return nil, err
	}

	if snap.Rooms, err = queryRooms(ctx, tx, true); err != nil {
		return nil, err
	}

	query := `
	SELECT ` + bookingColumns + `
	FROM bookings
	WHERE check_in < $2 AND $1 < check_out
	ORDER BY room_id, check_in
	`

	rows, err := tx.QueryContext(ctx, query,
		window.CheckIn.Format(domain.DateLayout),
		window.CheckOut.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings in window: %w", err)
	}
	defer rows.Close()

	if snap.Bookings, err = collectBookings(rows); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	return snap, nil
}
