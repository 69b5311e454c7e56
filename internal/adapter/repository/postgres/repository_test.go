package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/hotel_pms/internal/adapter/repository/postgres"
	"github.com/srgjo27/hotel_pms/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookingCols = []string{
	"id", "room_id", "guest_name", "contact", "check_in", "check_out",
	"total_amount", "paid_amount", "status", "notes", "created_by", "created_at", "updated_at",
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func sampleBooking() *domain.Booking {
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:          uuid.New(),
		RoomID:      uuid.New(),
		GuestName:   "Maria Santos",
		Stay:        domain.DateRange{CheckIn: day(2024, 6, 3), CheckOut: day(2024, 6, 5)},
		TotalAmount: decimal.NewFromInt(4000),
		PaidAmount:  decimal.Zero,
		Status:      domain.BookingPencil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)
	b := sampleBooking()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(b.ID, b.RoomID, b.GuestName, "", "2024-06-03", "2024-06-05",
			b.TotalAmount, b.PaidAmount, b.Status, domain.PaymentUnpaid, "", uuid.NullUUID{}, b.CreatedAt, b.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_ExclusionViolation(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)
	b := sampleBooking()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	err := repo.Create(context.Background(), b)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, b.RoomID, conflict.RoomID)
}

func TestBookingRepository_Create_UnknownRoom(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: "23503"})

	err := repo.Create(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	id := uuid.New()
	roomID := uuid.New()
	creator := uuid.New()
	created := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingCols).AddRow(
		id.String(), roomID.String(), "Maria Santos", "0917", day(2024, 6, 6), day(2024, 6, 10),
		"9000.00", "4500.00", "CONFIRMED", "late arrival", creator.String(), created, created,
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).WithArgs(id).WillReturnRows(rows)

	b, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, roomID, b.RoomID)
	assert.Equal(t, 4, b.Nights())
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.Equal(t, domain.PaymentPartial, b.PaymentStatus())
	assert.Equal(t, creator, b.CreatedBy)
	assert.True(t, decimal.NewFromInt(9000).Equal(b.TotalAmount))
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepository_Update_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepository_FindOverlapping(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	roomID := uuid.New()
	exclude := uuid.New()
	stay := domain.DateRange{CheckIn: day(2024, 6, 4), CheckOut: day(2024, 6, 6)}
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(bookingCols).AddRow(
		uuid.New().String(), roomID.String(), "Juan dela Cruz", "", day(2024, 6, 1), day(2024, 6, 5),
		"8000", "0", "PENCIL", "", nil, created, created,
	)

	mock.ExpectQuery(regexp.QuoteMeta("status = ANY($4)")).
		WithArgs(roomID, "2024-06-04", "2024-06-06", sqlmock.AnyArg(), uuid.NullUUID{UUID: exclude, Valid: true}).
		WillReturnRows(rows)

	got, err := repo.FindOverlapping(context.Background(), roomID, stay, domain.ActiveStatuses, &exclude)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Juan dela Cruz", got[0].GuestName)
	assert.Equal(t, uuid.Nil, got[0].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewRoomRepository(db)

	roomID := uuid.New()
	categoryID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "number", "active", "id", "code", "name", "weekday_rate", "weekend_rate", "display_order"}).
		AddRow(roomID.String(), "101", true, categoryID.String(), "STUDIO_A", "Studio A", "2000.00", "2500.00", 10)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.id = $1")).WithArgs(roomID).WillReturnRows(rows)

	room, err := repo.GetByID(context.Background(), roomID)
	require.NoError(t, err)

	assert.Equal(t, "101", room.Number)
	assert.True(t, room.Active)
	assert.Equal(t, "STUDIO_A", room.Category.Code)
	assert.True(t, decimal.NewFromInt(2500).Equal(room.Category.WeekendRate))
}

func TestRoomRepository_ListRoomsOrdersNumbersNumerically(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewRoomRepository(db)

	categoryID := uuid.New().String()
	rows := sqlmock.NewRows([]string{"id", "number", "active", "id", "code", "name", "weekday_rate", "weekend_rate", "display_order"}).
		AddRow(uuid.New().String(), "1001", true, categoryID, "PENTHOUSE", "Penthouse", "5000", "6000", 80).
		AddRow(uuid.New().String(), "201", true, categoryID, "PENTHOUSE", "Penthouse", "5000", "6000", 80)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY r.number")).WillReturnRows(rows)

	rooms, err := repo.ListRooms(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "201", rooms[0].Number)
	assert.Equal(t, "1001", rooms[1].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_UpdateCategoryRates(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewRoomRepository(db)

	id := uuid.New()
	weekday := decimal.NewFromInt(2100)
	weekend := decimal.NewFromInt(2600)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE room_categories")).
		WithArgs(weekday, weekend, id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateCategoryRates(context.Background(), id, weekday, weekend))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE room_categories")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateCategoryRates(context.Background(), uuid.New(), weekday, weekend)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRoomRepository_UpsertCategory(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewRoomRepository(db)

	stored := uuid.New()
	c := &domain.RoomCategory{Code: "KTV", Name: "KTV Room", WeekdayRate: decimal.NewFromInt(1500), WeekendRate: decimal.NewFromInt(2000), DisplayOrder: 90}

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (code) DO UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(stored.String()))

	require.NoError(t, repo.UpsertCategory(context.Background(), c))
	assert.Equal(t, stored, c.ID)
}

func TestSnapshotReader_Snapshot(t *testing.T) {
	db, mock := newMock(t)
	reader := postgres.NewSnapshotReader(db)

	categoryID := uuid.New()
	roomID := uuid.New()
	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM room_categories")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "weekday_rate", "weekend_rate", "display_order"}).
			AddRow(categoryID.String(), "STUDIO_A", "Studio A", "2000", "2500", 10))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE r.active")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "number", "active", "id", "code", "name", "weekday_rate", "weekend_rate", "display_order"}).
			AddRow(roomID.String(), "101", true, categoryID.String(), "STUDIO_A", "Studio A", "2000", "2500", 10))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE check_in < $2 AND $1 < check_out")).
		WithArgs("2024-06-03", "2024-06-17").
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			uuid.New().String(), roomID.String(), "Ana Reyes", "", day(2024, 6, 3), day(2024, 6, 5),
			"4000", "4000", "CONFIRMED", "", nil, created, created,
		))
	mock.ExpectCommit()

	snap, err := reader.Snapshot(context.Background(), domain.DateRange{CheckIn: day(2024, 6, 3), CheckOut: day(2024, 6, 17)})
	require.NoError(t, err)

	assert.Len(t, snap.Categories, 1)
	assert.Len(t, snap.Rooms, 1)
	require.Len(t, snap.Bookings, 1)
	assert.Equal(t, domain.PaymentPaid, snap.Bookings[0].PaymentStatus())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotReader_RollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	reader := postgres.NewSnapshotReader(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM room_categories")).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := reader.Snapshot(context.Background(), domain.DateRange{CheckIn: day(2024, 6, 3), CheckOut: day(2024, 6, 17)})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
