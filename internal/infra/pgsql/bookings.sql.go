package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `booking_id, movie_id, timeslot_id, seat_id, date, user_id, email, created_at`

const createBooking = `INSERT INTO bookings (movie_id, timeslot_id, seat_id, date, user_id, email)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + bookingColumns

type CreateBookingParams struct {
	MovieID    int64
	TimeslotID int64
	SeatID     int64
	Date       pgtype.Date
	UserID     int64
	Email      string
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) (Booking, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, createBooking,
		arg.MovieID, arg.TimeslotID, arg.SeatID, arg.Date, arg.UserID, arg.Email)
	if err != nil {
		return Booking{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Booking])
}

const getBookingForUpdate = `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_id = $1 FOR UPDATE`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, bookingID int64) (Booking, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, getBookingForUpdate, bookingID)
	if err != nil {
		return Booking{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Booking])
}

const updateBooking = `UPDATE bookings
SET movie_id = $2, timeslot_id = $3, seat_id = $4, date = $5, user_id = $6, email = $7
WHERE booking_id = $1`

type UpdateBookingParams struct {
	BookingID  int64
	MovieID    int64
	TimeslotID int64
	SeatID     int64
	Date       pgtype.Date
	UserID     int64
	Email      string
}

func (q *Queries) UpdateBooking(ctx context.Context, db DBTX, arg UpdateBookingParams) (int64, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	tag, err := db.Exec(ctx, updateBooking,
		arg.BookingID, arg.MovieID, arg.TimeslotID, arg.SeatID, arg.Date, arg.UserID, arg.Email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteBooking = `DELETE FROM bookings WHERE booking_id = $1`

func (q *Queries) DeleteBooking(ctx context.Context, db DBTX, bookingID int64) (int64, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	tag, err := db.Exec(ctx, deleteBooking, bookingID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listBookingsByUser = `SELECT
	b.booking_id,
	b.date,
	b.user_id,
	b.email,
	m.thumbnail_url,
	m.title,
	m.movie_id,
	t.start_time,
	t.end_time,
	s.seat_number
FROM bookings b
JOIN movies m ON m.movie_id = b.movie_id
JOIN timeslots t ON t.timeslot_id = b.timeslot_id
JOIN seats s ON s.seat_id = b.seat_id
WHERE b.user_id = $1
ORDER BY b.date, t.start_time, b.booking_id`

func (q *Queries) ListBookingsByUser(ctx context.Context, db DBTX, userID int64) ([]UserBookingRow, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, listBookingsByUser, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UserBookingRow])
}
