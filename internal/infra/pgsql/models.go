package pgsql

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	UserID   int64  `db:"user_id"`
	Email    string `db:"email"`
	Password string `db:"password"`
}

type Movie struct {
	MovieID         int64       `db:"movie_id"`
	Title           string      `db:"title"`
	Description     pgtype.Text `db:"description"`
	ThumbnailURL    pgtype.Text `db:"thumbnail_url"`
	DurationMinutes pgtype.Int4 `db:"duration_minutes"`
	Genre           pgtype.Text `db:"genre"`
	ReleaseDate     pgtype.Date `db:"release_date"`
}

type Timeslot struct {
	TimeslotID int64       `db:"timeslot_id"`
	StartTime  pgtype.Time `db:"start_time"`
	EndTime    pgtype.Time `db:"end_time"`
}

type Seat struct {
	SeatID        int64 `db:"seat_id"`
	SeatNumber    int32 `db:"seat_number"`
	BookingStatus int16 `db:"booking_status"`
}

type Booking struct {
	BookingID  int64              `db:"booking_id"`
	MovieID    int64              `db:"movie_id"`
	TimeslotID int64              `db:"timeslot_id"`
	SeatID     int64              `db:"seat_id"`
	Date       pgtype.Date        `db:"date"`
	UserID     int64              `db:"user_id"`
	Email      string             `db:"email"`
	CreatedAt  pgtype.Timestamptz `db:"created_at"`
}

type UserBookingRow struct {
	BookingID    int64       `db:"booking_id"`
	Date         pgtype.Date `db:"date"`
	UserID       int64       `db:"user_id"`
	Email        string      `db:"email"`
	ThumbnailURL pgtype.Text `db:"thumbnail_url"`
	Title        string      `db:"title"`
	MovieID      int64       `db:"movie_id"`
	StartTime    pgtype.Time `db:"start_time"`
	EndTime      pgtype.Time `db:"end_time"`
	SeatNumber   int32       `db:"seat_number"`
}
