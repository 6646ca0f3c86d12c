package pgsql

import "context"

type SeatKey struct {
	SeatID     int64
	MovieID    int64
	TimeslotID int64
}

// compare-and-set free -> booked; zero rows means taken or absent
const markSeatBooked = `UPDATE seats SET booking_status = 1
WHERE seat_id = $1 AND movie_id = $2 AND timeslot_id = $3 AND booking_status = 0`

func (q *Queries) MarkSeatBooked(ctx context.Context, db DBTX, arg SeatKey) (int64, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	tag, err := db.Exec(ctx, markSeatBooked, arg.SeatID, arg.MovieID, arg.TimeslotID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const seatExists = `SELECT EXISTS (
	SELECT 1 FROM seats WHERE seat_id = $1 AND movie_id = $2 AND timeslot_id = $3
)`

func (q *Queries) SeatExists(ctx context.Context, db DBTX, arg SeatKey) (bool, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	var ok bool
	err := db.QueryRow(ctx, seatExists, arg.SeatID, arg.MovieID, arg.TimeslotID).Scan(&ok)
	return ok, err
}

// frees the seat only once no booking references it
const releaseSeat = `UPDATE seats SET booking_status = 0
WHERE seat_id = $1
  AND booking_status = 1
  AND NOT EXISTS (SELECT 1 FROM bookings WHERE seat_id = $1)`

func (q *Queries) ReleaseSeat(ctx context.Context, db DBTX, seatID int64) (int64, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	tag, err := db.Exec(ctx, releaseSeat, seatID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
