package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const serverVersion = `SELECT version()`

func (q *Queries) ServerVersion(ctx context.Context, db DBTX) (string, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	var v string
	err := db.QueryRow(ctx, serverVersion).Scan(&v)
	return v, err
}

const movieColumns = `movie_id, title, description, thumbnail_url, duration_minutes, genre, release_date`

const listMovies = `SELECT ` + movieColumns + ` FROM movies ORDER BY movie_id`

func (q *Queries) ListMovies(ctx context.Context, db DBTX) ([]Movie, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, listMovies)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Movie])
}

const findMovieByID = `SELECT ` + movieColumns + ` FROM movies WHERE movie_id = $1`

func (q *Queries) FindMovieByID(ctx context.Context, db DBTX, movieID int64) (Movie, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, findMovieByID, movieID)
	if err != nil {
		return Movie{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Movie])
}

const listMovieDates = `SELECT DISTINCT date FROM timeslots WHERE movie_id = $1 ORDER BY date`

func (q *Queries) ListMovieDates(ctx context.Context, db DBTX, movieID int64) ([]pgtype.Date, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, listMovieDates, movieID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[pgtype.Date])
}

const listTimeslots = `SELECT DISTINCT timeslot_id, start_time, end_time
FROM timeslots
WHERE movie_id = $1 AND date = $2
ORDER BY start_time, timeslot_id`

type ListTimeslotsParams struct {
	MovieID int64
	Date    pgtype.Date
}

func (q *Queries) ListTimeslots(ctx context.Context, db DBTX, arg ListTimeslotsParams) ([]Timeslot, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, listTimeslots, arg.MovieID, arg.Date)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Timeslot])
}

const listSeats = `SELECT seat_id, seat_number, booking_status
FROM seats
WHERE movie_id = $1 AND timeslot_id = $2
ORDER BY seat_number ASC`

type ListSeatsParams struct {
	MovieID    int64
	TimeslotID int64
}

func (q *Queries) ListSeats(ctx context.Context, db DBTX, arg ListSeatsParams) ([]Seat, error) {
	ctx, cancel := q.withTimeout(ctx)
	defer cancel()

	rows, err := db.Query(ctx, listSeats, arg.MovieID, arg.TimeslotID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Seat])
}
