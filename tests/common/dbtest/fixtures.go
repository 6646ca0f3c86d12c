//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt digest of "password123" at cost 12
const TestPasswordDigest = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email string) int64 {
	t.Helper()

	ctx := context.Background()
	var userID int64
	err := db.QueryRow(ctx,
		`INSERT INTO users (email, password) VALUES ($1, $2)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING user_id`,
		email, TestPasswordDigest).Scan(&userID)
	require.NoError(t, err)
	return userID
}

type Screening struct {
	MovieID    int64
	TimeslotID int64
	Date       string
	SeatIDs    []int64 // ascending by seat number
}

// CreateTestScreening inserts one movie, one timeslot and seats numbered 1..seatCount.
func CreateTestScreening(t *testing.T, db DBLike, title, date, start, end string, seatCount int) Screening {
	t.Helper()

	ctx := context.Background()
	var movieID int64
	err := db.QueryRow(ctx,
		`INSERT INTO movies (title, description, thumbnail_url, duration_minutes, genre, release_date)
		 VALUES ($1, 'test movie', 'https://example.com/thumb.jpg', 120, 'Drama', '2020-01-01')
		 RETURNING movie_id`, title).Scan(&movieID)
	require.NoError(t, err)

	return Screening{
		MovieID:    movieID,
		TimeslotID: 0,
		Date:       date,
	}.withTimeslot(t, db, start, end, seatCount)
}

// AddTimeslot adds another timeslot (with its own seats) to an existing movie.
func AddTimeslot(t *testing.T, db DBLike, movieID int64, date, start, end string, seatCount int) Screening {
	t.Helper()
	return Screening{MovieID: movieID, Date: date}.withTimeslot(t, db, start, end, seatCount)
}

func (s Screening) withTimeslot(t *testing.T, db DBLike, start, end string, seatCount int) Screening {
	t.Helper()

	ctx := context.Background()
	err := db.QueryRow(ctx,
		`INSERT INTO timeslots (movie_id, date, start_time, end_time) VALUES ($1, $2, $3, $4) RETURNING timeslot_id`,
		s.MovieID, s.Date, start, end).Scan(&s.TimeslotID)
	require.NoError(t, err)

	s.SeatIDs = nil
	for n := 1; n <= seatCount; n++ {
		var seatID int64
		err := db.QueryRow(ctx,
			`INSERT INTO seats (movie_id, timeslot_id, seat_number) VALUES ($1, $2, $3) RETURNING seat_id`,
			s.MovieID, s.TimeslotID, n).Scan(&seatID)
		require.NoError(t, err)
		s.SeatIDs = append(s.SeatIDs, seatID)
	}
	return s
}

func SeatStatus(t *testing.T, db DBLike, seatID int64) int16 {
	t.Helper()

	var status int16
	err := db.QueryRow(context.Background(), `SELECT booking_status FROM seats WHERE seat_id = $1`, seatID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountBookings(t *testing.T, db DBLike, seatID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM bookings WHERE seat_id = $1`, seatID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
