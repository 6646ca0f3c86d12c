//go:build unit

package readstore

import (
	"context"

	"movie-booking/internal/infra/pgsql"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

type MockReadQueries struct {
	mock.Mock
}

func (m *MockReadQueries) FindUserByEmail(ctx context.Context, db pgsql.DBTX, email string) (pgsql.User, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(pgsql.User), args.Error(1)
}

func (m *MockReadQueries) ListMovies(ctx context.Context, db pgsql.DBTX) ([]pgsql.Movie, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]pgsql.Movie), args.Error(1)
}

func (m *MockReadQueries) FindMovieByID(ctx context.Context, db pgsql.DBTX, movieID int64) (pgsql.Movie, error) {
	args := m.Called(ctx, db, movieID)
	return args.Get(0).(pgsql.Movie), args.Error(1)
}

func (m *MockReadQueries) ListMovieDates(ctx context.Context, db pgsql.DBTX, movieID int64) ([]pgtype.Date, error) {
	args := m.Called(ctx, db, movieID)
	return args.Get(0).([]pgtype.Date), args.Error(1)
}

func (m *MockReadQueries) ListTimeslots(ctx context.Context, db pgsql.DBTX, arg pgsql.ListTimeslotsParams) ([]pgsql.Timeslot, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.Timeslot), args.Error(1)
}

func (m *MockReadQueries) ListSeats(ctx context.Context, db pgsql.DBTX, arg pgsql.ListSeatsParams) ([]pgsql.Seat, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]pgsql.Seat), args.Error(1)
}

func (m *MockReadQueries) ServerVersion(ctx context.Context, db pgsql.DBTX) (string, error) {
	args := m.Called(ctx, db)
	return args.String(0), args.Error(1)
}

func (m *MockReadQueries) ListBookingsByUser(ctx context.Context, db pgsql.DBTX, userID int64) ([]pgsql.UserBookingRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]pgsql.UserBookingRow), args.Error(1)
}
