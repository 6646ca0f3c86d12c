//go:build unit

package repository

import (
	"context"

	"movie-booking/internal/infra/pgsql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) CreateUser(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) MarkSeatBooked(ctx context.Context, db pgsql.DBTX, arg pgsql.SeatKey) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) SeatExists(ctx context.Context, db pgsql.DBTX, arg pgsql.SeatKey) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockWriteQueries) ReleaseSeat(ctx context.Context, db pgsql.DBTX, seatID int64) (int64, error) {
	args := m.Called(ctx, db, seatID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) CreateBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateBookingParams) (pgsql.Booking, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgsql.Booking), args.Error(1)
}

func (m *MockWriteQueries) GetBookingForUpdate(ctx context.Context, db pgsql.DBTX, bookingID int64) (pgsql.Booking, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(pgsql.Booking), args.Error(1)
}

func (m *MockWriteQueries) UpdateBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) DeleteBooking(ctx context.Context, db pgsql.DBTX, bookingID int64) (int64, error) {
	args := m.Called(ctx, db, bookingID)
	return args.Get(0).(int64), args.Error(1)
}

// pgsql.DBTX implementation so the mock can be passed as the db argument
func (m *MockWriteQueries) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockWriteQueries) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockWriteQueries) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}
