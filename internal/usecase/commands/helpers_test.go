//go:build unit

package commands_test

import (
	"context"

	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/usecase/shared"
	sharedmock "movie-booking/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	users    *sharedmock.MockUserRepository
	bookings *sharedmock.MockBookingRepository
	seats    *sharedmock.MockSeatRepository
}

// newTxMocks wires a UnitOfWork whose Within and WithDB run the callback directly.
func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		seats:    sharedmock.NewMockSeatRepository(ctrl),
	}
	m.tx.EXPECT().DB().Return(nil).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Seats().Return(m.seats).AnyTimes()

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.uow.EXPECT().WithDB(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, pgsql.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
	return m
}
