package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/mock_booking.go -package=queriesmock

import (
	"context"

	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/usecase/shared"
)

type BookingQueries interface {
	ListForUser(ctx context.Context, userID int64) ([]UserBookingView, error)
}

type BookingReadStore interface {
	ListByUser(ctx context.Context, db pgsql.DBTX, userID int64) ([]UserBookingView, error)
}

type bookingQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore BookingReadStore
}

func NewBookingQueries(uow shared.UnitOfWork, readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		uow:       uow,
		readStore: readStore,
	}
}

// ListForUser returns every booking owned by userID; an unknown user yields an empty list.
func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID int64) ([]UserBookingView, error) {
	var views []UserBookingView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db pgsql.DBTX) error {
		var err error
		views, err = q.readStore.ListByUser(ctx, db, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []UserBookingView{}
	}
	return views, nil
}
