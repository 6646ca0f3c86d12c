package readstore

import (
	"context"

	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/pkg/pgconv"
	"movie-booking/internal/usecase/queries"
)

type BookingReadQueries interface {
	ListBookingsByUser(ctx context.Context, db pgsql.DBTX, userID int64) ([]pgsql.UserBookingRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
}

func NewBookingReadStore(queries BookingReadQueries) *BookingReadStore {
	return &BookingReadStore{queries: queries}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, db pgsql.DBTX, userID int64) ([]queries.UserBookingView, error) {
	rows, err := r.queries.ListBookingsByUser(ctx, db, userID)
	if err != nil {
		return nil, infra.Classify("failed to list bookings for user", err)
	}

	views := make([]queries.UserBookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, queries.UserBookingView{
			BookingID:    row.BookingID,
			Date:         pgconv.DateFromPgtype(row.Date),
			UserID:       row.UserID,
			Email:        row.Email,
			ThumbnailURL: pgconv.StringPtrFromPgtype(row.ThumbnailURL),
			Title:        row.Title,
			MovieID:      row.MovieID,
			StartTime:    pgconv.TimeOfDayFromPgtype(row.StartTime),
			EndTime:      pgconv.TimeOfDayFromPgtype(row.EndTime),
			SeatNumber:   row.SeatNumber,
		})
	}
	return views, nil
}
