package repository

import (
	"context"

	"movie-booking/internal/domain/booking"
	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.CreateBookingParams) (pgsql.Booking, error)
	GetBookingForUpdate(ctx context.Context, db pgsql.DBTX, bookingID int64) (pgsql.Booking, error)
	UpdateBooking(ctx context.Context, db pgsql.DBTX, arg pgsql.UpdateBookingParams) (int64, error)
	DeleteBooking(ctx context.Context, db pgsql.DBTX, bookingID int64) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, db pgsql.DBTX, b *booking.Booking) (*booking.Booking, error) {
	seat := b.Seat()
	row, err := r.queries.CreateBooking(ctx, db, pgsql.CreateBookingParams{
		MovieID:    seat.MovieID,
		TimeslotID: seat.TimeslotID,
		SeatID:     seat.SeatID,
		Date:       pgconv.DateToPgtype(b.Date().Time()),
		UserID:     b.UserID(),
		Email:      b.Email(),
	})
	if err != nil {
		return nil, infra.Classify("failed to create booking", err)
	}
	return toDomain(row), nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, db pgsql.DBTX, bookingID int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, db, bookingID)
	if err != nil {
		return nil, infra.Classify("failed to lock booking", err)
	}
	return toDomain(row), nil
}

func (r *BookingRepository) Update(ctx context.Context, db pgsql.DBTX, b *booking.Booking) error {
	seat := b.Seat()
	n, err := r.queries.UpdateBooking(ctx, db, pgsql.UpdateBookingParams{
		BookingID:  b.ID(),
		MovieID:    seat.MovieID,
		TimeslotID: seat.TimeslotID,
		SeatID:     seat.SeatID,
		Date:       pgconv.DateToPgtype(b.Date().Time()),
		UserID:     b.UserID(),
		Email:      b.Email(),
	})
	if err != nil {
		return infra.Classify("failed to update booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(nil, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, db pgsql.DBTX, bookingID int64) error {
	n, err := r.queries.DeleteBooking(ctx, db, bookingID)
	if err != nil {
		return infra.Classify("failed to delete booking", err)
	}
	if n == 0 {
		return infra.WrapRepoErr(nil, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func toDomain(row pgsql.Booking) *booking.Booking {
	return booking.Reconstruct(row.BookingID, booking.Details{
		Seat: booking.SeatRef{
			MovieID:    row.MovieID,
			TimeslotID: row.TimeslotID,
			SeatID:     row.SeatID,
		},
		Date:   dateOf(row.Date),
		UserID: row.UserID,
		Email:  row.Email,
	}, pgconv.TimeFromPgtype(row.CreatedAt))
}

func dateOf(d pgtype.Date) booking.Date {
	if !d.Valid {
		return booking.Date{}
	}
	return booking.DateOf(d.Time)
}
