package repository

import (
	"context"

	"movie-booking/internal/domain/booking"
	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
)

type SeatWriteQueries interface {
	MarkSeatBooked(ctx context.Context, db pgsql.DBTX, arg pgsql.SeatKey) (int64, error)
	SeatExists(ctx context.Context, db pgsql.DBTX, arg pgsql.SeatKey) (bool, error)
	ReleaseSeat(ctx context.Context, db pgsql.DBTX, seatID int64) (int64, error)
}

type SeatRepository struct {
	queries SeatWriteQueries
}

func NewSeatRepository(queries SeatWriteQueries) *SeatRepository {
	return &SeatRepository{queries: queries}
}

func (r *SeatRepository) Reserve(ctx context.Context, db pgsql.DBTX, ref booking.SeatRef) (bool, error) {
	n, err := r.queries.MarkSeatBooked(ctx, db, seatKey(ref))
	if err != nil {
		return false, infra.Classify("failed to reserve seat", err)
	}
	return n == 1, nil
}

func (r *SeatRepository) Exists(ctx context.Context, db pgsql.DBTX, ref booking.SeatRef) (bool, error) {
	ok, err := r.queries.SeatExists(ctx, db, seatKey(ref))
	if err != nil {
		return false, infra.Classify("failed to look up seat", err)
	}
	return ok, nil
}

// Release is a no-op while another booking still references the seat.
func (r *SeatRepository) Release(ctx context.Context, db pgsql.DBTX, seatID int64) error {
	if _, err := r.queries.ReleaseSeat(ctx, db, seatID); err != nil {
		return infra.Classify("failed to release seat", err)
	}
	return nil
}

func seatKey(ref booking.SeatRef) pgsql.SeatKey {
	return pgsql.SeatKey{SeatID: ref.SeatID, MovieID: ref.MovieID, TimeslotID: ref.TimeslotID}
}
