package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/mock_uow.go -package=sharedmock

import (
	"context"

	"movie-booking/internal/domain/booking"
	"movie-booking/internal/domain/user"
	"movie-booking/internal/infra/pgsql"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db pgsql.DBTX) error) error
}

type Tx interface {
	Users() UserRepository
	Bookings() BookingRepository
	Seats() SeatRepository
	DB() pgsql.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, db pgsql.DBTX, u *user.User) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, db pgsql.DBTX, b *booking.Booking) (*booking.Booking, error)
	FindForUpdate(ctx context.Context, db pgsql.DBTX, bookingID int64) (*booking.Booking, error)
	Update(ctx context.Context, db pgsql.DBTX, b *booking.Booking) error
	Delete(ctx context.Context, db pgsql.DBTX, bookingID int64) error
}

type SeatRepository interface {
	// Reserve flips the seat from free to booked; false means it was not free or does not exist.
	Reserve(ctx context.Context, db pgsql.DBTX, ref booking.SeatRef) (bool, error)
	Exists(ctx context.Context, db pgsql.DBTX, ref booking.SeatRef) (bool, error)
	Release(ctx context.Context, db pgsql.DBTX, seatID int64) error
}

// EventPublisher delivers booking events after commit; delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, ev booking.Event) error
}
