//go:build unit || e2e

package builder

import (
	"time"

	"movie-booking/internal/domain/booking"
	reqdto "movie-booking/internal/handler/dto/request"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/usecase/commands"
	"movie-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	BookingID  int64
	MovieID    int64
	TimeslotID int64
	SeatID     int64
	Date       string
	UserID     int64
	Email      string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingID:  100,
		MovieID:    1,
		TimeslotID: 1,
		SeatID:     5,
		Date:       "2024-01-01",
		UserID:     7,
		Email:      "a@x.com",
		CreatedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDetails() (booking.Details, error) {
	req := b.BuildRequestDTO()
	return req.ToDetails()
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	d, err := b.BuildDetails()
	if err != nil {
		return nil, err
	}
	return booking.New(d)
}

// BuildPersisted panics on invalid builder values; use it only with valid fields.
func (b *BookingBuilder) BuildPersisted() *booking.Booking {
	d, err := b.BuildDetails()
	if err != nil {
		panic(err)
	}
	return booking.Reconstruct(b.BookingID, d, b.CreatedAt)
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookingRequest {
	return reqdto.BookingRequest{
		MovieID:    b.MovieID,
		TimeslotID: b.TimeslotID,
		SeatID:     b.SeatID,
		Date:       b.Date,
		UserID:     b.UserID,
		Email:      b.Email,
	}
}

func (b *BookingBuilder) BuildInfra() pgsql.Booking {
	day, _ := time.Parse(booking.DateLayout, b.Date)
	return pgsql.Booking{
		BookingID:  b.BookingID,
		MovieID:    b.MovieID,
		TimeslotID: b.TimeslotID,
		SeatID:     b.SeatID,
		Date:       pgtype.Date{Time: day, Valid: true},
		UserID:     b.UserID,
		Email:      b.Email,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildResult() *commands.BookingResult {
	return &commands.BookingResult{
		BookingID:  b.BookingID,
		MovieID:    b.MovieID,
		TimeslotID: b.TimeslotID,
		SeatID:     b.SeatID,
		Date:       b.Date,
		UserID:     b.UserID,
		Email:      b.Email,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildUserBookingView() queries.UserBookingView {
	return queries.UserBookingView{
		BookingID:  b.BookingID,
		Date:       b.Date,
		UserID:     b.UserID,
		Email:      b.Email,
		Title:      "Inception",
		MovieID:    b.MovieID,
		StartTime:  "18:00:00",
		EndTime:    "20:30:00",
		SeatNumber: int32(b.SeatID),
	}
}
