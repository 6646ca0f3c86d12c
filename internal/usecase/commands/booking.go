package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commandsmock

import (
	"context"
	"log/slog"

	"movie-booking/internal/domain/booking"
	reqdto "movie-booking/internal/handler/dto/request"
	"movie-booking/internal/infra"
	"movie-booking/internal/pkg/clock"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/usecase/shared"
)

var (
	ErrBookingConflict = errs.New("booking already exists")
	ErrSeatNotFound    = errs.New("seat not found")
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidBooking  = errs.New("invalid booking")
	ErrForbidden       = errs.New("forbidden")
)

type BookingCommands interface {
	Create(ctx context.Context, actor Actor, req reqdto.BookingRequest) (*BookingResult, error)
	Edit(ctx context.Context, actor Actor, bookingID int64, req reqdto.BookingRequest) error
	Delete(ctx context.Context, actor Actor, bookingID int64) error
}

type bookingCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

// Create books the seat and inserts the booking in one transaction.
// Concurrent creates for one seat serialize on the seat row; the losers see ErrBookingConflict.
func (c *bookingCommandsImpl) Create(ctx context.Context, actor Actor, req reqdto.BookingRequest) (*BookingResult, error) {
	details, err := req.ToDetails()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}
	if !actor.may(details.UserID) {
		return nil, ErrForbidden
	}

	b, err := booking.New(details)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	var created *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := reserveSeat(ctx, tx, b.Seat()); err != nil {
			return err
		}

		var createErr error
		created, createErr = tx.Bookings().Create(ctx, tx.DB(), b)
		if createErr != nil {
			return translateWriteErr(createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.publish(ctx, booking.EventCreated, created)
	return toBookingResult(created), nil
}

// Edit overwrites every field of the booking. When the seat changes the new
// seat is booked first and the old one is released once nothing references it.
func (c *bookingCommandsImpl) Edit(ctx context.Context, actor Actor, bookingID int64, req reqdto.BookingRequest) error {
	details, err := req.ToDetails()
	if err != nil {
		return errs.Mark(err, ErrInvalidBooking)
	}

	var updated *booking.Booking
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !actor.may(current.UserID()) || !actor.may(details.UserID) {
			return ErrForbidden
		}

		oldSeat := current.Seat()
		seatChanged, err := current.Replace(details)
		if err != nil {
			return errs.Mark(err, ErrInvalidBooking)
		}

		if seatChanged {
			if err := reserveSeat(ctx, tx, current.Seat()); err != nil {
				return err
			}
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), current); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return translateWriteErr(err)
		}

		if seatChanged {
			if err := tx.Seats().Release(ctx, tx.DB(), oldSeat.SeatID); err != nil {
				return err
			}
		}

		updated = current
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, booking.EventUpdated, updated)
	return nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, actor Actor, bookingID int64) error {
	var deleted *booking.Booking
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := lockBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if !actor.may(current.UserID()) {
			return ErrForbidden
		}

		if err := tx.Bookings().Delete(ctx, tx.DB(), bookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		if err := tx.Seats().Release(ctx, tx.DB(), current.Seat().SeatID); err != nil {
			return err
		}

		deleted = current
		return nil
	})
	if err != nil {
		return err
	}

	c.publish(ctx, booking.EventDeleted, deleted)
	return nil
}

func (c *bookingCommandsImpl) publish(ctx context.Context, t booking.EventType, b *booking.Booking) {
	ev := booking.NewEvent(t, b, c.clock.Now())
	if err := c.publisher.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish booking event",
			"type", string(t),
			"booking_id", b.ID(),
			"error", err.Error())
	}
}

func lockBooking(ctx context.Context, tx shared.Tx, bookingID int64) (*booking.Booking, error) {
	b, err := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}

func reserveSeat(ctx context.Context, tx shared.Tx, ref booking.SeatRef) error {
	ok, err := tx.Seats().Reserve(ctx, tx.DB(), ref)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	exists, err := tx.Seats().Exists(ctx, tx.DB(), ref)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSeatNotFound
	}
	return ErrBookingConflict
}

func translateWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrBookingConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated), infra.IsKind(err, infra.KindConstraintViolated):
		return errs.Mark(err, ErrInvalidBooking)
	default:
		return err
	}
}

func toBookingResult(b *booking.Booking) *BookingResult {
	seat := b.Seat()
	return &BookingResult{
		BookingID:  b.ID(),
		MovieID:    seat.MovieID,
		TimeslotID: seat.TimeslotID,
		SeatID:     seat.SeatID,
		Date:       b.Date().String(),
		UserID:     b.UserID(),
		Email:      b.Email(),
		CreatedAt:  b.CreatedAt(),
	}
}
