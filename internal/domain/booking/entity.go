package booking

import (
	"strings"
	"time"
)

type Booking struct {
	id        int64
	seat      SeatRef
	date      Date
	userID    int64
	email     string
	createdAt time.Time
}

type Details struct {
	Seat   SeatRef
	Date   Date
	UserID int64
	Email  string
}

func (d Details) validate() (Details, error) {
	if d.Seat.MovieID <= 0 || d.Seat.TimeslotID <= 0 || d.Seat.SeatID <= 0 || d.UserID <= 0 {
		return Details{}, ErrInvalidID
	}
	if d.Date.IsZero() {
		return Details{}, ErrInvalidDate
	}
	d.Email = strings.TrimSpace(d.Email)
	if d.Email == "" {
		return Details{}, ErrMissingEmail
	}
	return d, nil
}

func New(d Details) (*Booking, error) {
	d, err := d.validate()
	if err != nil {
		return nil, err
	}
	return &Booking{
		seat:   d.Seat,
		date:   d.Date,
		userID: d.UserID,
		email:  d.Email,
	}, nil
}

// Reconstruct rebuilds a persisted booking without re-validating it.
func Reconstruct(id int64, d Details, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		seat:      d.Seat,
		date:      d.Date,
		userID:    d.UserID,
		email:     d.Email,
		createdAt: createdAt,
	}
}

// Replace overwrites every mutable field and reports whether the seat changed.
func (b *Booking) Replace(d Details) (seatChanged bool, err error) {
	d, err = d.validate()
	if err != nil {
		return false, err
	}
	seatChanged = b.seat != d.Seat
	b.seat = d.Seat
	b.date = d.Date
	b.userID = d.UserID
	b.email = d.Email
	return seatChanged, nil
}

func (b *Booking) OwnedBy(userID int64) bool {
	return b.userID == userID
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Seat() SeatRef        { return b.seat }
func (b *Booking) Date() Date           { return b.date }
func (b *Booking) UserID() int64        { return b.userID }
func (b *Booking) Email() string        { return b.email }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) Details() Details {
	return Details{Seat: b.seat, Date: b.date, UserID: b.userID, Email: b.email}
}
