package booking

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidID    = errors.New("ids must be positive")
	ErrMissingEmail = errors.New("email is required")
)

// Date is a calendar day without time-of-day or zone.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time   { return d.t }
func (d Date) String() string    { return d.t.Format(DateLayout) }
func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// SeatRef identifies one seat of one screening.
type SeatRef struct {
	MovieID    int64
	TimeslotID int64
	SeatID     int64
}

func NewSeatRef(movieID, timeslotID, seatID int64) (SeatRef, error) {
	if movieID <= 0 || timeslotID <= 0 || seatID <= 0 {
		return SeatRef{}, ErrInvalidID
	}
	return SeatRef{MovieID: movieID, TimeslotID: timeslotID, SeatID: seatID}, nil
}
