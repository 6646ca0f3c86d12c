package booking

import "time"

type EventType string

const (
	EventCreated EventType = "booking.created"
	EventUpdated EventType = "booking.updated"
	EventDeleted EventType = "booking.deleted"
)

type Event struct {
	Type       EventType `json:"type"`
	BookingID  int64     `json:"booking_id"`
	MovieID    int64     `json:"movie_id"`
	TimeslotID int64     `json:"timeslot_id"`
	SeatID     int64     `json:"seat_id"`
	Date       string    `json:"date"`
	UserID     int64     `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(t EventType, b *Booking, at time.Time) Event {
	return Event{
		Type:       t,
		BookingID:  b.id,
		MovieID:    b.seat.MovieID,
		TimeslotID: b.seat.TimeslotID,
		SeatID:     b.seat.SeatID,
		Date:       b.date.String(),
		UserID:     b.userID,
		OccurredAt: at.UTC(),
	}
}
