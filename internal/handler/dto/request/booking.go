package request

import "movie-booking/internal/domain/booking"

// BookingRequest is shared by add-booking and edit-booking; every field is overwritten on edit.
type BookingRequest struct {
	MovieID    int64  `json:"movie_id" binding:"required,gt=0"`
	TimeslotID int64  `json:"timeslot_id" binding:"required,gt=0"`
	SeatID     int64  `json:"seat_id" binding:"required,gt=0"`
	Date       string `json:"date" binding:"required,isodate"`
	UserID     int64  `json:"user_id" binding:"required,gt=0"`
	Email      string `json:"email" binding:"required"`
}

func (r *BookingRequest) ToDetails() (booking.Details, error) {
	seat, err := booking.NewSeatRef(r.MovieID, r.TimeslotID, r.SeatID)
	if err != nil {
		return booking.Details{}, err
	}
	date, err := booking.ParseDate(r.Date)
	if err != nil {
		return booking.Details{}, err
	}
	return booking.Details{
		Seat:   seat,
		Date:   date,
		UserID: r.UserID,
		Email:  r.Email,
	}, nil
}
