package response

import (
	"time"

	"movie-booking/internal/usecase/commands"
	"movie-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	BookingID  int64     `json:"booking_id"`
	MovieID    int64     `json:"movie_id"`
	TimeslotID int64     `json:"timeslot_id"`
	SeatID     int64     `json:"seat_id"`
	Date       string    `json:"date"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

type UserBookingResponse struct {
	BookingID    int64   `json:"booking_id"`
	Date         string  `json:"date"`
	UserID       int64   `json:"user_id"`
	Email        string  `json:"email"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Title        string  `json:"title"`
	MovieID      int64   `json:"movie_id"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	SeatNumber   int32   `json:"seat_number"`
}

type UserBookingsResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
}

func FromBookingResult(r *commands.BookingResult) (BookingResponse, error) {
	var out BookingResponse
	if err := copier.Copy(&out, r); err != nil {
		return BookingResponse{}, err
	}
	return out, nil
}

func FromUserBookingViews(views []queries.UserBookingView) (UserBookingsResponse, error) {
	out := UserBookingsResponse{Bookings: make([]UserBookingResponse, 0, len(views))}
	if err := copier.Copy(&out.Bookings, &views); err != nil {
		return UserBookingsResponse{}, err
	}
	return out, nil
}
