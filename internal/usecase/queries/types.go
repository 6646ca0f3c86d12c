package queries

// MovieView is a movie row as listed to clients; nullable columns stay nil.
type MovieView struct {
	MovieID         int64   `json:"movie_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	ThumbnailURL    *string `json:"thumbnail_url"`
	DurationMinutes *int32  `json:"duration_minutes"`
	Genre           *string `json:"genre"`
	ReleaseDate     *string `json:"release_date"`
}

type MovieDetailsView struct {
	Movie MovieView
	// YYYY-MM-DD, ascending and distinct
	AvailableDates []string
}

type TimeslotView struct {
	TimeslotID int64  `json:"timeslot_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type SeatView struct {
	SeatID        int64 `json:"seat_id"`
	SeatNumber    int32 `json:"seat_number"`
	BookingStatus int16 `json:"booking_status"`
}

// UserBookingView is the denormalized booking row shown on a user's page.
type UserBookingView struct {
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

// UserCredentialView carries the stored digest for login; never serialized.
type UserCredentialView struct {
	UserID         int64
	Email          string
	PasswordDigest string `json:"-"`
}
