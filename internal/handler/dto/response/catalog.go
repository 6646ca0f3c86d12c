package response

import (
	"movie-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type MovieResponse struct {
	MovieID         int64   `json:"movie_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	ThumbnailURL    *string `json:"thumbnail_url"`
	DurationMinutes *int32  `json:"duration_minutes"`
	Genre           *string `json:"genre"`
	ReleaseDate     *string `json:"release_date"`
}

type MovieDetailsResponse struct {
	Movie          MovieResponse `json:"movie"`
	AvailableDates []string      `json:"available_dates"`
}

type TimeslotResponse struct {
	TimeslotID int64  `json:"timeslot_id"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type SeatResponse struct {
	SeatID        int64 `json:"seat_id"`
	SeatNumber    int32 `json:"seat_number"`
	BookingStatus int16 `json:"booking_status"`
}

type VersionResponse struct {
	Version string `json:"version"`
}

func FromMovieViews(views []queries.MovieView) ([]MovieResponse, error) {
	out := make([]MovieResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromMovieDetails(v *queries.MovieDetailsView) (MovieDetailsResponse, error) {
	var out MovieDetailsResponse
	if err := copier.Copy(&out.Movie, &v.Movie); err != nil {
		return MovieDetailsResponse{}, err
	}
	out.AvailableDates = v.AvailableDates
	if out.AvailableDates == nil {
		out.AvailableDates = []string{}
	}
	return out, nil
}

func FromTimeslotViews(views []queries.TimeslotView) ([]TimeslotResponse, error) {
	out := make([]TimeslotResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}

func FromSeatViews(views []queries.SeatView) ([]SeatResponse, error) {
	out := make([]SeatResponse, 0, len(views))
	if err := copier.Copy(&out, &views); err != nil {
		return nil, err
	}
	return out, nil
}
