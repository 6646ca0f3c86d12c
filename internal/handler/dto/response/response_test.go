//go:build unit

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"movie-booking/internal/handler/dto/response"
	"movie-booking/internal/usecase/commands"
	"movie-booking/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResponseShape(t *testing.T) {
	rejected, err := json.Marshal(response.LoginRejected())
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":false,"token":null}`, string(rejected))

	ok, err := json.Marshal(response.LoginSucceeded(7, "tok"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"auth":true,"token":"tok","user_id":7}`, string(ok))
}

func TestFromSeatViewsKeepsOrder(t *testing.T) {
	got, err := response.FromSeatViews([]queries.SeatView{
		{SeatID: 10, SeatNumber: 1, BookingStatus: 1},
		{SeatID: 20, SeatNumber: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []response.SeatResponse{
		{SeatID: 10, SeatNumber: 1, BookingStatus: 1},
		{SeatID: 20, SeatNumber: 2},
	}, got)
}

func TestFromMovieDetails(t *testing.T) {
	thumb := "a.png"
	got, err := response.FromMovieDetails(&queries.MovieDetailsView{
		Movie: queries.MovieView{MovieID: 1, Title: "Alien", ThumbnailURL: &thumb},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.Movie.MovieID)
	require.NotNil(t, got.Movie.ThumbnailURL)
	assert.Equal(t, "a.png", *got.Movie.ThumbnailURL)
	assert.Equal(t, []string{}, got.AvailableDates)
}

func TestFromBookingResult(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	got, err := response.FromBookingResult(&commands.BookingResult{
		BookingID: 42, MovieID: 1, TimeslotID: 2, SeatID: 3,
		Date: "2024-01-01", UserID: 7, Email: "a@x.com", CreatedAt: at,
	})
	require.NoError(t, err)
	assert.Equal(t, response.BookingResponse{
		BookingID: 42, MovieID: 1, TimeslotID: 2, SeatID: 3,
		Date: "2024-01-01", UserID: 7, Email: "a@x.com", CreatedAt: at,
	}, got)
}

func TestFromUserBookingViewsEmpty(t *testing.T) {
	got, err := response.FromUserBookingViews(nil)
	require.NoError(t, err)

	body, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bookings":[]}`, string(body))
}
