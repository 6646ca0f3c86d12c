//go:build unit

package readstore

import (
	"context"
	"testing"

	"movie-booking/internal/infra"
	"movie-booking/internal/infra/pgsql"
	"movie-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingListByUser(t *testing.T) {
	t.Run("denormalized projection", func(t *testing.T) {
		mockQueries := new(MockReadQueries)
		mockQueries.On("ListBookingsByUser", mock.Anything, mock.Anything, int64(7)).Return([]pgsql.UserBookingRow{{
			BookingID:    1,
			Date:         day("2024-01-01"),
			UserID:       7,
			Email:        "a@x.com",
			ThumbnailURL: pgtype.Text{String: "a.png", Valid: true},
			Title:        "Alien",
			MovieID:      1,
			StartTime:    hms(18, 30, 0),
			EndTime:      hms(20, 27, 0),
			SeatNumber:   5,
		}}, nil)

		got, err := NewBookingReadStore(mockQueries).ListByUser(context.Background(), nil, 7)
		require.NoError(t, err)

		thumb := "a.png"
		want := []queries.UserBookingView{{
			BookingID:    1,
			Date:         "2024-01-01",
			UserID:       7,
			Email:        "a@x.com",
			ThumbnailURL: &thumb,
			Title:        "Alien",
			MovieID:      1,
			StartTime:    "18:30:00",
			EndTime:      "20:27:00",
			SeatNumber:   5,
		}}
		assert.Equal(t, want, got)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockReadQueries)
		mockQueries.On("ListBookingsByUser", mock.Anything, mock.Anything, int64(7)).Return([]pgsql.UserBookingRow(nil), assert.AnError)

		_, err := NewBookingReadStore(mockQueries).ListByUser(context.Background(), nil, 7)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
