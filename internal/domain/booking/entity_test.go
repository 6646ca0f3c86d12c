//go:build unit

package booking_test

import (
	"testing"
	"time"

	"movie-booking/internal/domain/booking"
	"movie-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(booking.Date{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		date, _ := booking.ParseDate("2024-01-01")
		want := booking.Details{
			Seat:   booking.SeatRef{MovieID: 1, TimeslotID: 1, SeatID: 5},
			Date:   date,
			UserID: 7,
			Email:  "a@x.com",
		}

		if diff := cmp.Diff(want, actual.Details(), cmpOpts...); diff != "" {
			t.Errorf("Booking mismatch (-want +got):\n%s", diff)
		}
		assert.Zero(t, actual.ID())
		assert.True(t, actual.OwnedBy(7))
		assert.False(t, actual.OwnedBy(8))
	})

	t.Run("ID検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "movie_id 0 NG", mutate: func(b *builder.BookingBuilder) { b.MovieID = 0 }, errIs: booking.ErrInvalidID},
			{name: "timeslot_id 負数 NG", mutate: func(b *builder.BookingBuilder) { b.TimeslotID = -1 }, errIs: booking.ErrInvalidID},
			{name: "seat_id 0 NG", mutate: func(b *builder.BookingBuilder) { b.SeatID = 0 }, errIs: booking.ErrInvalidID},
			{name: "user_id 0 NG", mutate: func(b *builder.BookingBuilder) { b.UserID = 0 }, errIs: booking.ErrInvalidID},
			{name: "全て正の値 OK", mutate: func(b *builder.BookingBuilder) { b.SeatID = 42 }},
		})
	})

	t.Run("日付検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "YYYY-MM-DD OK", mutate: func(b *builder.BookingBuilder) { b.Date = "2024-12-31" }},
			{name: "ISO タイムスタンプ NG", mutate: func(b *builder.BookingBuilder) { b.Date = "2024-01-01T00:00:00.000Z" }, errIs: booking.ErrInvalidDate},
			{name: "存在しない日付 NG", mutate: func(b *builder.BookingBuilder) { b.Date = "2024-02-30" }, errIs: booking.ErrInvalidDate},
			{name: "空文字 NG", mutate: func(b *builder.BookingBuilder) { b.Date = "" }, errIs: booking.ErrInvalidDate},
		})
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "空白のみ NG", mutate: func(b *builder.BookingBuilder) { b.Email = "   " }, errIs: booking.ErrMissingEmail},
			{name: "空文字 NG", mutate: func(b *builder.BookingBuilder) { b.Email = "" }, errIs: booking.ErrMissingEmail},
		})
	})
}

func TestBookingReplace(t *testing.T) {
	t.Run("同じ座席なら seatChanged=false", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildPersisted()
		d, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Email = "b@x.com" }).BuildDetails()
		require.NoError(t, err)

		changed, err := b.Replace(d)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "b@x.com", b.Email())
	})

	t.Run("座席変更で seatChanged=true", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildPersisted()
		d, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.SeatID = 6 }).BuildDetails()
		require.NoError(t, err)

		changed, err := b.Replace(d)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(6), b.Seat().SeatID)
	})

	t.Run("不正な値では元の状態を保持", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildPersisted()
		before := b.Details()

		_, err := b.Replace(booking.Details{Seat: before.Seat, Date: before.Date, UserID: 0, Email: "a@x.com"})
		require.ErrorIs(t, err, booking.ErrInvalidID)

		if diff := cmp.Diff(before, b.Details(), cmpOpts...); diff != "" {
			t.Errorf("Booking mutated on failure (-want +got):\n%s", diff)
		}
	})
}

func TestNewEvent(t *testing.T) {
	b := builder.NewBookingBuilder().BuildPersisted()
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("JST", 9*60*60))

	got := booking.NewEvent(booking.EventCreated, b, at)

	want := booking.Event{
		Type:       booking.EventCreated,
		BookingID:  b.ID(),
		MovieID:    1,
		TimeslotID: 1,
		SeatID:     5,
		Date:       "2024-01-01",
		UserID:     7,
		OccurredAt: at.UTC(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Event mismatch (-want +got):\n%s", diff)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
