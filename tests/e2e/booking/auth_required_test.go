//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"movie-booking/internal/pkg/config"
	"movie-booking/internal/pkg/jwt"
	"movie-booking/tests/common/builder"
	"movie-booking/tests/common/dbtest"
	"movie-booking/tests/common/httptest"
	"movie-booking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// AUTH_REQUIRE_TOKEN=true の構成
type authRequiredSuite struct {
	e2e.SharedSuite
	screening dbtest.Screening
	ownerID   int64
	otherID   int64
}

func TestAuthRequiredBookingSuite(t *testing.T) {
	t.Parallel()
	s := new(authRequiredSuite)
	s.ConfigOverrides = []func(*config.Config){
		func(c *config.Config) { c.Auth.RequireToken = true },
	}
	suite.Run(t, s)
}

func (s *authRequiredSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	s.screening = dbtest.CreateTestScreening(t, s.DB, "Inception", "2024-01-01", "18:00:00", "20:30:00", 2)
	s.ownerID = dbtest.CreateTestUser(t, s.DB, "owner@x.com")
	s.otherID = dbtest.CreateTestUser(t, s.DB, "other@x.com")
}

func (s *authRequiredSuite) token(userID int64, email string) string {
	t := s.T()
	dur, err := time.ParseDuration(s.Config.JWT.Duration)
	require.NoError(t, err)
	tok, err := jwt.NewService(s.Config.JWT.Secret, dur, nil).GenerateToken(userID, email)
	require.NoError(t, err)
	return tok
}

func (s *authRequiredSuite) body() any {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.MovieID = s.screening.MovieID
		b.TimeslotID = s.screening.TimeslotID
		b.SeatID = s.screening.SeatIDs[0]
		b.Date = s.screening.Date
		b.UserID = s.ownerID
		b.Email = "owner@x.com"
	}).BuildRequestDTO()
}

func (s *authRequiredSuite) TestTokenRequired() {
	s.Run("トークンなしは403", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, addBookingURL, s.body(), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Access token required")
	})

	s.Run("不正なトークンは401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, addBookingURL, s.body(), "not-a-token")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("本人のトークンなら作成できる", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, addBookingURL, s.body(), s.token(s.ownerID, "owner@x.com"))
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("他人名義の予約は403", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, addBookingURL, s.body(), s.token(s.otherID, "other@x.com"))
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
		assert.Equal(s.T(), int16(0), dbtest.SeatStatus(s.T(), s.DB, s.screening.SeatIDs[0]))
	})

	s.Run("他人の予約一覧は403", func() {
		path := fmt.Sprintf("/bookings/%d", s.ownerID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, path, nil, s.token(s.otherID, "other@x.com"))
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Forbidden")
	})

	s.Run("カタログはトークン不要", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/movies", nil, "")
		assert.Equal(s.T(), http.StatusOK, w.Code)
	})
}
