//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"movie-booking/internal/handler/api"
	resdto "movie-booking/internal/handler/dto/response"
	"movie-booking/internal/handler/middleware"
	"movie-booking/internal/handler/validation"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/usecase/commands"
	"movie-booking/internal/usecase/queries"
	"movie-booking/tests/common/builder"
	"movie-booking/tests/common/httptest"
	"movie-booking/tests/common/testutil"
	commandsmock "movie-booking/tests/mock/commands"
	queriesmock "movie-booking/tests/mock/queries"
	usecasemock "movie-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	securedRouter *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockQueries   *queriesmock.MockBookingQueries
	mockTokens    *usecasemock.MockTokenValidator
	handler       *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.Register())
	gin.EnableJsonDecoderDisallowUnknownFields()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockTokens = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router = gin.New()
	s.register(s.router.Group(""))

	s.securedRouter = gin.New()
	secured := s.securedRouter.Group("")
	secured.Use(middleware.NewAuthMiddleware(s.mockTokens).RequireAuth())
	s.register(secured)
}

func (s *BookingHandlerTestSuite) register(g *gin.RouterGroup) {
	g.POST("/add-booking", s.handler.Create)
	g.POST("/edit-booking/:booking_id", s.handler.Edit)
	g.DELETE("/delete-booking/:booking_id", s.handler.Delete)
	g.GET("/bookings/:user_id", s.handler.ListForUser)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/add-booking"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildRequestDTO()

	s.Run("success: returns 201 with the created booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.Anonymous(), reqBody).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Booking successful", response.Message)
		s.Equal(b.BookingID, response.Booking.BookingID)
		s.Equal("2024-01-01", response.Booking.Date)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseBooking{
			{name: "missing field: movie_id", mutate: testutil.Field("movie_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "seat_id 0", mutate: testutil.Field("seat_id", 0), expectCode: http.StatusBadRequest},
			{name: "user_id negative", mutate: testutil.Field("user_id", -3), expectCode: http.StatusBadRequest},
			{name: "ISO timestamp date", mutate: testutil.Field("date", "2024-01-01T00:00:00.000Z"), expectCode: http.StatusBadRequest},
			{name: "impossible date", mutate: testutil.Field("date", "2024-02-30"), expectCode: http.StatusBadRequest},
			{name: "unknown field", mutate: testutil.Field("status", "paid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid booking request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "seat already booked", commandsError: commands.ErrBookingConflict, expectedStatus: http.StatusBadRequest, expectedMsg: "Booking already exists"},
			{name: "unique violation", commandsError: errs.Mark(errors.New("23505"), commands.ErrBookingConflict), expectedStatus: http.StatusBadRequest, expectedMsg: "Booking already exists"},
			{name: "seat not found", commandsError: commands.ErrSeatNotFound, expectedStatus: http.StatusBadRequest, expectedMsg: "Seat not found"},
			{name: "foreign key", commandsError: commands.ErrInvalidBooking, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid booking request"},
			{name: "internal", commandsError: errors.New("deadlock detected"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("secured: authenticated actor is passed to the command", func() {
		s.mockTokens.EXPECT().ValidateToken("good-token").Return(b.UserID, nil).Times(1)
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.Actor{UserID: b.UserID, Authenticated: true}, reqBody).
			Return(b.BuildResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.securedRouter, http.MethodPost, url, reqBody, "good-token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("secured: missing token is 403", func() {
		rec := httptest.PerformRequest(s.T(), s.securedRouter, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access token required")
	})

	s.Run("secured: forbidden owner is 403", func() {
		s.mockTokens.EXPECT().ValidateToken("other-token").Return(int64(99), nil).Times(1)
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), reqBody).
			Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.securedRouter, http.MethodPost, url, reqBody, "other-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

func (s *BookingHandlerTestSuite) TestEdit() {
	reqBody := builder.NewBookingBuilder().BuildRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), commands.Anonymous(), int64(100), reqBody).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/edit-booking/100", reqBody, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking updated successfully", response.Message)
	})

	s.Run("error: missing booking is 404", func() {
		s.mockCommands.EXPECT().Edit(gomock.Any(), gomock.Any(), int64(404), reqBody).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/edit-booking/404", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/edit-booking/abc", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking_id")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), commands.Anonymous(), int64(100)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/delete-booking/100", nil, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Booking deleted successfully", response.Message)
	})

	s.Run("error: missing booking is 404", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(5)).
			Return(errs.Mark(errors.New("no rows"), commands.ErrBookingNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/delete-booking/5", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListForUser() {
	b := builder.NewBookingBuilder()

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), b.UserID).
			Return([]queries.UserBookingView{b.BuildUserBookingView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, fmt.Sprintf("/bookings/%d", b.UserID), nil, "")

		var response resdto.UserBookingsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
		s.Equal("Inception", response.Bookings[0].Title)
		s.Equal("18:00:00", response.Bookings[0].StartTime)
	})

	s.Run("success: no bookings is an empty list", func() {
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), int64(8)).
			Return([]queries.UserBookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/8", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"bookings":[]}`, rec.Body.String())
	})

	s.Run("secured: other user's list is 403", func() {
		s.mockTokens.EXPECT().ValidateToken("tok").Return(int64(99), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.securedRouter, http.MethodGet, fmt.Sprintf("/bookings/%d", b.UserID), nil, "tok")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("secured: expired token is 401", func() {
		s.mockTokens.EXPECT().ValidateToken("old").Return(int64(0), errors.New("token expired")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.securedRouter, http.MethodGet, "/bookings/7", nil, "old")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
