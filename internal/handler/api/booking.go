package api

import (
	"errors"
	"net/http"

	reqdto "movie-booking/internal/handler/dto/request"
	resdto "movie-booking/internal/handler/dto/response"
	"movie-booking/internal/handler/httperr"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/usecase/commands"
	"movie-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errForeignUser = errors.New("token user does not match requested user")

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /add-booking [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		abortBookingError(c, err)
		return
	}

	booking, err := resdto.FromBookingResult(result)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Message: "Booking successful",
		Booking: booking,
	})
}

// @Summary Edit booking
// @Description Overwrite every field of a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Param request body reqdto.BookingRequest true "Booking"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /edit-booking/{booking_id} [post]
func (h *BookingHandler) Edit(c *gin.Context) {
	bookingID, ok := pathID(c, "booking_id")
	if !ok {
		return
	}
	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request")
		return
	}

	if err := h.cmds.Edit(c.Request.Context(), actorFrom(c), bookingID, req); err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking updated successfully"})
}

// @Summary Delete booking
// @Tags bookings
// @Produce json
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /delete-booking/{booking_id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	bookingID, ok := pathID(c, "booking_id")
	if !ok {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actorFrom(c), bookingID); err != nil {
		abortBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Booking deleted successfully"})
}

// @Summary Bookings of a user
// @Description Denormalized bookings ordered by date then start time
// @Tags bookings
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} resdto.UserBookingsResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings/{user_id} [get]
func (h *BookingHandler) ListForUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if actor := actorFrom(c); actor.Authenticated && actor.UserID != userID {
		httperr.AbortWithError(c, http.StatusForbidden, errForeignUser, "Forbidden")
		return
	}

	views, err := h.q.ListForUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	out, err := resdto.FromUserBookingViews(views)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func abortBookingError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrBookingConflict):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking already exists")
	case errs.Is(err, commands.ErrSeatNotFound):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Seat not found")
	case errs.Is(err, commands.ErrInvalidBooking):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request")
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found")
	case errs.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden")
	default:
		httperr.AbortInternal(c, err)
	}
}
