package api

import (
	"net/http"

	resdto "movie-booking/internal/handler/dto/response"
	"movie-booking/internal/handler/httperr"
	"movie-booking/internal/handler/validation"
	"movie-booking/internal/pkg/errs"
	"movie-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidDate = errs.New("date must be YYYY-MM-DD")

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List movies
// @Tags movies
// @Produce json
// @Success 200 {array} resdto.MovieResponse
// @Failure 500 {object} httperr.Response
// @Router /movies [get]
func (h *CatalogHandler) ListMovies(c *gin.Context) {
	views, err := h.q.ListMovies(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	out, err := resdto.FromMovieViews(views)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Movie details
// @Description Movie row plus the distinct dates that have timeslots, ascending
// @Tags movies
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Success 200 {object} resdto.MovieDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /movies/{movie_id} [get]
func (h *CatalogHandler) GetMovie(c *gin.Context) {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return
	}

	view, err := h.q.GetMovieDetails(c.Request.Context(), movieID)
	if err != nil {
		if errs.Is(err, queries.ErrMovieNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Movie not found")
			return
		}
		httperr.AbortInternal(c, err)
		return
	}
	out, err := resdto.FromMovieDetails(view)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Timeslots for a date
// @Tags movies
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.TimeslotResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /movies/{movie_id}/availability/{date} [get]
func (h *CatalogHandler) ListTimeslots(c *gin.Context) {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return
	}
	date := c.Param("date")
	if !validation.IsISODate(date) {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidDate, "Invalid date")
		return
	}

	views, err := h.q.ListTimeslots(c.Request.Context(), movieID, date)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	out, err := resdto.FromTimeslotViews(views)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Seats of a timeslot
// @Description Seats ordered ascending by seat_number
// @Tags movies
// @Produce json
// @Param movie_id path int true "Movie ID"
// @Param timeslot_id path int true "Timeslot ID"
// @Success 200 {array} resdto.SeatResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /movies/{movie_id}/{timeslot_id}/seats [get]
func (h *CatalogHandler) ListSeats(c *gin.Context) {
	movieID, ok := pathID(c, "movie_id")
	if !ok {
		return
	}
	timeslotID, ok := pathID(c, "timeslot_id")
	if !ok {
		return
	}

	views, err := h.q.ListSeats(c.Request.Context(), movieID, timeslotID)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	out, err := resdto.FromSeatViews(views)
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Database server version
// @Tags health
// @Produce json
// @Success 200 {object} resdto.VersionResponse
// @Failure 500 {object} httperr.Response
// @Router /version [get]
func (h *CatalogHandler) Version(c *gin.Context) {
	v, err := h.q.ServerVersion(c.Request.Context())
	if err != nil {
		httperr.AbortInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.VersionResponse{Version: v})
}
