package api

import (
	"errors"
	"net/http"
	"strconv"

	"movie-booking/internal/handler/httperr"
	"movie-booking/internal/handler/middleware"
	"movie-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errNotPositive = errors.New("id must be a positive integer")

// pathID parses a positive int64 path parameter or aborts with 400 "Invalid <name>".
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err == nil && id <= 0 {
		err = errNotPositive
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func actorFrom(c *gin.Context) commands.Actor {
	if id, ok := middleware.GetUserID(c); ok {
		return commands.Actor{UserID: id, Authenticated: true}
	}
	return commands.Anonymous()
}
