package httperr

import (
	"log/slog"
	"net/http"

	"movie-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// preserves original error for request logging
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortInternal logs err with a trimmed stack and answers with the generic 500 body;
// database and driver messages never reach the client.
func AbortInternal(c *gin.Context, err error) {
	slog.Error("request failed",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
	AbortWithError(c, http.StatusInternalServerError, err, internalMessage)
}

func InternalResponse() Response {
	resp := Response{Status: http.StatusInternalServerError}
	resp.Error.Message = internalMessage
	return resp
}
