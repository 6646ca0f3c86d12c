//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"movie-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records a public error carrying the response", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		cause := errors.New("seat taken")
		httperr.AbortWithError(c, http.StatusConflict, cause, "conflict")

		require.Len(t, c.Errors, 1)
		ginErr := c.Errors[0]
		assert.True(t, ginErr.IsType(gin.ErrorTypePublic))
		assert.ErrorIs(t, ginErr.Err, cause)

		resp, ok := ginErr.Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusConflict, resp.Status)
		assert.Equal(t, "conflict", resp.Error.Message)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"conflict"}}`, w.Body.String())
	})

	t.Run("nil error panics", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.Panics(t, func() { httperr.AbortWithError(c, http.StatusBadRequest, nil, "x") })
	})
}
