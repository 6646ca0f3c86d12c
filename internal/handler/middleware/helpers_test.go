//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"

	"github.com/gin-gonic/gin"
)

func newRequest(method, path string) *http.Request {
	return nethttptest.NewRequest(method, path, nil)
}

func serve(r *gin.Engine, req *http.Request) *nethttptest.ResponseRecorder {
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
