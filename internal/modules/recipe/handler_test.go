package recipe

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler_PutNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(nil)
	router := gin.New()
	handler.RegisterProtectedRoutes(router.Group("/"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/recipes/5", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), "METHOD_NOT_ALLOWED")
	assert.Contains(t, w.Body.String(), "PATCH")
}
