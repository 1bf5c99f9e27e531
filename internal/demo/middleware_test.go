package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(m *Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.Handler())
	router.GET("/api/books", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	router.POST("/api/books", func(c *gin.Context) { c.JSON(http.StatusCreated, gin.H{"id": 1}) })
	return router
}

func TestMiddleware_AllowsReads(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/books", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddleware_BlocksWrites(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/books", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["demo_mode"])
	assert.NotEmpty(t, resp["error"])
}

func TestMiddleware_DisabledPassesEverything(t *testing.T) {
	router := newTestRouter(NewMiddleware(false))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/books", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
