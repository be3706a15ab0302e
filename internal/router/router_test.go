package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func (stubHandler) CreateBooking(c *ginext.Context)  { c.Status(http.StatusCreated) }
func (stubHandler) ConfirmBooking(c *ginext.Context) { c.Status(http.StatusOK) }
func (stubHandler) GetBooking(c *ginext.Context)     { c.String(http.StatusOK, c.Param("id")) }
func (stubHandler) ListBookings(c *ginext.Context)   { c.Status(http.StatusOK) }

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func allowAll(c *ginext.Context) {
	c.Next()
}

func TestInitRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, allowAll)

	tests := []struct {
		method, path string
		status       int
	}{
		{http.MethodPost, "/api/bookings", http.StatusCreated},
		{http.MethodPut, "/api/bookings", http.StatusOK},
		{http.MethodGet, "/api/bookings", http.StatusOK},
		{http.MethodGet, "/api/bookings/abc", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodDelete, "/api/bookings", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}

func TestInitRouter_AuthGuardsAPIOnly(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
