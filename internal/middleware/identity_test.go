package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestUserIDAnonymous(t *testing.T) {
	c := newTestContext(t)
	assert.Equal(t, "guest", userID(c))

	c.Set("user_id", "")
	assert.Equal(t, "guest", userID(c))
}

func TestUserIDFromContext(t *testing.T) {
	// JWTAuth stores the raw sub claim; numbers arrive as float64 and some
	// tokens carry string subjects.
	c := newTestContext(t)
	c.Set("user_id", float64(42))
	assert.Equal(t, "42", userID(c))

	c = newTestContext(t)
	c.Set("user_id", "42")
	assert.Equal(t, "42", userID(c))
}
