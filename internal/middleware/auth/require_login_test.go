package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/bewise-id/admin-web/internal/session"
)

func TestGuardRedirectsWithoutToken(t *testing.T) {
	e := echo.New()
	guard := &Guard{Sessions: session.Store{}, LoginPath: "/loginadmin"}

	called := false
	e.GET("/dashboard", guard.RequireToken(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/loginadmin", rec.Header().Get("Location"))
	require.False(t, called, "protected handler must not run without a token")
}

func TestGuardAllowsWithToken(t *testing.T) {
	e := echo.New()
	guard := &Guard{Sessions: session.Store{}, LoginPath: "/loginadmin"}

	e.GET("/dashboard", guard.RequireToken(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: "tok-123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
