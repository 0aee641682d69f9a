package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bewise-id/admin-web/internal/session"
)

// Guard protects the dashboard tree. It runs on every request to the group,
// not just the first navigation: a request arriving without a token is
// redirected to the login page before any protected data is fetched.
type Guard struct {
	Sessions  session.Store
	LoginPath string
}

func (g *Guard) RequireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := g.Sessions.Get(c); !ok {
			return c.Redirect(http.StatusSeeOther, g.LoginPath)
		}
		return next(c)
	}
}
