package session

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	TokenCookie = "token"
	TokenTTL    = 7 * 24 * time.Hour
)

// Store reads and writes the persisted admin credential. The token itself is
// opaque: it is issued by the catalog API and only ever forwarded back to it.
type Store struct{}

func CreateCookie(name string, value string, path string, exp_time time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp_time,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}

	return cookie
}

func (Store) Set(c echo.Context, token string) {
	c.SetCookie(CreateCookie(TokenCookie, token, "/", time.Now().Add(TokenTTL)))
}

// Get returns the token and whether one is present. Absence is a normal
// state, not an error.
func (Store) Get(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(TokenCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (Store) Clear(c echo.Context) {
	c.SetCookie(CreateCookie(TokenCookie, "", "/", time.Unix(0, 0)))
}
