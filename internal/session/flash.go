package session

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// Flash is a one-shot notification carried across a redirect and consumed on
// the next render.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

func SetFlash(c echo.Context, kind, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(kind + "|" + message))
	c.SetCookie(CreateCookie(flashCookie, value, "/", time.Now().Add(time.Minute)))
}

// PopFlash returns the pending flash, if any, and clears it.
func PopFlash(c echo.Context) *Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(CreateCookie(flashCookie, "", "/", time.Unix(0, 0)))

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(raw), "|")
	if !ok {
		return nil
	}
	return &Flash{Kind: kind, Message: message}
}
