package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bewise-id/admin-web/internal/api"
	"github.com/bewise-id/admin-web/internal/forms"
	"github.com/bewise-id/admin-web/internal/session"
)

type LoginHandler struct {
	API      *api.Client
	Sessions session.Store
	Logger   *slog.Logger
}

type loginView struct {
	Error string
	Email string
	CSRF  string
	Flash *session.Flash
}

func (h *LoginHandler) Form(c echo.Context) error {
	if _, ok := h.Sessions.Get(c); ok {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return c.Render(http.StatusOK, "login.html", loginView{
		CSRF:  csrfToken(c),
		Flash: session.PopFlash(c),
	})
}

func (h *LoginHandler) Submit(c echo.Context) error {
	var form forms.LoginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", loginView{
			Error: "Invalid form submission.",
			CSRF:  csrfToken(c),
		})
	}
	if msg := forms.Check(form); msg != "" {
		return c.Render(http.StatusUnprocessableEntity, "login.html", loginView{
			Error: msg,
			Email: form.Email,
			CSRF:  csrfToken(c),
		})
	}

	token, err := h.API.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		message := "An unknown error occurred. Please try again later."
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		h.Logger.Warn("login failed", "email", form.Email, "err", err)
		return c.Render(http.StatusUnauthorized, "login.html", loginView{
			Error: message,
			Email: form.Email,
			CSRF:  csrfToken(c),
		})
	}

	h.Sessions.Set(c, token)
	session.SetFlash(c, "success", "Login successful! Redirecting...")
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *LoginHandler) Logout(c echo.Context) error {
	h.Sessions.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/loginadmin")
}
