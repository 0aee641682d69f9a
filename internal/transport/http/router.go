package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/bewise-id/admin-web/internal/handlers"
	"github.com/bewise-id/admin-web/internal/middleware/auth"
)

type Deps struct {
	Pages     *handlers.PageHandler
	Login     *handlers.LoginHandler
	Dashboard *handlers.DashboardHandler
	Database  *handlers.DatabaseHandler
	Guard     *auth.Guard
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	e.Static("/static", "web/static")

	e.GET("/", d.Pages.Home)

	e.GET("/loginadmin", d.Login.Form)
	e.POST("/loginadmin", d.Login.Submit)
	e.POST("/logout", d.Login.Logout)

	dashboard := e.Group("/dashboard", d.Guard.RequireToken)

	dashboard.GET("", d.Dashboard.Form)
	dashboard.POST("/products", d.Dashboard.Create)

	dashboard.GET("/database", d.Database.List)
	dashboard.GET("/database/:id/delete", d.Database.ConfirmDelete)
	dashboard.POST("/database/:id/delete", d.Database.Delete)

	e.RouteNotFound("/*", d.Pages.NotFound)
}
