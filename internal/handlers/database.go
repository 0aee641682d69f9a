package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bewise-id/admin-web/internal/api"
	"github.com/bewise-id/admin-web/internal/cache"
	"github.com/bewise-id/admin-web/internal/catalog"
	"github.com/bewise-id/admin-web/internal/session"
	"github.com/bewise-id/admin-web/internal/util"
)

// DatabaseHandler owns the catalog browser: search, pagination and
// deletion.
type DatabaseHandler struct {
	API      *api.Client
	Sessions session.Store
	Cache    *cache.Pages
	Logger   *slog.Logger
	Limit    int
}

type databaseView struct {
	Query string
	Page  catalog.Page
	Error string
	Flash *session.Flash
	CSRF  string
}

type confirmDeleteView struct {
	ID         int
	Name       string
	Query      string
	ReturnPage int
	CSRF       string
}

func (h *DatabaseHandler) limit() int {
	if h.Limit > 0 {
		return h.Limit
	}
	return 20
}

// List renders one page of the catalog. An empty query hits the admin
// list-all endpoint, anything else the search endpoint; a result already
// fetched for the same resolved URL is served from the page cache.
func (h *DatabaseHandler) List(c echo.Context) error {
	token, _ := h.Sessions.Get(c)
	query := strings.TrimSpace(c.QueryParam("q"))
	pageNum := util.ParseIntDefault(c.QueryParam("page"), 1)
	pageNum, limit := util.ClampPage(pageNum, h.limit())

	key := h.API.ProductsURL(query, pageNum, limit)
	view := databaseView{
		Query: query,
		Flash: session.PopFlash(c),
		CSRF:  csrfToken(c),
	}

	page, ok := h.Cache.Get(key)
	if !ok {
		fetched, err := h.API.FetchPage(c.Request().Context(), token, key)
		if err != nil {
			message := "Failed to fetch products."
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				message = apiErr.Message
			}
			h.Logger.Error("fetch products", "url", key, "err", err)
			view.Error = message
			view.Page = catalog.Page{TotalPages: 1, CurrentPage: 1}
			return c.Render(http.StatusOK, "database.html", view)
		}
		page = fetched
		h.Cache.Put(key, page)
	}

	view.Page = page
	return c.Render(http.StatusOK, "database.html", view)
}

// ConfirmDelete is the explicit yes/no step before a product is removed.
func (h *DatabaseHandler) ConfirmDelete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	query := strings.TrimSpace(c.QueryParam("q"))
	pageNum := util.ParseIntDefault(c.QueryParam("page"), 1)
	pageNum, limit := util.ClampPage(pageNum, h.limit())

	view := confirmDeleteView{
		ID:         id,
		Query:      query,
		ReturnPage: pageNum,
		CSRF:       csrfToken(c),
	}
	// Show the product name when the displayed page is still cached.
	if page, ok := h.Cache.Get(h.API.ProductsURL(query, pageNum, limit)); ok {
		for _, product := range page.Items {
			if product.ID == id {
				view.Name = product.Name
				break
			}
		}
	}
	return c.Render(http.StatusOK, "confirm_delete.html", view)
}

// Delete forwards the deletion and invalidates the cache entry for the
// page being displayed, so the next render reflects the removal. On
// failure the cache is left alone and the list stays unchanged.
func (h *DatabaseHandler) Delete(c echo.Context) error {
	token, _ := h.Sessions.Get(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	query := strings.TrimSpace(c.FormValue("q"))
	pageNum := util.ParseIntDefault(c.FormValue("page"), 1)
	pageNum, limit := util.ClampPage(pageNum, h.limit())

	if err := h.API.DeleteProduct(c.Request().Context(), token, id); err != nil {
		message := "Failed to delete product."
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		h.Logger.Error("delete product", "id", id, "err", err)
		session.SetFlash(c, "error", message)
		return c.Redirect(http.StatusSeeOther, listPath(query, pageNum))
	}

	h.Cache.Invalidate(h.API.ProductsURL(query, pageNum, limit))
	session.SetFlash(c, "success", "Product deleted successfully!")
	return c.Redirect(http.StatusSeeOther, listPath(query, pageNum))
}

func listPath(query string, page int) string {
	values := url.Values{}
	if query != "" {
		values.Set("q", query)
	}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if len(values) == 0 {
		return "/dashboard/database"
	}
	return "/dashboard/database?" + values.Encode()
}
