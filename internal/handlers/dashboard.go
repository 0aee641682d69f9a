package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bewise-id/admin-web/internal/api"
	"github.com/bewise-id/admin-web/internal/cache"
	"github.com/bewise-id/admin-web/internal/catalog"
	"github.com/bewise-id/admin-web/internal/forms"
	"github.com/bewise-id/admin-web/internal/session"
)

// DashboardHandler owns the product creation form.
type DashboardHandler struct {
	API      *api.Client
	Sessions session.Store
	Cache    *cache.Pages
	Logger   *slog.Logger
}

type dashboardView struct {
	Categories []catalog.Category
	Form       forms.ProductForm
	Error      string
	Flash      *session.Flash
	CSRF       string
}

func (h *DashboardHandler) Form(c echo.Context) error {
	token, _ := h.Sessions.Get(c)
	view := dashboardView{
		CSRF:  csrfToken(c),
		Flash: session.PopFlash(c),
	}

	categories, err := h.API.Categories(c.Request().Context(), token)
	if err != nil {
		// Degraded mode: the selector stays empty and the form cannot be
		// usefully submitted, but the page still renders.
		h.Logger.Error("load categories", "err", err)
		view.Error = "Failed to load categories."
		return c.Render(http.StatusOK, "dashboard.html", view)
	}
	view.Categories = categories
	return c.Render(http.StatusOK, "dashboard.html", view)
}

// Create validates the submitted form entirely locally before any network
// call: a validation failure redirects back with a flash and the catalog
// API is never contacted.
func (h *DashboardHandler) Create(c echo.Context) error {
	token, _ := h.Sessions.Get(c)

	var form forms.ProductForm
	if err := c.Bind(&form); err != nil {
		session.SetFlash(c, "error", "Invalid form submission.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	if msg := forms.Check(form); msg != "" {
		session.SetFlash(c, "error", msg)
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		session.SetFlash(c, "error", "Photo file is required.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	input, msg := buildCreateInput(form)
	if msg != "" {
		session.SetFlash(c, "error", msg)
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	ctx := c.Request().Context()

	categories, err := h.API.Categories(ctx, token)
	if err != nil {
		session.SetFlash(c, "error", "Failed to load categories.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	input.CategoryType = resolveCategoryType(categories, form.CategoryProductID)

	src, err := photo.Open()
	if err != nil {
		session.SetFlash(c, "error", "Could not read the photo file.")
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	defer src.Close()
	input.PhotoName = photo.Filename
	input.Photo = src

	if err := h.API.CreateProduct(ctx, token, input); err != nil {
		message := "Failed to add product."
		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			message = apiErr.Message
		}
		h.Logger.Error("create product", "err", err)
		// Submission failed: stay on the form instead of navigating away.
		return c.Render(http.StatusBadGateway, "dashboard.html", dashboardView{
			Categories: categories,
			Form:       form,
			Error:      message,
			CSRF:       csrfToken(c),
		})
	}

	h.Cache.InvalidateAll()
	session.SetFlash(c, "success", "Product added successfully!")
	return c.Redirect(http.StatusSeeOther, "/dashboard/database")
}

func buildCreateInput(form forms.ProductForm) (api.CreateProductInput, string) {
	input := api.CreateProductInput{
		Name:              form.Name,
		Brand:             form.Brand,
		Barcode:           form.Barcode,
		CategoryProductID: form.CategoryProductID,
	}

	priceA, err := catalog.PlainPrice(form.PriceA)
	if err != nil {
		return input, "Price A must be a number."
	}
	priceB, err := catalog.PlainPrice(form.PriceB)
	if err != nil {
		return input, "Price B must be a number."
	}
	input.PriceA = priceA
	input.PriceB = priceB

	fields := []struct {
		label string
		value string
		dst   *string
	}{
		{"Energy", form.Energy, &input.Nutrition.Energy},
		{"Saturated Fat", form.SaturatedFat, &input.Nutrition.SaturatedFat},
		{"Sugar", form.Sugar, &input.Nutrition.Sugar},
		{"Sodium", form.Sodium, &input.Nutrition.Sodium},
		{"Protein", form.Protein, &input.Nutrition.Protein},
		{"Fiber", form.Fiber, &input.Nutrition.Fiber},
		{"Fruit & Vegetable", form.FruitVegetable, &input.Nutrition.FruitVegetable},
	}
	for _, f := range fields {
		v, err := catalog.NormalizeDecimal(f.value)
		if err != nil {
			return input, f.label + " must be a decimal quantity."
		}
		*f.dst = v
	}
	return input, ""
}

// resolveCategoryType maps the selected category id to its type; unmapped
// ids fall back to FOOD.
func resolveCategoryType(categories []catalog.Category, id string) string {
	for _, cat := range categories {
		if strconv.Itoa(cat.ID) == id {
			return cat.Type
		}
	}
	return catalog.CategoryFood
}
