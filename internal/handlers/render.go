package handlers

import (
	"html/template"
	"io"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/bewise-id/admin-web/internal/catalog"
)

// Renderer adapts html/template to echo's Renderer interface.
type Renderer struct {
	templates *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	funcs := template.FuncMap{
		"formatPrice": catalog.FormatPrice,
		"add":         func(a, b int) int { return a + b },
	}
	t, err := template.New("").Funcs(funcs).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func csrfToken(c echo.Context) string {
	if v, ok := c.Get("csrf_token").(string); ok {
		return v
	}
	return ""
}
