package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/bewise-id/admin-web/internal/api"
	"github.com/bewise-id/admin-web/internal/cache"
	"github.com/bewise-id/admin-web/internal/catalog"
	authmw "github.com/bewise-id/admin-web/internal/middleware/auth"
	"github.com/bewise-id/admin-web/internal/session"
)

// fakeBackend stands in for the remote catalog API.
type fakeBackend struct {
	mu         sync.Mutex
	requests   []string
	products   []catalog.Product
	categories []catalog.Category
	token      string

	failLogin      bool
	failList       bool
	failDelete     bool
	failCreate     bool
	failCategories bool

	lastCreateFields map[string]string
	lastPhotoName    string
}

func (f *fakeBackend) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

func (f *fakeBackend) calls(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.requests {
		if strings.HasPrefix(req, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeBackend) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /admin/login", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failLogin {
			writeMessage(w, http.StatusUnauthorized, "wrong password")
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"token": f.token}})
	})

	mux.HandleFunc("GET /categories/products", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failCategories {
			writeMessage(w, http.StatusInternalServerError, "categories unavailable")
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"categories": f.categories}})
	})

	// list-all answers with the nested envelope shape
	mux.HandleFunc("GET /admin/products", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failList {
			writeMessage(w, http.StatusInternalServerError, "boom")
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		items, total := f.page("", page, limit)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
			"products":         items,
			"product_quantity": total,
			"limit":            limit,
			"page":             page,
		}})
	})

	// search answers with the flat envelope shape
	mux.HandleFunc("GET /products/search", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failList {
			writeMessage(w, http.StatusInternalServerError, "boom")
			return
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		items, total := f.page(r.URL.Query().Get("name"), page, limit)
		totalPages := (total + limit - 1) / limit
		if totalPages < 1 {
			totalPages = 1
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data":       items,
			"pagination": map[string]int{"total_pages": totalPages, "current_page": page},
		})
	})

	mux.HandleFunc("DELETE /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failDelete {
			writeMessage(w, http.StatusInternalServerError, "cannot delete")
			return
		}
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		kept := f.products[:0]
		for _, product := range f.products {
			if product.ID != id {
				kept = append(kept, product)
			}
		}
		f.products = kept
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	create := func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if f.failCreate {
			writeMessage(w, http.StatusUnprocessableEntity, "barcode already registered")
			return
		}
		if err := r.ParseMultipartForm(4 << 20); err != nil {
			writeMessage(w, http.StatusBadRequest, "bad multipart")
			return
		}
		f.mu.Lock()
		f.lastCreateFields = map[string]string{}
		for name, values := range r.MultipartForm.Value {
			f.lastCreateFields[name] = values[0]
		}
		if _, header, err := r.FormFile("photo"); err == nil {
			f.lastPhotoName = header.Filename
		}
		f.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}
	mux.HandleFunc("POST /products/foods", create)
	mux.HandleFunc("POST /products/beverages", create)

	return mux
}

func (f *fakeBackend) page(name string, page, limit int) ([]catalog.Product, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []catalog.Product
	for _, product := range f.products {
		if name == "" || strings.Contains(strings.ToLower(product.Name), strings.ToLower(name)) {
			matched = append(matched, product)
		}
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > len(matched) {
		return nil, len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched)
}

// viewRenderer serializes the rendered template name and view so tests can
// assert on what would have been displayed.
type viewRenderer struct{}

func (viewRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return json.NewEncoder(w).Encode(map[string]interface{}{"template": name, "view": data})
}

type renderedView struct {
	Template string
	View     struct {
		Error      string
		Email      string
		Query      string
		Name       string
		Page       catalog.Page
		Categories []catalog.Category
		Form       struct {
			Name  string
			Brand string
		}
	}
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) renderedView {
	t.Helper()
	var view renderedView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Backend *fakeBackend
}

func newTestEnv(t *testing.T) *testEnv {
	backend := &fakeBackend{
		token: "tok-123",
		products: []catalog.Product{
			{ID: 1, Name: "Milk A", Brand: "Gooday", PriceA: 12500, PriceB: 11000},
			{ID: 2, Name: "Milk B", Brand: "WRP", PriceA: 9000, PriceB: 8500},
			{ID: 3, Name: "Milk C", Brand: "Diamond", PriceA: 15000, PriceB: 14000},
		},
		categories: []catalog.Category{
			{ID: 1, Name: "Instant Noodles", Type: catalog.CategoryFood},
			{ID: 2, Name: "Milk", Type: catalog.CategoryBeverage},
		},
	}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	logger := slog.New(slog.DiscardHandler)
	client := api.NewClient(server.URL, logger)
	sessions := session.Store{}
	pages := cache.NewPages()

	e := echo.New()
	e.Renderer = viewRenderer{}

	login := &LoginHandler{API: client, Sessions: sessions, Logger: logger}
	dashboard := &DashboardHandler{API: client, Sessions: sessions, Cache: pages, Logger: logger}
	database := &DatabaseHandler{API: client, Sessions: sessions, Cache: pages, Logger: logger, Limit: 10}
	guard := &authmw.Guard{Sessions: sessions, LoginPath: "/loginadmin"}

	e.GET("/loginadmin", login.Form)
	e.POST("/loginadmin", login.Submit)
	e.POST("/logout", login.Logout)

	group := e.Group("/dashboard", guard.RequireToken)
	group.GET("", dashboard.Form)
	group.POST("/products", dashboard.Create)
	group.GET("/database", database.List)
	group.GET("/database/:id/delete", database.ConfirmDelete)
	group.POST("/database/:id/delete", database.Delete)

	return &testEnv{T: t, E: e, Backend: backend}
}

func (env *testEnv) do(method, target string, body io.Reader, contentType string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func tokenCookie() *http.Cookie {
	return &http.Cookie{Name: session.TokenCookie, Value: "tok-123"}
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func validProductFields() map[string]string {
	return map[string]string{
		"name":                "Oat Milk",
		"brand":               "Gooday",
		"barcode":             "8998888112233",
		"price_a":             "12500",
		"price_b":             "11000",
		"category_product_id": "2",
		"energy":              "120",
		"saturated_fat":       "1,5",
		"sugar":               "4",
		"sodium":              "0,2",
		"protein":             "3",
		"fiber":               "1",
		"fruit_vegetable":     "0",
	}
}

func multipartBody(t *testing.T, fields map[string]string, withPhoto bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if withPhoto {
		part, err := writer.CreateFormFile("photo", "oatmilk.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}
