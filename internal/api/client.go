package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bewise-id/admin-web/internal/catalog"
)

// Client issues authenticated requests to the catalog API. The bearer token
// comes from the caller on every call; the client itself holds no
// credential state.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		Logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, rawURL, token string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	c.Logger.Debug("api request", "method", method, "url", rawURL, "request_id", requestID)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog api unreachable: %w", err)
	}
	return resp, nil
}

// Login exchanges admin credentials for a bearer token. A 2xx answer with
// no token in the envelope counts as a failure.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    strings.TrimSpace(email),
		"password": password,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.do(ctx, http.MethodPost, c.BaseURL+"/admin/login", "", bytes.NewReader(payload), "application/json")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errorFromResponse(resp, "Login failed. Please check your credentials.")
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if envelope.Data.Token == "" {
		return "", fmt.Errorf("token not found in the response")
	}
	return envelope.Data.Token, nil
}

// Categories fetches the product categories used to route creation to the
// food or beverage sub-resource.
func (c *Client) Categories(ctx context.Context, token string) ([]catalog.Category, error) {
	resp, err := c.do(ctx, http.MethodGet, c.BaseURL+"/categories/products", token, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp, "Failed to load categories.")
	}

	var envelope struct {
		Data struct {
			Categories []catalog.Category `json:"categories"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode categories response: %w", err)
	}
	return envelope.Data.Categories, nil
}

// ProductsURL resolves a list request to the search endpoint when a term is
// present, else to the admin list-all endpoint. The returned URL doubles as
// the page-cache key.
func (c *Client) ProductsURL(term string, page, limit int) string {
	query := url.Values{}
	if term != "" {
		query.Set("name", term)
		query.Set("page", fmt.Sprint(page))
		query.Set("limit", fmt.Sprint(limit))
		return c.BaseURL + "/products/search?" + query.Encode()
	}
	query.Set("page", fmt.Sprint(page))
	query.Set("limit", fmt.Sprint(limit))
	return c.BaseURL + "/admin/products?" + query.Encode()
}

// FetchPage GETs a resolved products URL and normalizes whichever envelope
// shape the backend answered with.
func (c *Client) FetchPage(ctx context.Context, token, rawURL string) (catalog.Page, error) {
	resp, err := c.do(ctx, http.MethodGet, rawURL, token, nil, "")
	if err != nil {
		return catalog.Page{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return catalog.Page{}, errorFromResponse(resp, "Failed to fetch products.")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return catalog.Page{}, err
	}
	return catalog.NormalizePage(body)
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/products/%d", c.BaseURL, id), token, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp, "Failed to delete product.")
	}
	return nil
}

// NutritionFields carries the seven nutrition-fact values as decimal
// strings already normalized to period separators.
type NutritionFields struct {
	Energy         string
	SaturatedFat   string
	Sugar          string
	Sodium         string
	Protein        string
	Fiber          string
	FruitVegetable string
}

type CreateProductInput struct {
	Name              string
	Brand             string
	Barcode           string
	PriceA            string // plain digit string
	PriceB            string // plain digit string
	CategoryProductID string
	CategoryType      string // routes to the beverage or food sub-resource
	Nutrition         NutritionFields
	PhotoName         string
	Photo             io.Reader
}

// CreateProduct submits a new product as multipart form data. Beverage
// categories post to /products/beverages, everything else to
// /products/foods. The Content-Type header comes from the multipart writer
// so it carries the generated boundary; it must never be set by hand.
func (c *Client) CreateProduct(ctx context.Context, token string, input CreateProductInput) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":                input.Name,
		"brand":               input.Brand,
		"barcode":             input.Barcode,
		"price_a":             input.PriceA,
		"price_b":             input.PriceB,
		"category_product_id": input.CategoryProductID,
		"energy":              input.Nutrition.Energy,
		"saturated_fat":       input.Nutrition.SaturatedFat,
		"sugar":               input.Nutrition.Sugar,
		"sodium":              input.Nutrition.Sodium,
		"protein":             input.Nutrition.Protein,
		"fiber":               input.Nutrition.Fiber,
		"fruit_vegetable":     input.Nutrition.FruitVegetable,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}

	part, err := writer.CreateFormFile("photo", input.PhotoName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, input.Photo); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	endpoint := c.BaseURL + "/products/foods"
	if input.CategoryType == catalog.CategoryBeverage {
		endpoint = c.BaseURL + "/products/beverages"
	}

	resp, err := c.do(ctx, http.MethodPost, endpoint, token, &buf, writer.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp, "Failed to add product.")
	}
	return nil
}
