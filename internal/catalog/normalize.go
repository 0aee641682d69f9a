package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
)

// The backend answers list and search requests with two different envelopes:
// a flat product array next to a pagination object, or a nested object
// carrying the products plus raw quantity/limit/page counters. NormalizePage
// accepts either and reduces both to Page.

var ErrBadShape = errors.New("unexpected response shape")

type listEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *pagination     `json:"pagination"`
}

type pagination struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

type nestedProducts struct {
	Products        []Product `json:"products"`
	ProductQuantity int       `json:"product_quantity"`
	Limit           int       `json:"limit"`
	Page            int       `json:"page"`
}

func NormalizePage(body []byte) (Page, error) {
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Page{}, err
	}
	if len(env.Data) == 0 {
		return Page{}, ErrBadShape
	}

	data := bytes.TrimLeft(env.Data, " \t\r\n")
	switch {
	case len(data) > 0 && data[0] == '[':
		var items []Product
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return Page{}, err
		}
		page := Page{Items: items, TotalPages: 1, CurrentPage: 1}
		if env.Pagination != nil {
			page.TotalPages = env.Pagination.TotalPages
			page.CurrentPage = env.Pagination.CurrentPage
		}
		return clamp(page), nil

	case len(data) > 0 && data[0] == '{':
		var nested nestedProducts
		if err := json.Unmarshal(env.Data, &nested); err != nil {
			return Page{}, err
		}
		if nested.Products == nil {
			return Page{}, ErrBadShape
		}
		page := Page{
			Items:       nested.Products,
			TotalPages:  totalPages(nested.ProductQuantity, nested.Limit),
			CurrentPage: nested.Page,
		}
		return clamp(page), nil
	}

	return Page{}, ErrBadShape
}

func totalPages(quantity, limit int) int {
	if limit <= 0 {
		return 1
	}
	return (quantity + limit - 1) / limit
}

// clamp enforces TotalPages >= 1 and 1 <= CurrentPage <= TotalPages.
func clamp(p Page) Page {
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.CurrentPage > p.TotalPages {
		p.CurrentPage = p.TotalPages
	}
	return p
}
