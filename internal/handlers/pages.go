package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the public marketing pages.
type PageHandler struct{}

type faqItem struct {
	Question string
	Answer   string
}

type teamMember struct {
	Name  string
	Role  string
	Photo string
}

type homeView struct {
	FAQ  []faqItem
	Team []teamMember
}

var homeContent = homeView{
	FAQ: []faqItem{
		{"What is the main purpose of this application?", "BeWise helps you understand what is inside packaged products and make healthier choices."},
		{"How do I scan a product?", "Simply use the barcode scanner feature in the app to get instant nutritional details."},
		{"Can I find healthier product alternatives?", "Yes, our app suggests healthier products based on your scan."},
		{"What types of products can I scan?", "You can scan food, beverages, and other packaged products with nutritional labels."},
		{"Is this app free to use?", "The app offers free features, with optional premium upgrades for additional insights."},
	},
	Team: []teamMember{
		{"Suryo Adhi Wibowo, S.T., M.T., Ph.D", "Founder", "/static/img/team/sao.png"},
		{"Dr. Iwan Iwut Tritosasmo, S.T., M.T.", "Co-Founder", "/static/img/team/iit.png"},
		{"Raihan Putra Darmawan", "Frontend Developer", "/static/img/team/rhn.png"},
		{"Adam Wisnu Pradana", "Backend Developer", "/static/img/team/adm.png"},
	},
}

func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home.html", homeContent)
}

func (h *PageHandler) NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "not_found.html", nil)
}
