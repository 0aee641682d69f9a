package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type ProductForm struct {
	Name              string `form:"name" validate:"required"`
	Brand             string `form:"brand" validate:"required"`
	Barcode           string `form:"barcode" validate:"required"`
	PriceA            string `form:"price_a" validate:"required"`
	PriceB            string `form:"price_b" validate:"required"`
	CategoryProductID string `form:"category_product_id" validate:"required,number"`
	Energy            string `form:"energy" validate:"required"`
	SaturatedFat      string `form:"saturated_fat" validate:"required"`
	Sugar             string `form:"sugar" validate:"required"`
	Sodium            string `form:"sodium" validate:"required"`
	Protein           string `form:"protein" validate:"required"`
	Fiber             string `form:"fiber" validate:"required"`
	FruitVegetable    string `form:"fruit_vegetable" validate:"required"`
}

// Check runs the declarative rule set and returns a user-facing message for
// the first violated rule, or "" when the form is valid. Validation happens
// before any network call.
func Check(form any) string {
	err := validate.Struct(form)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid form submission."
	}
	first := errs[0]
	field := fieldLabel(first.Field())
	switch first.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	case "number":
		return fmt.Sprintf("%s must be a number.", field)
	}
	return fmt.Sprintf("%s is invalid.", field)
}

func fieldLabel(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
