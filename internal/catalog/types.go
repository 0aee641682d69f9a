package catalog

const (
	CategoryFood     = "FOOD"
	CategoryBeverage = "BEVERAGE"
)

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Link string `json:"link"`
}

type NutritionFact struct {
	Energy         float64 `json:"energy"`
	SaturatedFat   float64 `json:"saturated_fat"`
	Sugar          float64 `json:"sugar"`
	Sodium         float64 `json:"sodium"`
	Protein        float64 `json:"protein"`
	Fiber          float64 `json:"fiber"`
	FruitVegetable float64 `json:"fruit_vegetable"`
}

type Product struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Brand             string         `json:"brand"`
	Photo             string         `json:"photo"`
	CategoryProductID int            `json:"category_product_id"`
	NutritionFactID   int            `json:"nutrition_fact_id"`
	Barcode           string         `json:"barcode"`
	PriceA            float64        `json:"price_a"`
	PriceB            float64        `json:"price_b"`
	LabelID           int            `json:"label_id"`
	NutriScore        float64        `json:"nutri_score"`
	Label             Label          `json:"label"`
	NutritionFact     *NutritionFact `json:"nutritionFact,omitempty"`
}

// Page is the canonical paged result every list/search response is reduced
// to, regardless of which envelope shape the backend used.
type Page struct {
	Items       []Product `json:"items"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
}
