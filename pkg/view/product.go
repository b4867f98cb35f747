package view

import "encoding/json"

// Product is the merged product page view model: local row + live catalog
// data. Assembled per request and discarded, never persisted.
type Product struct {
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name"`
	ProductDescription  string          `json:"product_description"`
	ProductPriceID      string          `json:"product_price_id"`
	ProductPrice        int64           `json:"product_price"` // minor units
	ProductCurrency     string          `json:"product_currency"`
	ProductImages       []string        `json:"product_images"`
	ProductCategorySlug string          `json:"product_category_slug"`
	ProductNutrition    json.RawMessage `json:"product_nutrition"`
}
