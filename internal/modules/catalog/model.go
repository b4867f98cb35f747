package catalog

import "time"

// Product is the local row behind a storefront product page. The catalog
// (Stripe) owns name/description/images/price; we only keep the identifiers
// needed to look them up, plus data the catalog has no home for.
type Product struct {
	ID              string    `gorm:"primaryKey;type:char(36)"`
	StripeProductID string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_products_stripe_product_id"`
	StripePriceID   string    `gorm:"type:varchar(64);not null"`
	Slug            string    `gorm:"type:varchar(255);not null;index:ix_products_slug"`
	CategoryID      int       `gorm:"not null"`
	Nutrition       []byte    `gorm:"column:nutrition_json;type:json"`
	CreatedAt       time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt       time.Time `gorm:"type:datetime(3);not null"`
}

func (Product) TableName() string { return "products" }

func (p Product) Category() Category { return Category(p.CategoryID) }
