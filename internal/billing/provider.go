package billing

import (
	"context"
)

// Price is a read-only projection of the catalog's price object. Amounts are
// integer minor units; currency comes back exactly as the catalog stores it
// (lowercase ISO code).
type Price struct {
	ID            string
	ProductID     string
	Type          string // one_time|recurring
	BillingScheme string
	Active        bool
	Currency      string
	UnitAmount    int64
	Nickname      string
	LookupKey     string
}

type Product struct {
	ID             string
	Name           string
	Description    string
	Images         []string
	Active         bool
	DefaultPriceID string
}

type CreatePriceInput struct {
	ProductID   string
	Type        string // one_time|recurring
	UnitAmount  int64  // minor units
	Currency    string
	Nickname    string
	Description string // internal note, not shown to customers
	LookupKey   string
	SetDefault  bool // also make this the product's default price
}

// UpdatePriceInput edits the mutable fields of a price. Nil leaves a field
// untouched; a pointer to the zero value clears it.
type UpdatePriceInput struct {
	Nickname    *string
	Description *string
	LookupKey   *string
	Active      *bool
	SetDefault  bool
}

type CreateProductInput struct {
	Name        string
	Description string
	Images      []string
	// Default price created alongside the product
	PriceUnitAmount int64
	PriceCurrency   string
}

// Provider is the billing catalog: the external system of record for products
// and prices. Implementations must return ErrNotFound for missing objects so
// callers can tell a bad id from a dead upstream.
type Provider interface {
	Name() string
	RetrievePrice(ctx context.Context, id string) (Price, error)
	RetrieveProduct(ctx context.Context, id string) (Product, error)
	ListPrices(ctx context.Context, limit int) ([]Price, error)
	CreatePrice(ctx context.Context, in CreatePriceInput) (Price, error)
	UpdatePrice(ctx context.Context, id string, in UpdatePriceInput) (Price, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (Product, error)
}
