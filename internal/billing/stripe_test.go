package billing

import (
	"errors"
	"testing"

	stripe "github.com/stripe/stripe-go/v79"
)

func TestFromStripePrice(t *testing.T) {
	p := &stripe.Price{
		ID:            "price_1",
		Type:          stripe.PriceTypeOneTime,
		BillingScheme: stripe.PriceBillingSchemePerUnit,
		Active:        true,
		Currency:      stripe.CurrencyGBP,
		UnitAmount:    1299,
		Nickname:      "Standard",
		LookupKey:     "standard_gbp",
		Product:       &stripe.Product{ID: "prod_1"},
	}

	got := fromStripePrice(p)

	want := Price{
		ID:            "price_1",
		ProductID:     "prod_1",
		Type:          "one_time",
		BillingScheme: "per_unit",
		Active:        true,
		Currency:      "gbp",
		UnitAmount:    1299,
		Nickname:      "Standard",
		LookupKey:     "standard_gbp",
	}
	if got != want {
		t.Errorf("fromStripePrice = %+v, want %+v", got, want)
	}
}

func TestFromStripePriceNilProduct(t *testing.T) {
	got := fromStripePrice(&stripe.Price{ID: "price_1"})
	if got.ProductID != "" {
		t.Errorf("ProductID = %q, want empty", got.ProductID)
	}
}

func TestFromStripeProduct(t *testing.T) {
	p := &stripe.Product{
		ID:           "prod_1",
		Name:         "Chocolate Bar",
		Description:  "Dark, 70%.",
		Images:       []string{"https://cdn.test/img.png"},
		Active:       true,
		DefaultPrice: &stripe.Price{ID: "price_1"},
	}

	got := fromStripeProduct(p)

	if got.ID != "prod_1" || got.Name != "Chocolate Bar" || got.DefaultPriceID != "price_1" {
		t.Errorf("fromStripeProduct = %+v", got)
	}
	if len(got.Images) != 1 || got.Images[0] != "https://cdn.test/img.png" {
		t.Errorf("Images = %v", got.Images)
	}
}

func TestMapErr(t *testing.T) {
	if mapErr(nil) != nil {
		t.Error("mapErr(nil) != nil")
	}

	missing := &stripe.Error{Code: stripe.ErrorCodeResourceMissing}
	if !errors.Is(mapErr(missing), ErrNotFound) {
		t.Error("resource_missing should map to ErrNotFound")
	}

	other := &stripe.Error{Code: stripe.ErrorCodeRateLimit}
	if errors.Is(mapErr(other), ErrNotFound) {
		t.Error("non-missing codes must not map to ErrNotFound")
	}
}
