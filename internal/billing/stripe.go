package billing

import (
	"context"
	"errors"
	"strings"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Stripe implements Provider on the official SDK. One API client per process;
// calls carry the request context so upstream deadlines apply.
type Stripe struct {
	sc *client.API
}

func NewStripe(secretKey string) *Stripe {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Stripe{sc: sc}
}

func (s *Stripe) Name() string { return "stripe" }

func (s *Stripe) RetrievePrice(ctx context.Context, id string) (Price, error) {
	p, err := s.sc.Prices.Get(id, &stripe.PriceParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return Price{}, mapErr(err)
	}
	return fromStripePrice(p), nil
}

func (s *Stripe) RetrieveProduct(ctx context.Context, id string) (Product, error) {
	p, err := s.sc.Products.Get(id, &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return Product{}, mapErr(err)
	}
	return fromStripeProduct(p), nil
}

func (s *Stripe) ListPrices(ctx context.Context, limit int) ([]Price, error) {
	params := &stripe.PriceListParams{
		ListParams: stripe.ListParams{Context: ctx},
	}
	if limit > 0 {
		params.Limit = stripe.Int64(int64(limit))
	}

	var out []Price
	iter := s.sc.Prices.List(params)
	for iter.Next() {
		out = append(out, fromStripePrice(iter.Price()))
	}
	if err := iter.Err(); err != nil {
		return nil, mapErr(err)
	}
	return out, nil
}

func (s *Stripe) CreatePrice(ctx context.Context, in CreatePriceInput) (Price, error) {
	params := &stripe.PriceParams{
		Params:     stripe.Params{Context: ctx},
		Product:    stripe.String(in.ProductID),
		Currency:   stripe.String(strings.ToLower(in.Currency)),
		UnitAmount: stripe.Int64(in.UnitAmount),
	}
	if in.Type == "recurring" {
		params.Recurring = &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
	}
	if in.Nickname != "" {
		params.Nickname = stripe.String(in.Nickname)
	}
	if in.LookupKey != "" {
		params.LookupKey = stripe.String(in.LookupKey)
	}
	if in.Description != "" {
		params.AddMetadata("description", in.Description)
	}

	p, err := s.sc.Prices.New(params)
	if err != nil {
		return Price{}, mapErr(err)
	}

	if in.SetDefault {
		if err := s.setDefaultPrice(ctx, in.ProductID, p.ID); err != nil {
			return Price{}, err
		}
	}
	return fromStripePrice(p), nil
}

func (s *Stripe) UpdatePrice(ctx context.Context, id string, in UpdatePriceInput) (Price, error) {
	params := &stripe.PriceParams{
		Params: stripe.Params{Context: ctx},
	}
	if in.Nickname != nil {
		params.Nickname = stripe.String(*in.Nickname)
	}
	if in.LookupKey != nil {
		params.LookupKey = stripe.String(*in.LookupKey)
	}
	if in.Description != nil {
		params.AddMetadata("description", *in.Description)
	}
	if in.Active != nil {
		params.Active = stripe.Bool(*in.Active)
	}

	p, err := s.sc.Prices.Update(id, params)
	if err != nil {
		return Price{}, mapErr(err)
	}

	if in.SetDefault && p.Product != nil {
		if err := s.setDefaultPrice(ctx, p.Product.ID, p.ID); err != nil {
			return Price{}, err
		}
	}
	return fromStripePrice(p), nil
}

func (s *Stripe) CreateProduct(ctx context.Context, in CreateProductInput) (Product, error) {
	params := &stripe.ProductParams{
		Params: stripe.Params{Context: ctx},
		Name:   stripe.String(in.Name),
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	if len(in.Images) > 0 {
		params.Images = stripe.StringSlice(in.Images)
	}
	if in.PriceUnitAmount > 0 {
		params.DefaultPriceData = &stripe.ProductDefaultPriceDataParams{
			Currency:   stripe.String(strings.ToLower(in.PriceCurrency)),
			UnitAmount: stripe.Int64(in.PriceUnitAmount),
		}
	}

	p, err := s.sc.Products.New(params)
	if err != nil {
		return Product{}, mapErr(err)
	}
	return fromStripeProduct(p), nil
}

func (s *Stripe) setDefaultPrice(ctx context.Context, productID, priceID string) error {
	_, err := s.sc.Products.Update(productID, &stripe.ProductParams{
		Params:       stripe.Params{Context: ctx},
		DefaultPrice: stripe.String(priceID),
	})
	return mapErr(err)
}

func fromStripePrice(p *stripe.Price) Price {
	out := Price{
		ID:            p.ID,
		Type:          string(p.Type),
		BillingScheme: string(p.BillingScheme),
		Active:        p.Active,
		Currency:      string(p.Currency),
		UnitAmount:    p.UnitAmount,
		Nickname:      p.Nickname,
		LookupKey:     p.LookupKey,
	}
	if p.Product != nil {
		out.ProductID = p.Product.ID
	}
	return out
}

func fromStripeProduct(p *stripe.Product) Product {
	out := Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      p.Images,
		Active:      p.Active,
	}
	if p.DefaultPrice != nil {
		out.DefaultPriceID = p.DefaultPrice.ID
	}
	return out
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var se *stripe.Error
	if errors.As(err, &se) && se.Code == stripe.ErrorCodeResourceMissing {
		return ErrNotFound
	}
	return err
}
