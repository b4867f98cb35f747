package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
	"github.com/rv-bit/blog-app-6cs028/pkg/view"
)

type Service struct {
	repo     Repository
	provider billing.Provider
}

func NewService(repo Repository, provider billing.Provider) *Service {
	return &Service{repo: repo, provider: provider}
}

// Detail resolves a catalog product id to the merged, render-ready view model:
// the local row joined with the live price and product objects. Nothing is
// cached; every call recomputes the merge.
func (s *Service) Detail(ctx context.Context, productID string) (view.Product, error) {
	row, err := s.repo.GetByStripeProductID(ctx, productID)
	if err != nil {
		return view.Product{}, err
	}

	// The row existing means its stripe ids are trusted; any failure past this
	// point is an upstream error, never a 404.
	price, err := s.provider.RetrievePrice(ctx, row.StripePriceID)
	if err != nil {
		return view.Product{}, fmt.Errorf("%w: retrieve price %s: %v", ErrCatalogUnavailable, row.StripePriceID, err)
	}
	product, err := s.provider.RetrieveProduct(ctx, row.StripeProductID)
	if err != nil {
		return view.Product{}, fmt.Errorf("%w: retrieve product %s: %v", ErrCatalogUnavailable, row.StripeProductID, err)
	}

	categorySlug, err := row.Category().Slug()
	if err != nil {
		return view.Product{}, err
	}

	return view.Product{
		ProductID:           row.StripeProductID,
		ProductName:         product.Name,
		ProductDescription:  product.Description,
		ProductPriceID:      row.StripePriceID,
		ProductPrice:        price.UnitAmount, // minor units, passed through unmodified
		ProductCurrency:     price.Currency,
		ProductImages:       product.Images,
		ProductCategorySlug: categorySlug,
		ProductNutrition:    json.RawMessage(row.Nutrition),
	}, nil
}
