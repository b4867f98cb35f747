package pricing

import (
	"context"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
)

// Service persists validated price payloads through the billing catalog. It is
// the onSubmitChanges side of the form contract.
type Service struct {
	provider billing.Provider
}

func NewService(provider billing.Provider) *Service {
	return &Service{provider: provider}
}

func (s *Service) List(ctx context.Context, limit int) ([]billing.Price, error) {
	return s.provider.ListPrices(ctx, limit)
}

func (s *Service) Get(ctx context.Context, id string) (billing.Price, error) {
	return s.provider.RetrievePrice(ctx, id)
}

func (s *Service) Create(ctx context.Context, productID string, p Payload) (billing.Price, error) {
	return s.provider.CreatePrice(ctx, billing.CreatePriceInput{
		ProductID:   productID,
		Type:        p.Type,
		UnitAmount:  p.UnitAmountDecimal,
		Currency:    p.Currency,
		Nickname:    p.Name,
		Description: p.Options.Description,
		LookupKey:   p.Options.LookupKey,
		SetDefault:  p.Default,
	})
}

// Update edits the mutable fields of an existing price. Amount and currency
// are immutable upstream; changing them means creating a new price. The
// payload carries the whole form, so empty values clear their fields.
func (s *Service) Update(ctx context.Context, id string, p Payload) (billing.Price, error) {
	return s.provider.UpdatePrice(ctx, id, billing.UpdatePriceInput{
		Nickname:    &p.Name,
		Description: &p.Options.Description,
		LookupKey:   &p.Options.LookupKey,
		Active:      p.Active,
		SetDefault:  p.Default,
	})
}
