package billing

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Mock is an in-memory Provider used in tests and for local development
// (BILLING_DRIVER=mock). Call counters let tests assert that a code path
// never reached the catalog.
type Mock struct {
	mu sync.Mutex

	Prices   map[string]Price
	Products map[string]Product
	Err      error // returned from every call when set

	RetrievePriceCalls   int
	RetrieveProductCalls int
	ListPricesCalls      int
	CreatePriceCalls     int
	UpdatePriceCalls     int
	CreateProductCalls   int

	CreatedPrices   []CreatePriceInput
	CreatedProducts []CreateProductInput

	seq int
}

func NewMock() *Mock {
	return &Mock{
		Prices:   map[string]Price{},
		Products: map[string]Product{},
	}
}

func (m *Mock) Name() string { return "mock" }

func (m *Mock) RetrievePrice(ctx context.Context, id string) (Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RetrievePriceCalls++
	if m.Err != nil {
		return Price{}, m.Err
	}
	p, ok := m.Prices[id]
	if !ok {
		return Price{}, ErrNotFound
	}
	return p, nil
}

func (m *Mock) RetrieveProduct(ctx context.Context, id string) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RetrieveProductCalls++
	if m.Err != nil {
		return Product{}, m.Err
	}
	p, ok := m.Products[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (m *Mock) ListPrices(ctx context.Context, limit int) ([]Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListPricesCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]Price, 0, len(m.Prices))
	for _, p := range m.Prices {
		out = append(out, p)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Mock) CreatePrice(ctx context.Context, in CreatePriceInput) (Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePriceCalls++
	if m.Err != nil {
		return Price{}, m.Err
	}
	m.CreatedPrices = append(m.CreatedPrices, in)
	m.seq++
	p := Price{
		ID:            fmt.Sprintf("price_mock_%d", m.seq),
		ProductID:     in.ProductID,
		Type:          in.Type,
		BillingScheme: "per_unit",
		Active:        true,
		Currency:      strings.ToLower(in.Currency),
		UnitAmount:    in.UnitAmount,
		Nickname:      in.Nickname,
		LookupKey:     in.LookupKey,
	}
	m.Prices[p.ID] = p
	return p, nil
}

func (m *Mock) UpdatePrice(ctx context.Context, id string, in UpdatePriceInput) (Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatePriceCalls++
	if m.Err != nil {
		return Price{}, m.Err
	}
	p, ok := m.Prices[id]
	if !ok {
		return Price{}, ErrNotFound
	}
	if in.Nickname != nil {
		p.Nickname = *in.Nickname
	}
	if in.LookupKey != nil {
		p.LookupKey = *in.LookupKey
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	m.Prices[id] = p
	return p, nil
}

func (m *Mock) CreateProduct(ctx context.Context, in CreateProductInput) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateProductCalls++
	if m.Err != nil {
		return Product{}, m.Err
	}
	m.CreatedProducts = append(m.CreatedProducts, in)
	m.seq++
	p := Product{
		ID:          fmt.Sprintf("prod_mock_%d", m.seq),
		Name:        in.Name,
		Description: in.Description,
		Images:      in.Images,
		Active:      true,
	}
	if in.PriceUnitAmount > 0 {
		m.seq++
		dp := Price{
			ID:            fmt.Sprintf("price_mock_%d", m.seq),
			ProductID:     p.ID,
			Type:          "one_time",
			BillingScheme: "per_unit",
			Active:        true,
			Currency:      strings.ToLower(in.PriceCurrency),
			UnitAmount:    in.PriceUnitAmount,
		}
		m.Prices[dp.ID] = dp
		p.DefaultPriceID = dp.ID
	}
	m.Products[p.ID] = p
	return p, nil
}
