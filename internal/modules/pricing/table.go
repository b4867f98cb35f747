package pricing

import (
	"sort"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
)

// EmptyMessage is the single full-width row shown when there are no prices.
const EmptyMessage = "No results."

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Columns, in render order. Only the status column is sortable.
var Columns = []string{"Price Id", "Product Id", "Type", "Billing Scheme", "Status", "Actions"}

type Row struct {
	ID            string
	ProductID     string
	Type          string
	BillingScheme string
	Status        string // derived from active
	Active        bool
}

// Table is a read-only, sortable view over the catalog's price list. It never
// fetches or mutates anything; rows come in through the constructor.
type Table struct {
	rows []billing.Price
}

func NewTable(prices []billing.Price) *Table {
	rows := make([]billing.Price, len(prices))
	copy(rows, prices)
	return &Table{rows: rows}
}

func (t *Table) Len() int { return len(t.rows) }

// SortByStatus orders rows Active before Inactive (reversed when desc). The
// sort is stable: ties keep their original relative order.
func (t *Table) SortByStatus(desc bool) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		a, b := statusRank(t.rows[i]), statusRank(t.rows[j])
		if desc {
			return a > b
		}
		return a < b
	})
}

func (t *Table) Rows() []Row {
	out := make([]Row, 0, len(t.rows))
	for _, p := range t.rows {
		out = append(out, Row{
			ID:            p.ID,
			ProductID:     p.ProductID,
			Type:          p.Type,
			BillingScheme: p.BillingScheme,
			Status:        statusLabel(p.Active),
			Active:        p.Active,
		})
	}
	return out
}

func statusLabel(active bool) string {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// Explicit ["Active", "Inactive"] ordering.
func statusRank(p billing.Price) int {
	if p.Active {
		return 0
	}
	return 1
}
