package pricing

import (
	"testing"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
)

func samplePrices() []billing.Price {
	return []billing.Price{
		{ID: "price_a", ProductID: "prod_1", Type: "one_time", BillingScheme: "per_unit", Active: true},
		{ID: "price_b", ProductID: "prod_1", Type: "one_time", BillingScheme: "per_unit", Active: false},
		{ID: "price_c", ProductID: "prod_2", Type: "recurring", BillingScheme: "per_unit", Active: true},
	}
}

func TestTableDefaultOrderAndLabels(t *testing.T) {
	tbl := NewTable(samplePrices())
	rows := tbl.Rows()

	if len(rows) != 3 {
		t.Fatalf("rows = %d", len(rows))
	}
	// Default: unsorted, input order preserved.
	if rows[0].ID != "price_a" || rows[1].ID != "price_b" || rows[2].ID != "price_c" {
		t.Errorf("input order not preserved: %v", ids(rows))
	}
	if rows[0].Status != StatusActive || rows[1].Status != StatusInactive {
		t.Errorf("status labels wrong: %q %q", rows[0].Status, rows[1].Status)
	}
}

func TestTableSortByStatusStable(t *testing.T) {
	tbl := NewTable(samplePrices())
	tbl.SortByStatus(false)

	got := ids(tbl.Rows())
	// Active rows first, original relative order kept within each group.
	want := []string{"price_a", "price_c", "price_b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("asc sort = %v, want %v", got, want)
		}
	}

	tbl.SortByStatus(true)
	got = ids(tbl.Rows())
	want = []string{"price_b", "price_a", "price_c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("desc sort = %v, want %v", got, want)
		}
	}
}

func TestTableDoesNotMutateInput(t *testing.T) {
	in := samplePrices()
	tbl := NewTable(in)
	tbl.SortByStatus(true)
	if in[0].ID != "price_a" {
		t.Fatal("caller's slice was reordered")
	}
}

func TestTableEmpty(t *testing.T) {
	tbl := NewTable(nil)
	if tbl.Len() != 0 {
		t.Fatalf("Len = %d", tbl.Len())
	}
	if rows := tbl.Rows(); len(rows) != 0 {
		t.Fatalf("Rows = %v", rows)
	}
	if EmptyMessage != "No results." {
		t.Fatalf("empty message = %q", EmptyMessage)
	}
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
