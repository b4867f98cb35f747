package admin

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/rv-bit/blog-app-6cs028/internal/billing"
	"github.com/rv-bit/blog-app-6cs028/internal/http/flash"
	"github.com/rv-bit/blog-app-6cs028/internal/http/middleware"
	"github.com/rv-bit/blog-app-6cs028/internal/modules/pricing"
)

func newPricesRouter(mock *billing.Mock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	codec := flash.NewCodec([]byte("test-secret"), "flash", false)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger), middleware.FlashMiddleware(codec))

	h := NewPricesHandler(pricing.NewService(mock), codec)
	r.GET("/profile/admin/prices", h.List)
	r.GET("/profile/admin/prices/new", h.New)
	r.POST("/profile/admin/prices", h.Create)
	r.GET("/profile/admin/prices/:id/edit", h.Edit)
	r.POST("/profile/admin/prices/:id", h.Update)
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestPricesListRendersRows(t *testing.T) {
	mock := billing.NewMock()
	mock.Prices["price_1"] = billing.Price{
		ID: "price_1", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: true, Currency: "gbp", UnitAmount: 500,
	}
	r := newPricesRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/admin/prices", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{"price_1", "prod_1", "one_time", "per_unit", "Active"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	for _, col := range pricing.Columns {
		if !strings.Contains(body, col) {
			t.Errorf("header missing column %q", col)
		}
	}
	if strings.Contains(body, pricing.EmptyMessage) {
		t.Error("empty message shown alongside rows")
	}
}

func TestPricesListEmpty(t *testing.T) {
	r := newPricesRouter(billing.NewMock())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/admin/prices", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if got := strings.Count(body, pricing.EmptyMessage); got != 1 {
		t.Errorf("empty message appears %d times, want 1", got)
	}
	if !strings.Contains(body, `colspan="6"`) {
		t.Error("empty row does not span all columns")
	}
}

func TestPricesListSortByStatus(t *testing.T) {
	mock := billing.NewMock()
	mock.Prices["price_active"] = billing.Price{
		ID: "price_active", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: true, Currency: "gbp", UnitAmount: 100,
	}
	mock.Prices["price_inactive"] = billing.Price{
		ID: "price_inactive", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: false, Currency: "gbp", UnitAmount: 200,
	}
	r := newPricesRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/admin/prices?sort=status&dir=asc", nil)
	r.ServeHTTP(w, req)

	body := w.Body.String()
	active := strings.Index(body, "price_active")
	inactive := strings.Index(body, "price_inactive")
	if active == -1 || inactive == -1 {
		t.Fatal("rows missing from body")
	}
	if active > inactive {
		t.Error("ascending sort should list active rows first")
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/profile/admin/prices?sort=status&dir=desc", nil)
	r.ServeHTTP(w, req)

	body = w.Body.String()
	if strings.Index(body, "price_inactive") > strings.Index(body, "price_active") {
		t.Error("descending sort should list inactive rows first")
	}
}

func TestPriceCreateSuccess(t *testing.T) {
	mock := billing.NewMock()
	r := newPricesRouter(mock)

	w := postForm(r, "/profile/admin/prices", url.Values{
		"product_id": {"prod_1"},
		"name":       {"Standard"},
		"amount":     {"12.99"},
		"currency":   {"GBP"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != pricesPath {
		t.Errorf("Location = %q, want %q", loc, pricesPath)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "flash=") {
		t.Error("success redirect did not set the flash cookie")
	}

	if len(mock.CreatedPrices) != 1 {
		t.Fatalf("created %d prices, want 1", len(mock.CreatedPrices))
	}
	in := mock.CreatedPrices[0]
	if in.ProductID != "prod_1" || in.UnitAmount != 1299 || in.Currency != "GBP" || in.Type != "one_time" {
		t.Errorf("unexpected create input: %+v", in)
	}
	if in.Nickname != "Standard" {
		t.Errorf("Nickname = %q, want %q", in.Nickname, "Standard")
	}
}

func TestPriceCreateInvalidAmount(t *testing.T) {
	mock := billing.NewMock()
	r := newPricesRouter(mock)

	w := postForm(r, "/profile/admin/prices", url.Values{
		"product_id": {"prod_1"},
		"amount":     {"0"},
		"currency":   {"GBP"},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(w.Body.String(), "Amount must be greater than 0") {
		t.Error("body missing the amount error")
	}
	if mock.CreatePriceCalls != 0 {
		t.Errorf("CreatePrice called %d times on invalid input", mock.CreatePriceCalls)
	}
}

func TestPriceCreateAmountAboveCap(t *testing.T) {
	mock := billing.NewMock()
	r := newPricesRouter(mock)

	w := postForm(r, "/profile/admin/prices", url.Values{
		"product_id": {"prod_1"},
		"amount":     {"100000.00"},
		"currency":   {"GBP"},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(w.Body.String(), "Amount must be less than £100,000") {
		t.Error("body missing the cap error")
	}
}

func TestPriceCreateRejectsUnknownCurrency(t *testing.T) {
	mock := billing.NewMock()
	r := newPricesRouter(mock)

	w := postForm(r, "/profile/admin/prices", url.Values{
		"product_id": {"prod_1"},
		"amount":     {"5.00"},
		"currency":   {"JPY"},
	})

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if mock.CreatePriceCalls != 0 {
		t.Errorf("CreatePrice called %d times on invalid input", mock.CreatePriceCalls)
	}
}

func TestPriceEditPrefillsLiveValues(t *testing.T) {
	mock := billing.NewMock()
	mock.Prices["price_1"] = billing.Price{
		ID: "price_1", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: true, Currency: "gbp",
		UnitAmount: 1299, Nickname: "Standard",
	}
	r := newPricesRouter(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/admin/prices/price_1/edit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	for _, want := range []string{"12.99", "Standard"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestPriceEditNotFound(t *testing.T) {
	r := newPricesRouter(billing.NewMock())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profile/admin/prices/price_missing/edit", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestPriceUpdateEditsMutableFields(t *testing.T) {
	mock := billing.NewMock()
	mock.Prices["price_1"] = billing.Price{
		ID: "price_1", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: true, Currency: "gbp", UnitAmount: 1299,
	}
	r := newPricesRouter(mock)

	w := postForm(r, "/profile/admin/prices/price_1", url.Values{
		"name":       {"Renamed"},
		"lookup_key": {"standard_gbp"},
		"active":     {"true"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d, body: %s", w.Code, http.StatusSeeOther, w.Body.String())
	}
	got := mock.Prices["price_1"]
	if got.Nickname != "Renamed" || got.LookupKey != "standard_gbp" || !got.Active {
		t.Errorf("price after update: %+v", got)
	}
	if got.UnitAmount != 1299 || got.Currency != "gbp" {
		t.Errorf("immutable fields changed: %+v", got)
	}
}

func TestPriceUpdateTogglesActive(t *testing.T) {
	mock := billing.NewMock()
	mock.Prices["price_1"] = billing.Price{
		ID: "price_1", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: true, Currency: "gbp", UnitAmount: 1299,
	}
	r := newPricesRouter(mock)

	// Unchecked checkbox: no active field in the post body.
	w := postForm(r, "/profile/admin/prices/price_1", url.Values{
		"name": {"Standard"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if mock.Prices["price_1"].Active {
		t.Fatal("price still active after update without the active box")
	}

	w = postForm(r, "/profile/admin/prices/price_1", url.Values{
		"name":   {"Standard"},
		"active": {"true"},
	})
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	if !mock.Prices["price_1"].Active {
		t.Fatal("price not reactivated")
	}
}

func TestPriceUpdateClearsNickname(t *testing.T) {
	mock := billing.NewMock()
	mock.Prices["price_1"] = billing.Price{
		ID: "price_1", ProductID: "prod_1", Type: "one_time",
		BillingScheme: "per_unit", Active: true, Currency: "gbp",
		UnitAmount: 1299, Nickname: "Standard", LookupKey: "standard_gbp",
	}
	r := newPricesRouter(mock)

	w := postForm(r, "/profile/admin/prices/price_1", url.Values{
		"name":   {""},
		"active": {"true"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusSeeOther)
	}
	got := mock.Prices["price_1"]
	if got.Nickname != "" || got.LookupKey != "" {
		t.Errorf("fields not cleared: %+v", got)
	}
}
