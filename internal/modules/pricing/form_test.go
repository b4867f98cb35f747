package pricing

import (
	"errors"
	"testing"
)

func TestFormDefaults(t *testing.T) {
	f := NewForm(nil, nil, nil)
	v := f.Values()
	if v.Type != TypeOneTime || v.Currency != "GBP" || v.UnitAmountDecimal != 0 {
		t.Fatalf("unexpected defaults: %+v", v)
	}
	if f.Valid() {
		t.Fatal("zero amount must not validate")
	}
}

func TestFormAmountBounds(t *testing.T) {
	cases := []struct {
		cents int64
		valid bool
	}{
		{0, false},
		{-1, false},
		{1, true},
		{9_999_999, true},
		{10_000_000, false},
		{20_000_000, false},
	}
	for _, c := range cases {
		f := NewForm(nil, nil, nil)
		f.SetAmountMinor(c.cents)
		if got := f.Valid(); got != c.valid {
			t.Errorf("amount %d: valid = %v, want %v (errors: %v)", c.cents, got, c.valid, f.Errors())
		}
	}
}

func TestFormAmountRounding(t *testing.T) {
	f := NewForm(nil, nil, nil)
	f.SetAmount("12.345")
	if got := f.Values().UnitAmountDecimal; got != 1235 {
		t.Fatalf("stored cents = %d, want 1235", got)
	}
	f.SetAmount("0.994")
	if got := f.Values().UnitAmountDecimal; got != 99 {
		t.Fatalf("stored cents = %d, want 99", got)
	}
	f.SetAmount("not a number")
	if got := f.Values().UnitAmountDecimal; got != 0 {
		t.Fatalf("garbage input must store 0, got %d", got)
	}
	if f.Valid() {
		t.Fatal("zero amount after garbage input must not validate")
	}
}

func TestFormCurrencyEnum(t *testing.T) {
	for _, cur := range []string{"GBP", "USD", "EUR"} {
		f := NewForm(nil, nil, nil)
		f.SetAmount("5")
		f.SetCurrency(cur)
		if !f.Valid() {
			t.Errorf("currency %s must validate, errors: %v", cur, f.Errors())
		}
	}
	f := NewForm(nil, nil, nil)
	f.SetAmount("5")
	f.SetCurrency("JPY")
	if f.Valid() {
		t.Error("JPY is outside the currency enum")
	}
	if _, ok := f.Errors()["currency"]; !ok {
		t.Error("expected a currency field error")
	}
}

func TestFormTypeEnum(t *testing.T) {
	f := NewForm(nil, nil, nil)
	f.SetAmount("5")
	f.SetType(TypeRecurring)
	if !f.Valid() {
		t.Errorf("recurring is a legal payload type, errors: %v", f.Errors())
	}
	f.SetType("weekly")
	if f.Valid() {
		t.Error("unknown type must not validate")
	}
}

func TestFormSubmitBlockedWhileInvalid(t *testing.T) {
	called := 0
	f := NewForm(nil, func(Payload) { called++ }, nil)

	err := f.Submit()
	var ie *InvalidError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidError, got %v", err)
	}
	if _, ok := ie.Fields["unit_amount_decimal"]; !ok {
		t.Errorf("expected amount field error, got %v", ie.Fields)
	}
	if called != 0 {
		t.Fatal("onSubmitChanges must not run for an invalid form")
	}
}

func TestFormSubmitCallbackOrderAndReset(t *testing.T) {
	var order []string
	var got Payload

	f := NewForm(nil, func(p Payload) {
		order = append(order, "submit")
		got = p
	}, func() {
		order = append(order, "close")
	})

	f.SetName("Large bowl")
	f.SetAmount("12.50")
	f.SetCurrency("EUR")
	f.SetDescription("summer pricing")
	f.SetLookupKey("bowl_large")
	f.SetDefault(true)

	if err := f.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(order) != 2 || order[0] != "submit" || order[1] != "close" {
		t.Fatalf("callback order = %v, want [submit close]", order)
	}

	want := Payload{
		Name:              "Large bowl",
		Type:              TypeOneTime,
		UnitAmountDecimal: 1250,
		Currency:          "EUR",
		Default:           true,
		Options:           Options{Description: "summer pricing", LookupKey: "bowl_large"},
	}
	if got != want {
		t.Fatalf("payload = %+v, want %+v", got, want)
	}

	// Reset back to construction-time defaults.
	v := f.Values()
	if v.Type != TypeOneTime || v.Currency != "GBP" || v.UnitAmountDecimal != 0 || v.Name != "" {
		t.Fatalf("form not reset: %+v", v)
	}
}

func TestFormEditModePrefillAndReset(t *testing.T) {
	data := &Payload{
		Name:              "Standard",
		Type:              TypeOneTime,
		UnitAmountDecimal: 999,
		Currency:          "USD",
	}
	f := NewForm(data, func(Payload) {}, nil)

	if v := f.Values(); v.UnitAmountDecimal != 999 || v.Currency != "USD" {
		t.Fatalf("prefill lost: %+v", v)
	}

	f.SetAmount("20")
	if err := f.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Edit-mode reset returns to the record's values, not the blank form.
	if v := f.Values(); v.UnitAmountDecimal != 999 || v.Name != "Standard" {
		t.Fatalf("edit form must reset to its own defaults: %+v", v)
	}
}
