package pricing

import (
	"github.com/rv-bit/blog-app-6cs028/internal/shared/money"
)

const (
	TypeOneTime   = "one_time"
	TypeRecurring = "recurring"

	// Exclusive ceiling for unit_amount_decimal: £100,000 in pence.
	MaxUnitAmount = 10_000_000
)

var Currencies = []string{"GBP", "USD", "EUR"}

type Options struct {
	Description string `json:"description,omitempty"`
	LookupKey   string `json:"lookup_key,omitempty"`
}

// Payload is the validated price create/update payload. Amounts are integer
// minor units; the UI-facing major-unit string is converted at the setter.
type Payload struct {
	Name              string  `json:"name,omitempty"`
	Type              string  `json:"type"`
	UnitAmountDecimal int64   `json:"unit_amount_decimal"`
	Currency          string  `json:"currency"`
	Default           bool    `json:"default,omitempty"`
	Active            *bool   `json:"active,omitempty"` // nil: leave as-is (new prices start active)
	Options           Options `json:"options,omitempty"`
}

type FieldErrors map[string]string

// Form is the price form's explicit state: current values plus field errors,
// re-validated on every change. It performs no I/O; a valid submission is
// handed to the caller's callbacks and persistence stays their problem.
type Form struct {
	values   Payload
	errs     FieldErrors
	defaults Payload

	onSubmitChanges func(Payload)
	onClose         func()
}

// NewForm builds a form pre-populated from data (edit mode) or from the fixed
// defaults (create mode: one_time, GBP, amount 0).
func NewForm(data *Payload, onSubmitChanges func(Payload), onClose func()) *Form {
	defaults := Payload{Type: TypeOneTime, Currency: "GBP"}
	if data != nil {
		defaults = *data
		if defaults.Type == "" {
			defaults.Type = TypeOneTime
		}
		if defaults.Currency == "" {
			defaults.Currency = "GBP"
		}
	}

	f := &Form{
		values:          defaults,
		defaults:        defaults,
		onSubmitChanges: onSubmitChanges,
		onClose:         onClose,
	}
	f.validate()
	return f
}

func (f *Form) SetName(name string) {
	f.values.Name = name
	f.validate()
}

func (f *Form) SetType(t string) {
	f.values.Type = t
	f.validate()
}

// SetAmount takes the major-unit decimal string from the amount widget and
// stores it rounded to the nearest cent. Unparseable input counts as zero,
// which validation then flags.
func (f *Form) SetAmount(major string) {
	cents, err := money.ParseMajor(major)
	if err != nil {
		cents = 0
	}
	f.values.UnitAmountDecimal = cents
	f.validate()
}

// SetAmountMinor stores an already-converted minor-unit amount.
func (f *Form) SetAmountMinor(cents int64) {
	f.values.UnitAmountDecimal = cents
	f.validate()
}

func (f *Form) SetCurrency(c string) {
	f.values.Currency = c
	f.validate()
}

func (f *Form) SetDescription(s string) {
	f.values.Options.Description = s
	f.validate()
}

func (f *Form) SetLookupKey(s string) {
	f.values.Options.LookupKey = s
	f.validate()
}

func (f *Form) SetDefault(b bool) {
	f.values.Default = b
	f.validate()
}

func (f *Form) SetActive(b bool) {
	f.values.Active = &b
	f.validate()
}

func (f *Form) Values() Payload { return f.values }

func (f *Form) Valid() bool { return len(f.errs) == 0 }

func (f *Form) Errors() FieldErrors {
	out := make(FieldErrors, len(f.errs))
	for k, v := range f.errs {
		out[k] = v
	}
	return out
}

// Submit hands the validated payload to onSubmitChanges, then calls onClose if
// set, then resets the form to its construction-time defaults. Blocked while
// any field error is outstanding.
func (f *Form) Submit() error {
	if !f.Valid() {
		return &InvalidError{Fields: f.Errors()}
	}

	if f.onSubmitChanges != nil {
		f.onSubmitChanges(f.values)
	}
	if f.onClose != nil {
		f.onClose()
	}

	f.values = f.defaults
	f.validate()
	return nil
}

func (f *Form) validate() {
	errs := FieldErrors{}

	switch f.values.Type {
	case TypeOneTime, TypeRecurring:
	default:
		errs["type"] = "Select a price type"
	}

	if f.values.UnitAmountDecimal <= 0 {
		errs["unit_amount_decimal"] = "Amount must be greater than 0"
	} else if f.values.UnitAmountDecimal >= MaxUnitAmount {
		errs["unit_amount_decimal"] = "Amount must be less than £100,000"
	}

	if !validCurrency(f.values.Currency) {
		errs["currency"] = "Select a supported currency"
	}

	f.errs = errs
}

func validCurrency(c string) bool {
	for _, cur := range Currencies {
		if c == cur {
			return true
		}
	}
	return false
}
