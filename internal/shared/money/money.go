package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrNotANumber = errors.New("money: not a number")

var hundred = decimal.NewFromInt(100)

// ParseMajor converts a major-unit decimal string ("12.345") into integer minor
// units, rounding half up to the nearest cent (12.345 -> 1235). Amounts are
// held as integer cents everywhere past the input boundary.
func ParseMajor(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	return d.Mul(hundred).Round(0).IntPart(), nil
}

// FormatMinor renders integer cents with a currency symbol. E.g. 1000 GBP -> "£10.00".
func FormatMinor(currency string, cents int64) string {
	major := float64(cents) / 100.0
	switch currency {
	case "GBP":
		return fmt.Sprintf("£%.2f", major)
	case "USD":
		return fmt.Sprintf("$%.2f", major)
	case "EUR":
		return fmt.Sprintf("€%.2f", major)
	default:
		return fmt.Sprintf("%.2f %s", major, currency)
	}
}
