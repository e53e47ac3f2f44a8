// Package renderer turns valuation results into markdown reports. The
// engine computes; this package only formats.
package renderer

import (
	"fmt"

	"github.com/etnz/valuation"
)

// money formats a float amount in the given currency for report cells.
func money(v float64, currency string) string {
	info := valuation.LookupCurrency(currency)
	return fmt.Sprintf("%s%.*f", info.Symbol, info.Decimals, v)
}

// signedMoney is money with an explicit sign, "-" for zero, matching the
// convention of the exact-money SignedString.
func signedMoney(v float64, currency string) string {
	if v == 0 {
		return "-"
	}
	if v > 0 {
		return "+" + money(v, currency)
	}
	return "-" + money(-v, currency)
}
