package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/valuation"
)

// BondMarkdown renders a bond holding's valuation as a markdown section.
func BondMarkdown(name string, terms valuation.BondTerms, m valuation.BondMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Bond %s\n\n", name)
	fmt.Fprintf(&b, "%.2f%% coupon, %s, %s, maturing %s\n\n",
		terms.CouponRate, terms.Frequency, terms.DayCount, terms.Maturity)

	fmt.Fprintln(&b, "| Quantity | Cost Basis | Market Value | Accrued | Dirty Price | YTM (approx) |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %.2f | %s | %s | %s | %s | %s |\n",
		m.OpenQuantity,
		money(m.CostBasis, terms.Currency),
		money(m.MarketValue, terms.Currency),
		money(m.AccruedInterest, terms.Currency),
		money(m.DirtyPrice, terms.Currency),
		m.YTM,
	)

	if !m.NextCoupon.IsZero() {
		fmt.Fprintf(&b, "\nNext coupon %s on %s.\n",
			money(m.CouponPayment, terms.Currency), m.NextCoupon)
	}

	return b.String()
}
