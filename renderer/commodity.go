package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/valuation"
)

// CommodityMarkdown renders a commodity position's valuation as a markdown
// section.
func CommodityMarkdown(name string, terms valuation.CommodityTerms, m valuation.CommodityMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Commodity %s\n\n", name)
	switch terms.Mode {
	case valuation.SpotCommodity:
		fmt.Fprintf(&b, "%.4f %s at entry %s\n\n",
			terms.Units, terms.UnitType, money(terms.EntryPrice, terms.Currency))
	case valuation.FuturesCommodity:
		fmt.Fprintf(&b, "%.0f × %s contracts (multiplier %.0f) at entry %s\n\n",
			terms.Contracts, terms.ContractCode, terms.Multiplier,
			money(terms.EntryPrice, terms.Currency))
	}

	fmt.Fprintln(&b, "| Notional | Mark P/L |")
	fmt.Fprintln(&b, "|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s |\n",
		money(m.Notional, terms.Currency),
		signedMoney(m.MarkPL, terms.Currency),
	)

	if !m.Expiry.IsZero() {
		fmt.Fprintf(&b, "\nExpires %s (%d days).\n", m.Expiry, m.DaysToExpiry)
	}

	return b.String()
}
