package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/valuation"
)

// PropertyMarkdown renders a real-estate position's valuation as a markdown
// section.
func PropertyMarkdown(name string, terms valuation.PropertyTerms, m valuation.PropertyMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Property %s\n\n", name)
	fmt.Fprintf(&b, "Purchased %s for %s, valued %s as of %s\n\n",
		terms.Acquisition.PurchaseDate,
		money(terms.Acquisition.PurchasePrice, terms.Currency),
		money(terms.Valuation.CurrentValue, terms.Currency),
		terms.Valuation.AsOf,
	)

	fmt.Fprintln(&b, "| Cost Basis | Equity | NOI | Cap Rate | Cash Flow /mo | Appreciation /yr |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
		money(m.CostBasis, terms.Currency),
		money(m.Equity, terms.Currency),
		money(m.NOI, terms.Currency),
		m.CapRate,
		signedMoney(m.MonthlyCashFlow, terms.Currency),
		m.Appreciation.SignedString(),
	)

	if terms.Financing.Mortgaged {
		fmt.Fprintf(&b, "\nMortgage payment %s, LTV %s",
			money(m.MortgagePayment, terms.Currency), m.LoanToValue)
		if !math.IsInf(m.DSCR, 1) {
			fmt.Fprintf(&b, ", DSCR %.2f", m.DSCR)
		}
		fmt.Fprintln(&b, ".")
	}

	return b.String()
}
