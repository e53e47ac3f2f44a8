package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/valuation"
)

// CashMarkdown renders an interest-bearing cash account as a markdown
// section.
func CashMarkdown(name string, terms valuation.CashTerms, m valuation.CashMetrics) string {
	var b strings.Builder

	info := valuation.LookupCurrency(terms.Currency)
	fmt.Fprintf(&b, "# Cash %s\n\n", name)
	fmt.Fprintf(&b, "%s (%s), %.2f%% APY compounded %s\n\n",
		info.Name, info.Code, terms.APY, terms.Compounding)

	fmt.Fprintln(&b, "| Principal | Effective Rate | Value in 1 Year |")
	fmt.Fprintln(&b, "|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s |\n",
		money(terms.Principal, terms.Currency),
		m.EffectiveRate,
		money(m.FutureValueOneYear, terms.Currency),
	)

	if !m.NextCredit.IsZero() {
		fmt.Fprintf(&b, "\nNext interest credit on %s.\n", m.NextCredit)
	}

	return b.String()
}
