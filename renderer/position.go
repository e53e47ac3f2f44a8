package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/valuation"
)

// PositionRow names one position for report purposes. The engine itself
// tracks no symbol: that is caller state.
type PositionRow struct {
	Symbol   string
	Position valuation.Position
}

// PositionMarkdown renders one position's valuation as a markdown section.
func PositionMarkdown(symbol string, m valuation.PositionMetrics, method valuation.CostBasisMethod) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Position %s\n\n", symbol)
	fmt.Fprintf(&b, "Method: %s\n\n", method)

	fmt.Fprintln(&b, "| Quantity | Avg Cost | Realized | Unrealized | Today |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
		m.Quantity,
		m.AverageCost,
		m.Realized.SignedString(),
		m.Unrealized.SignedString(),
		m.TodayChange.Mul(m.Quantity).SignedString(),
	)

	return b.String()
}

// PortfolioMarkdown renders the whole portfolio: one row per position and a
// totals row, under a single cost-basis method.
func PortfolioMarkdown(rows []PositionRow, method valuation.CostBasisMethod) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Portfolio Valuation\n\n")
	fmt.Fprintf(&b, "Method: %s\n\n", method)

	fmt.Fprintln(&b, "| Position | Quantity | Realized | Unrealized | Today |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")

	positions := make([]valuation.Position, 0, len(rows))
	for _, row := range rows {
		m := row.Position.Metrics(method)
		positions = append(positions, row.Position)
		if m.Quantity.IsZero() && m.Realized.IsZero() && m.Unrealized.IsZero() {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Symbol,
			m.Quantity,
			m.Realized.SignedString(),
			m.Unrealized.SignedString(),
			m.TodayChange.Mul(m.Quantity).SignedString(),
		)
	}

	totals := valuation.Totals(positions, method)
	fmt.Fprintf(&b, "| **%s** | | **%s** | **%s** | **%s** |\n",
		"Total",
		totals.TotalRealized.SignedString(),
		totals.TotalUnrealized.SignedString(),
		totals.TotalToday.SignedString(),
	)

	return b.String()
}
