package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/valuation"
)

// CustomMarkdown renders a custom instrument's valuation as a markdown
// section. An evaluation failure renders as a warning, not a broken report.
func CustomMarkdown(name string, def valuation.CustomDefinition, m valuation.CustomMetrics) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", name)
	unit := def.UnitName
	if unit == "" {
		unit = "unit"
	}
	fmt.Fprintf(&b, "Custom instrument, %s P/L model, quantities in %s\n\n", def.PLModel, unit)

	fmt.Fprintln(&b, "| Quantity | Avg Cost | Cost Basis | Fees | P/L |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
		m.Quantity,
		m.AverageCost,
		m.CostBasis,
		m.FeesTotal,
		m.PL.SignedString(),
	)

	if m.Error != "" {
		fmt.Fprintf(&b, "\n> ⚠ expression error: %s\n", m.Error)
	}

	return b.String()
}
