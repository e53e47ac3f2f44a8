package valuation

// PortfolioTotals sums position metrics across a portfolio.
//
// TotalToday is a currency amount: each position's per-unit today change is
// multiplied by its open quantity here, and only here.
type PortfolioTotals struct {
	TotalUnrealized Money
	TotalRealized   Money
	TotalToday      Money
}

func (t PortfolioTotals) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("totalUnrealized", t.TotalUnrealized)
	w.Append("totalRealized", t.TotalRealized)
	w.Append("totalToday", t.TotalToday)
	return w.MarshalJSON()
}

// Totals values every position under the portfolio's declared cost-basis
// method and sums the results. No per-position weighting beyond the
// quantity scaling of today's change.
func Totals(positions []Position, method CostBasisMethod) PortfolioTotals {
	var totals PortfolioTotals
	for _, p := range positions {
		m := p.Metrics(method)
		totals.TotalUnrealized = totals.TotalUnrealized.Add(m.Unrealized)
		totals.TotalRealized = totals.TotalRealized.Add(m.Realized)
		totals.TotalToday = totals.TotalToday.Add(m.TodayChange.Mul(m.Quantity))
	}
	return totals
}
