package valuation

// CostBasis reduces an ordered lot sequence to its open quantity and
// weighted-average cost per unit.
//
// The average is the blended convention: Σ(signed quantity × price) divided
// by Σ(signed quantity) over all lots, buys positive and sells negative.
// Sells reduce quantity but do not deplete cost lot-by-lot, so the blend can
// drift from a true average-cost depletion over repeated buy/sell cycles.
// This is the documented behavior of the model, not a defect to correct;
// realized P/L uses its own running average (see Position.Metrics).
//
// When the open quantity is zero the average cost is zero, never undefined.
func (ls Lots) CostBasis() (open Quantity, averageCost Money) {
	var cost Money
	for _, l := range ls {
		signed := l.Signed()
		open = open.Add(signed)
		cost = cost.Add(l.Price.Mul(signed))
	}
	if open.IsZero() {
		return open, M(0, cost.Currency())
	}
	return open, cost.Div(open)
}
