package valuation

// Quote is transient market data for one symbol. Both fields are nullable:
// Last is nil before the first trade of the day, PrevClose is nil for a
// freshly listed symbol. The engine never errors on a missing price, it
// falls back Last → PrevClose → 0.
type Quote struct {
	Last      *float64 `json:"last"`
	PrevClose *float64 `json:"prevClose"`
}

// Mark returns the price to mark the position at: the last trade if any,
// else the previous close, else zero.
func (q Quote) Mark() float64 {
	if q.Last != nil {
		return *q.Last
	}
	if q.PrevClose != nil {
		return *q.PrevClose
	}
	return 0
}

// PositionMetrics is the valuation of a single position at one quote.
//
// TodayChange is a per-unit figure (price delta × multiplier), not yet
// scaled by quantity: callers multiply by Quantity when they aggregate
// dollar amounts. PortfolioTotals does exactly that.
type PositionMetrics struct {
	Quantity    Quantity
	AverageCost Money // per unit, zero when the position is flat
	Realized    Money // cumulative, from closed lots
	Unrealized  Money // mark-to-market on the open quantity
	TodayChange Money // per unit
}

func (m PositionMetrics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("quantity", m.Quantity)
	w.Append("averageCost", m.AverageCost)
	w.Append("realized", m.Realized)
	w.Append("unrealized", m.Unrealized)
	w.Append("todayChange", m.TodayChange)
	return w.MarshalJSON()
}

// Position pairs a lot history with the quote to value it at.
// A zero Multiplier means 1; instruments with per-contract scaling
// (options, futures) declare theirs.
type Position struct {
	Lots       Lots
	Quote      Quote
	Multiplier Quantity
}

func (p Position) multiplier() Quantity {
	if p.Multiplier.IsZero() {
		return Q(1)
	}
	return p.Multiplier
}

// Metrics values the position under the given cost-basis policy.
// It is a pure function: malformed histories (sells exceeding buys) yield
// defined values rather than errors, validation belongs to the caller.
func (p Position) Metrics(method CostBasisMethod) PositionMetrics {
	lots := p.Lots.Sorted()
	open, avgCost := lots.CostBasis()
	mult := p.multiplier()

	mark := M(p.Quote.Mark(), avgCost.Currency())

	var today Money
	if p.Quote.PrevClose != nil {
		today = mark.Sub(M(*p.Quote.PrevClose, mark.Currency())).Mul(mult)
	}

	var unrealized Money
	if open.IsPositive() {
		unrealized = mark.Sub(avgCost).Mul(open).Mul(mult)
	}

	var realized Money
	switch method {
	case FIFO:
		realized = fifoRealized(lots)
	case AverageCost:
		realized = averageRealized(lots)
	}
	realized = realized.Mul(mult)

	return PositionMetrics{
		Quantity:    open,
		AverageCost: avgCost,
		Realized:    realized,
		Unrealized:  unrealized,
		TodayChange: today,
	}
}

// fifoRealized walks lots in date order keeping a queue of open buy-lot
// remainders; each sell consumes the oldest buys first.
func fifoRealized(ls Lots) Money {
	var realized Money
	var queue []remainder
	for _, l := range ls {
		switch l.Side {
		case Buy:
			queue = append(queue, remainder{quantity: l.Quantity, price: l.Price})
		case Sell:
			queue = consume(queue, l.Quantity, func(price Money, quantity Quantity) {
				realized = realized.Add(l.Price.Sub(price).Mul(quantity))
			})
		}
	}
	return realized
}

// averageRealized keeps a running (quantity, cost) over buys; each sell
// realizes against the running average and reduces both proportionally by
// that average (not by the sold lot's own cost), which keeps the average
// stable through sells.
func averageRealized(ls Lots) Money {
	var realized Money
	var totalQty Quantity
	var totalCost Money
	for _, l := range ls {
		switch l.Side {
		case Buy:
			totalQty = totalQty.Add(l.Quantity)
			totalCost = totalCost.Add(l.Cost())
		case Sell:
			var average Money
			if !totalQty.IsZero() {
				average = totalCost.Div(totalQty)
			}
			realized = realized.Add(l.Price.Sub(average).Mul(l.Quantity))
			totalCost = totalCost.Sub(average.Mul(l.Quantity))
			totalQty = totalQty.Sub(l.Quantity)
		}
	}
	return realized
}
