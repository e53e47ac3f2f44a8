package valuation

import "testing"

func TestTotals(t *testing.T) {
	// Position A: 10 open at avg 100, marked 110, moved +5 today.
	a := Position{
		Lots:  buildLots(t, lotSpec{Buy, 10, 100, "2025-01-10"}),
		Quote: Quote{Last: f(110), PrevClose: f(105)},
	}
	// Position B: flat after a profitable sell, no quote data.
	b := Position{
		Lots: buildLots(t,
			lotSpec{Buy, 5, 50, "2025-01-10"},
			lotSpec{Sell, 5, 60, "2025-02-10"},
		),
		Quote: Quote{},
	}

	totals := Totals([]Position{a, b}, FIFO)

	if !totals.TotalUnrealized.Equal(M(100, "USD")) {
		t.Errorf("total unrealized = %s, want 100", totals.TotalUnrealized)
	}
	if !totals.TotalRealized.Equal(M(50, "USD")) {
		t.Errorf("total realized = %s, want 50", totals.TotalRealized)
	}
	// Today's change is per-unit at the position level and scaled by
	// quantity only here: 5 × 10 + 0.
	if !totals.TotalToday.Equal(M(50, "USD")) {
		t.Errorf("total today = %s, want 50", totals.TotalToday)
	}
}

func TestTotals_Empty(t *testing.T) {
	totals := Totals(nil, AverageCost)
	if !totals.TotalUnrealized.IsZero() || !totals.TotalRealized.IsZero() || !totals.TotalToday.IsZero() {
		t.Errorf("empty portfolio totals = %+v, want all zero", totals)
	}
}
