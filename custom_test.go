package valuation

import (
	"math"
	"testing"
	"time"
)

func customLots() Lots {
	return Lots{
		NewLot(Buy, Q(60), M(48, "USD"), M(6, "USD"), NewDate(2026, time.January, 5)),
		NewLot(Buy, Q(40), M(53, "USD"), M(4, "USD"), NewDate(2026, time.February, 5)),
	}
}

func TestCustomMetrics_StandardPL(t *testing.T) {
	d := CustomDefinition{
		UnitName:  "credit",
		Precision: 2,
		PLModel:   StandardPL,
		Currency:  "USD",
	}
	s := CustomState{Lots: customLots(), MarkPrice: 55}
	m := d.Metrics(s)

	if !m.Quantity.Equal(Q(100)) {
		t.Errorf("quantity = %v, want 100", m.Quantity)
	}
	// Blended average (60×48 + 40×53)/100 = 50.
	if !m.AverageCost.Equal(M(50, "USD")) {
		t.Errorf("average cost = %v, want 50", m.AverageCost)
	}
	if !m.FeesTotal.Equal(M(10, "USD")) {
		t.Errorf("fees = %v, want 10", m.FeesTotal)
	}
	if !m.CostBasis.Equal(M(5010, "USD")) {
		t.Errorf("cost basis = %v, want 5010", m.CostBasis)
	}
	// (55 − 50) × 100 × 1 − 10.
	if !m.PL.Equal(M(490, "USD")) {
		t.Errorf("pl = %v, want 490", m.PL)
	}
	if m.Error != "" {
		t.Errorf("unexpected error %q", m.Error)
	}
}

func TestCustomMetrics_Multiplier(t *testing.T) {
	d := CustomDefinition{PLModel: StandardPL, Multiplier: 10, Currency: "USD"}
	s := CustomState{Lots: customLots(), MarkPrice: 55}
	m := d.Metrics(s)
	if !m.PL.Equal(M(4990, "USD")) {
		t.Errorf("pl = %v, want 4990", m.PL)
	}
}

func TestCustomMetrics_ExpressionPL(t *testing.T) {
	d := CustomDefinition{
		PLModel:    ExpressionPL,
		Expression: "quantity * (mark - avgCost) - feesTotal",
		Currency:   "USD",
	}
	s := CustomState{Lots: customLots(), MarkPrice: 55}
	m := d.Metrics(s)
	if m.Error != "" {
		t.Fatalf("unexpected error %q", m.Error)
	}
	if !m.PL.Equal(M(490, "USD")) {
		t.Errorf("pl = %v, want 490", m.PL)
	}
}

func TestCustomMetrics_ExpressionError(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"unknown variable", "quantity * price"},
		{"malformed", "quantity +"},
		{"non-finite", "quantity / 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CustomDefinition{PLModel: ExpressionPL, Expression: tt.expr, Currency: "USD"}
			m := d.Metrics(CustomState{Lots: customLots(), MarkPrice: 55})
			if m.Error == "" {
				t.Fatal("want error set")
			}
			// The failure never poisons the rest of the metrics.
			if !m.PL.IsZero() {
				t.Errorf("pl = %v, want 0", m.PL)
			}
			if !m.Quantity.Equal(Q(100)) {
				t.Errorf("quantity = %v, want 100", m.Quantity)
			}
		})
	}
}

func TestCustomMetrics_AverageEntry(t *testing.T) {
	d := CustomDefinition{EntryMode: AverageEntry, PLModel: StandardPL, Currency: "USD"}
	avg := NewLot(Buy, Q(100), M(50, "USD"), M(10, "USD"), NewDate(2026, time.January, 5))
	s := CustomState{Average: &avg, MarkPrice: 55}
	m := d.Metrics(s)
	if !m.Quantity.Equal(Q(100)) || !m.AverageCost.Equal(M(50, "USD")) {
		t.Errorf("quantity %v / avg %v", m.Quantity, m.AverageCost)
	}
	if !m.PL.Equal(M(490, "USD")) {
		t.Errorf("pl = %v, want 490", m.PL)
	}

	// In lot mode the averaged entry is ignored.
	d.EntryMode = LotEntry
	m = d.Metrics(s)
	if !m.Quantity.IsZero() {
		t.Errorf("lot-mode quantity = %v, want 0", m.Quantity)
	}
}

func TestCustomMetrics_PrecisionRounding(t *testing.T) {
	d := CustomDefinition{Precision: 2, PLModel: StandardPL, Currency: "USD"}
	s := CustomState{Lots: Lots{
		NewLot(Buy, Q(0.123456), M(10, "USD"), M(0, "USD"), NewDate(2026, time.January, 5)),
	}}
	m := d.Metrics(s)
	if !m.Quantity.Equal(Q(0.12)) {
		t.Errorf("quantity = %v, want 0.12", m.Quantity)
	}
}

func TestProjectedIncome(t *testing.T) {
	d := CustomDefinition{PLModel: StandardPL, Currency: "USD"}

	// APY income accrues simply on the cost basis: 5000 × 5% × 73/365 = 50.
	s := CustomState{
		Lots:   customLots(),
		Income: &IncomeTerms{Mode: APYIncome, APY: 5},
	}
	got := d.ProjectedIncome(s, 73)
	if math.Abs(got-50) > 1e-9 {
		t.Errorf("apy income = %.4f, want 50", got)
	}

	// Fixed income credits whole elapsed periods only.
	s.Income = &IncomeTerms{Mode: FixedIncome, AmountPerPeriod: 25, Period: CompoundMonthly}
	if got := d.ProjectedIncome(s, 100); got != 75 {
		t.Errorf("fixed income over 100 days = %.2f, want 75", got)
	}
	if got := d.ProjectedIncome(s, 20); got != 0 {
		t.Errorf("fixed income over 20 days = %.2f, want 0", got)
	}

	// No income configuration projects nothing.
	s.Income = nil
	if got := d.ProjectedIncome(s, 365); got != 0 {
		t.Errorf("income without terms = %.2f, want 0", got)
	}
}
