package valuation

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/valuation/expr"
)

// PLModel selects how a custom instrument computes its profit/loss.
type PLModel int

const (
	// StandardPL is (mark − avgCost) × quantity × multiplier − fees.
	StandardPL PLModel = iota
	// ExpressionPL evaluates a user-supplied formula over the five bound
	// variables quantity, avgCost, mark, multiplier, feesTotal.
	ExpressionPL
)

func (m PLModel) String() string {
	switch m {
	case StandardPL:
		return "standard"
	case ExpressionPL:
		return "expression"
	default:
		return "unknown"
	}
}

// ParsePLModel parses a string into a PLModel.
func ParsePLModel(s string) (PLModel, error) {
	switch s {
	case "standard":
		return StandardPL, nil
	case "expression":
		return ExpressionPL, nil
	default:
		return 0, fmt.Errorf("unknown P/L model: %q", s)
	}
}

func (m PLModel) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }
func (m *PLModel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePLModel(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// EntryMode is the lots-vs-average duality shared by all instrument kinds:
// either the full lot history, or a single averaged entry.
type EntryMode int

const (
	LotEntry EntryMode = iota
	AverageEntry
)

func (m EntryMode) String() string {
	switch m {
	case LotEntry:
		return "lots"
	case AverageEntry:
		return "average"
	default:
		return "unknown"
	}
}

// ParseEntryMode parses a string into an EntryMode.
func ParseEntryMode(s string) (EntryMode, error) {
	switch s {
	case "lots":
		return LotEntry, nil
	case "average":
		return AverageEntry, nil
	default:
		return 0, fmt.Errorf("unknown entry mode: %q", s)
	}
}

func (m EntryMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }
func (m *EntryMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseEntryMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// CustomDefinition describes a user-defined instrument: an arbitrary unit
// with its own precision, multiplier, entry mode and P/L model.
type CustomDefinition struct {
	UnitName    string    `json:"unitName"`
	Precision   int32     `json:"precision"` // decimal places of the unit
	Multiplier  float64   `json:"multiplier,omitempty"`
	EntryMode   EntryMode `json:"entryMode"`
	PriceSource string    `json:"priceSource,omitempty"` // informational, the engine only sees the mark
	PLModel     PLModel   `json:"plModel"`
	Expression  string    `json:"expression,omitempty"` // required for ExpressionPL
	Currency    string    `json:"currency,omitempty"`
}

// CustomState is the mutable side of a custom position: its entries, the
// current mark price, and an optional income configuration.
type CustomState struct {
	Lots      Lots         `json:"lots,omitempty"`
	Average   *Lot         `json:"average,omitempty"`
	MarkPrice float64      `json:"markPrice"`
	Income    *IncomeTerms `json:"income,omitempty"`
}

// entries resolves the lots-vs-average duality into a lot sequence.
func (s CustomState) entries(mode EntryMode) Lots {
	if mode == AverageEntry && s.Average != nil {
		return Lots{*s.Average}
	}
	return s.Lots
}

// IncomeMode selects how a custom instrument projects income.
type IncomeMode int

const (
	// APYIncome accrues a simple annual percentage on the cost basis.
	APYIncome IncomeMode = iota
	// FixedIncome credits a fixed amount once per period.
	FixedIncome
)

func (m IncomeMode) String() string {
	switch m {
	case APYIncome:
		return "apy"
	case FixedIncome:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseIncomeMode parses a string into an IncomeMode.
func ParseIncomeMode(s string) (IncomeMode, error) {
	switch s {
	case "apy":
		return APYIncome, nil
	case "fixed":
		return FixedIncome, nil
	default:
		return 0, fmt.Errorf("unknown income mode: %q", s)
	}
}

func (m IncomeMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }
func (m *IncomeMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseIncomeMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// IncomeTerms configures the additive income projection. It is never folded
// into P/L.
type IncomeTerms struct {
	Mode            IncomeMode  `json:"mode"`
	APY             float64     `json:"apy,omitempty"`             // percent, APYIncome
	AmountPerPeriod float64     `json:"amountPerPeriod,omitempty"` // FixedIncome
	Period          Compounding `json:"period,omitempty"`          // FixedIncome credit frequency
}

// Project returns the income earned on the given basis over a number of
// days: simple APY accrual, or fixed amount times whole elapsed periods.
func (t IncomeTerms) Project(basis float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	switch t.Mode {
	case APYIncome:
		return basis * t.APY / 100 * float64(days) / 365
	case FixedIncome:
		periods := days * t.Period.PeriodsPerYear() / 365
		return t.AmountPerPeriod * float64(periods)
	default:
		return 0
	}
}

// CustomMetrics is the valuation of a custom position.
//
// Error is set, and PL zero, when the expression P/L model fails to parse
// or evaluates to a non-finite number. This is the only engine path that
// reports a recoverable failure as a value: the failure belongs to
// untrusted user input, not to a caller bug.
type CustomMetrics struct {
	Quantity    Quantity
	AverageCost Money
	CostBasis   Money
	FeesTotal   Money
	PL          Money
	Error       string
}

func (m CustomMetrics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("quantity", m.Quantity)
	w.Append("averageCost", m.AverageCost)
	w.Append("costBasis", m.CostBasis)
	w.Append("feesTotal", m.FeesTotal)
	w.Append("pl", m.PL)
	w.Optional("error", m.Error)
	return w.MarshalJSON()
}

func (d CustomDefinition) multiplier() float64 {
	if d.Multiplier == 0 {
		return 1
	}
	return d.Multiplier
}

// Metrics values the position. Quantity is rounded to the instrument's
// declared precision; cost arithmetic keeps full digits.
func (d CustomDefinition) Metrics(s CustomState) CustomMetrics {
	lots := s.entries(d.EntryMode).Sorted()
	open, avgCost := lots.CostBasis()
	fees := lots.TotalFees()
	mult := d.multiplier()

	m := CustomMetrics{
		Quantity:    open.Round(d.Precision),
		AverageCost: avgCost,
		CostBasis:   avgCost.Mul(open).Add(fees),
		FeesTotal:   fees,
	}

	currency := avgCost.Currency()
	switch d.PLModel {
	case StandardPL:
		mark := M(s.MarkPrice, currency)
		m.PL = mark.Sub(avgCost).Mul(open).Mul(Q(mult)).Sub(fees)
	case ExpressionPL:
		result, err := expr.Eval(d.Expression, map[string]float64{
			"quantity":   open.Float(),
			"avgCost":    avgCost.Float(),
			"mark":       s.MarkPrice,
			"multiplier": mult,
			"feesTotal":  fees.Float(),
		})
		if err != nil {
			m.PL = M(0, currency)
			m.Error = err.Error()
			break
		}
		m.PL = M(result, currency)
	}
	return m
}

// ProjectedIncome is the additive income projection over a number of days,
// accrued on the position's cost basis. Zero without an income configuration.
func (d CustomDefinition) ProjectedIncome(s CustomState, days int) float64 {
	if s.Income == nil {
		return 0
	}
	lots := s.entries(d.EntryMode)
	open, avgCost := lots.CostBasis()
	basis := avgCost.Mul(open).Float()
	return s.Income.Project(basis, days)
}
