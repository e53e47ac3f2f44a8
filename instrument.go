package valuation

import "fmt"

// InstrumentKind tags the asset class of an instrument.
type InstrumentKind int

const (
	SecurityKind InstrumentKind = iota // standard lots + quote
	BondKind
	CommodityKind
	PropertyKind
	CashKind
	CustomKind
)

func (k InstrumentKind) String() string {
	switch k {
	case SecurityKind:
		return "security"
	case BondKind:
		return "bond"
	case CommodityKind:
		return "commodity"
	case PropertyKind:
		return "property"
	case CashKind:
		return "cash"
	case CustomKind:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseInstrumentKind parses a string into an InstrumentKind.
func ParseInstrumentKind(s string) (InstrumentKind, error) {
	switch s {
	case "security":
		return SecurityKind, nil
	case "bond":
		return BondKind, nil
	case "commodity":
		return CommodityKind, nil
	case "property":
		return PropertyKind, nil
	case "cash":
		return CashKind, nil
	case "custom":
		return CustomKind, nil
	default:
		return 0, fmt.Errorf("unknown instrument kind: %q", s)
	}
}

// Instrument is the uniform valuation surface over all asset classes, so a
// mixed portfolio can be summed without reflecting on the concrete terms.
// Each variant holds its own strongly-typed definition and reference state;
// values are float64 because the analytic classes live in float space.
type Instrument interface {
	Kind() InstrumentKind
	CostBasis() float64
	OpenQuantity() float64
	UnrealizedPL() float64
}

// SecurityInstrument adapts a standard lots+quote position.
type SecurityInstrument struct {
	Position Position
	Method   CostBasisMethod
}

func (s SecurityInstrument) Kind() InstrumentKind { return SecurityKind }
func (s SecurityInstrument) CostBasis() float64 {
	open, avg := s.Position.Lots.CostBasis()
	return avg.Mul(open).Float()
}
func (s SecurityInstrument) OpenQuantity() float64 {
	return s.Position.Lots.OpenQuantity().Float()
}
func (s SecurityInstrument) UnrealizedPL() float64 {
	return s.Position.Metrics(s.Method).Unrealized.Float()
}

// BondInstrument adapts a bond holding at a reference date.
type BondInstrument struct {
	Terms   BondTerms
	Holding BondHolding
	On      Date
}

func (b BondInstrument) Kind() InstrumentKind { return BondKind }
func (b BondInstrument) CostBasis() float64   { return b.Terms.Metrics(b.Holding, b.On).CostBasis }
func (b BondInstrument) OpenQuantity() float64 {
	return b.Terms.Metrics(b.Holding, b.On).OpenQuantity
}
func (b BondInstrument) UnrealizedPL() float64 {
	m := b.Terms.Metrics(b.Holding, b.On)
	return m.MarketValue - m.CostBasis
}

// CommodityInstrument adapts a commodity position at a current price.
type CommodityInstrument struct {
	Terms        CommodityTerms
	CurrentPrice float64
}

func (c CommodityInstrument) Kind() InstrumentKind { return CommodityKind }
func (c CommodityInstrument) CostBasis() float64   { return c.Terms.Notional(c.Terms.EntryPrice) }
func (c CommodityInstrument) OpenQuantity() float64 {
	return c.Terms.quantity()
}
func (c CommodityInstrument) UnrealizedPL() float64 { return c.Terms.MarkToMarket(c.CurrentPrice) }

// PropertyInstrument adapts a real-estate position at a reference date.
type PropertyInstrument struct {
	Terms PropertyTerms
	On    Date
}

func (p PropertyInstrument) Kind() InstrumentKind  { return PropertyKind }
func (p PropertyInstrument) CostBasis() float64    { return p.Terms.Metrics(p.On).CostBasis }
func (p PropertyInstrument) OpenQuantity() float64 { return 1 }
func (p PropertyInstrument) UnrealizedPL() float64 {
	m := p.Terms.Metrics(p.On)
	return p.Terms.Valuation.CurrentValue - m.CostBasis
}

// CashInstrument adapts a cash account. Cash has no mark-to-market: its
// unrealized P/L is zero and its basis is the principal.
type CashInstrument struct {
	Terms CashTerms
}

func (c CashInstrument) Kind() InstrumentKind  { return CashKind }
func (c CashInstrument) CostBasis() float64    { return c.Terms.Principal }
func (c CashInstrument) OpenQuantity() float64 { return c.Terms.Principal }
func (c CashInstrument) UnrealizedPL() float64 { return 0 }

// CustomInstrument adapts a user-defined position.
type CustomInstrument struct {
	Definition CustomDefinition
	State      CustomState
}

func (c CustomInstrument) Kind() InstrumentKind { return CustomKind }
func (c CustomInstrument) CostBasis() float64 {
	return c.Definition.Metrics(c.State).CostBasis.Float()
}
func (c CustomInstrument) OpenQuantity() float64 {
	return c.Definition.Metrics(c.State).Quantity.Float()
}
func (c CustomInstrument) UnrealizedPL() float64 {
	return c.Definition.Metrics(c.State).PL.Float()
}

// SumInstruments totals cost basis and unrealized P/L across a mixed
// portfolio of instruments.
func SumInstruments(instruments []Instrument) (costBasis, unrealized float64) {
	for _, ins := range instruments {
		costBasis += ins.CostBasis()
		unrealized += ins.UnrealizedPL()
	}
	return costBasis, unrealized
}
