package valuation

import (
	"encoding/json"
	"fmt"
	"time"
	"unicode"
)

// CommodityMode distinguishes the two mutually exclusive ways to hold a
// commodity: physical/spot units, or exchange-listed futures contracts.
type CommodityMode int

const (
	SpotCommodity CommodityMode = iota
	FuturesCommodity
)

func (m CommodityMode) String() string {
	switch m {
	case SpotCommodity:
		return "spot"
	case FuturesCommodity:
		return "futures"
	default:
		return "unknown"
	}
}

// ParseCommodityMode parses a string into a CommodityMode.
func ParseCommodityMode(s string) (CommodityMode, error) {
	switch s {
	case "spot":
		return SpotCommodity, nil
	case "futures":
		return FuturesCommodity, nil
	default:
		return 0, fmt.Errorf("unknown commodity mode: %q", s)
	}
}

func (m CommodityMode) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }
func (m *CommodityMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCommodityMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// futuresMonths is the standard single-letter month code table.
var futuresMonths = map[byte]time.Month{
	'F': time.January,
	'G': time.February,
	'H': time.March,
	'J': time.April,
	'K': time.May,
	'M': time.June,
	'N': time.July,
	'Q': time.August,
	'U': time.September,
	'V': time.October,
	'X': time.November,
	'Z': time.December,
}

// ContractSpec is a parsed futures contract code.
type ContractSpec struct {
	Root  string
	Month time.Month
	Year  int
}

// ParseContractCode parses standard {root}{monthLetter}{yearDigit} notation,
// e.g. "CLZ5". The year digit resolves to the nearest year ending in that
// digit that is not already past, relative to 'today': digit 5 in 2026 is
// 2035, digit 7 in 2026 is 2027.
func ParseContractCode(code string, today Date) (ContractSpec, error) {
	if len(code) < 3 {
		return ContractSpec{}, fmt.Errorf("contract code %q too short, want {root}{month}{year}", code)
	}
	yearDigit := code[len(code)-1]
	if !unicode.IsDigit(rune(yearDigit)) {
		return ContractSpec{}, fmt.Errorf("contract code %q: last character must be a year digit", code)
	}
	month, ok := futuresMonths[code[len(code)-2]]
	if !ok {
		return ContractSpec{}, fmt.Errorf("contract code %q: unknown month code %q", code, string(code[len(code)-2]))
	}
	year := (today.Year()/10)*10 + int(yearDigit-'0')
	if year < today.Year() {
		year += 10
	}
	return ContractSpec{Root: code[:len(code)-2], Month: month, Year: year}, nil
}

// Expiry approximates the contract's expiry as the last business day of its
// delivery month: the last calendar day, rolled backward over weekends.
func (c ContractSpec) Expiry() Date {
	d := NewDate(c.Year, c.Month, 1).EndOfMonth()
	for d.IsWeekend() {
		d = d.Add(-1)
	}
	return d
}

// CommodityTerms describes one commodity position, in exactly one mode.
// Spot fields and futures fields are disjoint; EntryPrice is shared.
type CommodityTerms struct {
	Mode CommodityMode `json:"mode"`

	// spot
	Units    float64 `json:"units,omitempty"`
	UnitType string  `json:"unitType,omitempty"` // oz, bbl, bu, ...

	// futures
	ContractCode string  `json:"contractCode,omitempty"`
	Contracts    float64 `json:"contracts,omitempty"`
	Multiplier   float64 `json:"multiplier,omitempty"`
	TickSize     float64 `json:"tickSize,omitempty"`
	TickValue    float64 `json:"tickValue,omitempty"`

	EntryPrice float64 `json:"entryPrice"` // per unit
	Currency   string  `json:"currency,omitempty"`
}

// quantity is the position size in price units: spot units, or contracts
// scaled by the contract multiplier.
func (t CommodityTerms) quantity() float64 {
	if t.Mode == FuturesCommodity {
		return t.Contracts * t.Multiplier
	}
	return t.Units
}

// Notional is the position's face value at the given price per unit.
func (t CommodityTerms) Notional(pricePerUnit float64) float64 {
	return t.quantity() * pricePerUnit
}

// MarkToMarket is the open P/L at the given current price per unit.
func (t CommodityTerms) MarkToMarket(currentPrice float64) float64 {
	return t.quantity() * (currentPrice - t.EntryPrice)
}

// CommodityMetrics is the valuation of a commodity position.
type CommodityMetrics struct {
	Notional     float64 `json:"notional"`
	MarkPL       float64 `json:"markPL"`
	Expiry       Date    `json:"expiry,omitzero"` // futures only
	DaysToExpiry int     `json:"daysToExpiry"`    // futures only, clamped at 0
}

// Metrics values the position at the given current price per unit.
// Futures positions additionally resolve their contract code to an expiry;
// a malformed code is the only error path.
func (t CommodityTerms) Metrics(currentPrice float64, on Date) (CommodityMetrics, error) {
	m := CommodityMetrics{
		Notional: t.Notional(currentPrice),
		MarkPL:   t.MarkToMarket(currentPrice),
	}
	if t.Mode == FuturesCommodity {
		spec, err := ParseContractCode(t.ContractCode, on)
		if err != nil {
			return CommodityMetrics{}, err
		}
		m.Expiry = spec.Expiry()
		if days := m.Expiry.Sub(on); days > 0 {
			m.DaysToExpiry = days
		}
	}
	return m, nil
}
