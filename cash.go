package valuation

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
)

// Compounding is how often a cash account credits interest.
type Compounding int

const (
	CompoundDaily Compounding = iota
	CompoundMonthly
	CompoundQuarterly
	CompoundNone // simple interest, credited yearly
)

// PeriodsPerYear maps the compounding frequency to its period count.
// CompoundNone is treated as one simple-interest period.
func (c Compounding) PeriodsPerYear() int {
	switch c {
	case CompoundDaily:
		return 365
	case CompoundMonthly:
		return 12
	case CompoundQuarterly:
		return 4
	default:
		return 1
	}
}

func (c Compounding) String() string {
	switch c {
	case CompoundDaily:
		return "daily"
	case CompoundMonthly:
		return "monthly"
	case CompoundQuarterly:
		return "quarterly"
	case CompoundNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseCompounding parses a string into a Compounding.
func ParseCompounding(s string) (Compounding, error) {
	switch s {
	case "daily":
		return CompoundDaily, nil
	case "monthly":
		return CompoundMonthly, nil
	case "quarterly":
		return CompoundQuarterly, nil
	case "none":
		return CompoundNone, nil
	default:
		return 0, fmt.Errorf("unknown compounding frequency: %q", s)
	}
}

func (c Compounding) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }
func (c *Compounding) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCompounding(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CalculateInterest returns the interest earned on a principal over the
// given number of days: simple interest for CompoundNone, the compound
// interest formula P×((1+r/n)^(n×years) − 1) otherwise, with years = d/365.
// Non-positive principal, rate or days earn nothing.
func CalculateInterest(principal, apyPct float64, c Compounding, days int) float64 {
	if principal <= 0 || apyPct <= 0 || days <= 0 {
		return 0
	}
	r := apyPct / 100
	years := float64(days) / 365
	if c == CompoundNone {
		return principal * r * years
	}
	n := float64(c.PeriodsPerYear())
	return principal * (math.Pow(1+r/n, n*years) - 1)
}

// EffectiveAnnualRate is (1+r/n)^n − 1 as a percentage; it equals the
// nominal rate for simple interest.
func EffectiveAnnualRate(apyPct float64, c Compounding) Percent {
	if c == CompoundNone || apyPct <= 0 {
		return Percent(apyPct)
	}
	r := apyPct / 100
	n := float64(c.PeriodsPerYear())
	return Percent((math.Pow(1+r/n, n) - 1) * 100)
}

// NextCreditDate is the reference date plus one compounding period:
// a day, a month, three months, or a year for simple interest.
func NextCreditDate(on Date, c Compounding) Date {
	switch c {
	case CompoundDaily:
		return on.Add(1)
	case CompoundMonthly:
		return on.AddMonths(1)
	case CompoundQuarterly:
		return on.AddMonths(3)
	default:
		return on.AddMonths(12)
	}
}

// CashTerms describes an interest-bearing cash account.
type CashTerms struct {
	Principal   float64     `json:"principal"`
	APY         float64     `json:"apy"` // percent
	Compounding Compounding `json:"compounding"`
	Currency    string      `json:"currency,omitempty"`
}

// CashMetrics is the projection of a cash account.
type CashMetrics struct {
	EffectiveRate      Percent `json:"effectiveRate"`
	FutureValueOneYear float64 `json:"futureValueOneYear"`
	NextCredit         Date    `json:"nextCredit,omitzero"`
}

// CalculateCashMetrics projects the account without a reference date;
// the zero-APY future value is exactly the principal.
func CalculateCashMetrics(principal, apyPct float64, c Compounding) CashMetrics {
	return CashMetrics{
		EffectiveRate:      EffectiveAnnualRate(apyPct, c),
		FutureValueOneYear: principal + CalculateInterest(principal, apyPct, c, 365),
	}
}

// Metrics projects the account as of a reference date.
func (t CashTerms) Metrics(on Date) CashMetrics {
	m := CalculateCashMetrics(t.Principal, t.APY, t.Compounding)
	m.NextCredit = NextCreditDate(on, t.Compounding)
	return m
}

// CurrencyInfo is display metadata for an ISO currency code.
type CurrencyInfo struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// currencyNames covers the currencies the tracker's account forms list;
// anything else displays by its code.
var currencyNames = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "Pound Sterling",
	"JPY": "Japanese Yen",
	"CHF": "Swiss Franc",
	"CAD": "Canadian Dollar",
	"AUD": "Australian Dollar",
	"CNY": "Chinese Yuan",
	"HKD": "Hong Kong Dollar",
	"SGD": "Singapore Dollar",
	"INR": "Indian Rupee",
	"BRL": "Brazilian Real",
}

// LookupCurrency returns display metadata for an ISO currency code, with a
// generic symbol-less 2-decimal fallback for codes the registry does not
// know.
func LookupCurrency(code string) CurrencyInfo {
	info := CurrencyInfo{Code: code, Name: code, Symbol: code, Decimals: 2}
	if name, ok := currencyNames[code]; ok {
		info.Name = name
	}
	if cur := money.GetCurrency(code); cur != nil {
		info.Symbol = cur.Grapheme
		info.Decimals = cur.Fraction
	}
	return info
}
