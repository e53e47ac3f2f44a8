package valuation

import (
	"encoding/json"
	"fmt"
)

// CouponFrequency is the number of coupon payments a bond makes per year.
type CouponFrequency int

const (
	FrequencyZero CouponFrequency = iota // zero-coupon, pays nothing until maturity
	FrequencyAnnual
	FrequencySemiAnnual
	FrequencyQuarterly
	FrequencyMonthly
)

// PaymentsPerYear maps the frequency to its number of coupon payments.
func (f CouponFrequency) PaymentsPerYear() int {
	switch f {
	case FrequencyZero:
		return 0
	case FrequencyAnnual:
		return 1
	case FrequencySemiAnnual:
		return 2
	case FrequencyQuarterly:
		return 4
	case FrequencyMonthly:
		return 12
	default:
		return 0
	}
}

func (f CouponFrequency) String() string {
	switch f {
	case FrequencyZero:
		return "zero"
	case FrequencyAnnual:
		return "annual"
	case FrequencySemiAnnual:
		return "semiannual"
	case FrequencyQuarterly:
		return "quarterly"
	case FrequencyMonthly:
		return "monthly"
	default:
		return "unknown"
	}
}

// ParseCouponFrequency parses a string into a CouponFrequency.
func ParseCouponFrequency(s string) (CouponFrequency, error) {
	switch s {
	case "zero":
		return FrequencyZero, nil
	case "annual":
		return FrequencyAnnual, nil
	case "semiannual":
		return FrequencySemiAnnual, nil
	case "quarterly":
		return FrequencyQuarterly, nil
	case "monthly":
		return FrequencyMonthly, nil
	default:
		return 0, fmt.Errorf("unknown coupon frequency: %q", s)
	}
}

func (f CouponFrequency) MarshalJSON() ([]byte, error) { return json.Marshal(f.String()) }
func (f *CouponFrequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCouponFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// DayCount is the convention for counting days between dates for
// interest-accrual purposes.
type DayCount int

const (
	Act365 DayCount = iota // actual days, 365-day year
	Act360                 // actual days, 360-day year
	Thirty360              // 30-day months, 360-day year
)

func (dc DayCount) String() string {
	switch dc {
	case Act365:
		return "ACT/365"
	case Act360:
		return "ACT/360"
	case Thirty360:
		return "30/360"
	default:
		return "unknown"
	}
}

// ParseDayCount parses a string into a DayCount.
func ParseDayCount(s string) (DayCount, error) {
	switch s {
	case "ACT/365":
		return Act365, nil
	case "ACT/360":
		return Act360, nil
	case "30/360":
		return Thirty360, nil
	default:
		return 0, fmt.Errorf("unknown day count convention: %q", s)
	}
}

func (dc DayCount) MarshalJSON() ([]byte, error) { return json.Marshal(dc.String()) }
func (dc *DayCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDayCount(s)
	if err != nil {
		return err
	}
	*dc = parsed
	return nil
}

// Days counts the days from 'from' to 'to' under the convention. The ACT
// conventions count actual calendar days; 30/360 counts 30-day months with
// month-end days capped at 30. Accrual ratios use the same convention in
// numerator and denominator, so the year basis cancels out.
func (dc DayCount) Days(from, to Date) int {
	switch dc {
	case Thirty360:
		d1, d2 := from.Day(), to.Day()
		if d1 > 30 {
			d1 = 30
		}
		if d2 > 30 {
			d2 = 30
		}
		return 360*(to.Year()-from.Year()) + 30*(int(to.Month())-int(from.Month())) + (d2 - d1)
	default:
		return to.Sub(from)
	}
}

// BondTerms are the fixed terms of a bond position, created once when the
// position is added and revised wholesale on edit.
type BondTerms struct {
	CouponRate float64         `json:"couponRate"` // annual, percent of par
	Par        float64         `json:"par"`
	Frequency  CouponFrequency `json:"frequency"`
	DayCount   DayCount        `json:"dayCount"`
	Maturity   Date            `json:"maturity"`
	Currency   string          `json:"currency,omitempty"`
}

// BondLot is one purchase of bonds: quantity in bonds at a clean price
// quoted as a percentage of par.
type BondLot struct {
	Date       Date    `json:"date"`
	Quantity   float64 `json:"quantity"`
	CleanPrice float64 `json:"cleanPrice"` // percent of par
	Fees       float64 `json:"fees,omitempty"`
}

// BondHolding is the position state: either individual lots or a single
// averaged entry, plus the clean price to mark at.
type BondHolding struct {
	Lots           []BondLot `json:"lots,omitempty"`
	Average        *BondLot  `json:"average,omitempty"`
	MarkCleanPrice float64   `json:"markCleanPrice"`
}

// entries resolves the lots-vs-average duality.
func (h BondHolding) entries() []BondLot {
	if len(h.Lots) > 0 {
		return h.Lots
	}
	if h.Average != nil {
		return []BondLot{*h.Average}
	}
	return nil
}

// CouponDates returns the last coupon date on or before 'on' and the next
// one after it, walking backward from maturity in whole coupon periods.
// ok is false for zero-coupon bonds, which have no schedule.
func (t BondTerms) CouponDates(on Date) (last, next Date, ok bool) {
	n := t.Frequency.PaymentsPerYear()
	if n == 0 {
		return Date{}, Date{}, false
	}
	step := 12 / n
	d := t.Maturity
	for d.After(on) {
		d = d.AddMonths(-step)
	}
	return d, d.AddMonths(step), true
}

// CouponPayment is the amount of one coupon per bond.
func (t BondTerms) CouponPayment() float64 {
	n := t.Frequency.PaymentsPerYear()
	if n == 0 {
		return 0
	}
	return t.CouponRate / 100 * t.Par / float64(n)
}

// AccruedInterest is the coupon interest earned per bond since the last
// coupon date, under the bond's day-count convention. Zero-coupon and
// zero-rate bonds accrue nothing.
func (t BondTerms) AccruedInterest(on Date) float64 {
	if t.CouponRate <= 0 {
		return 0
	}
	last, next, ok := t.CouponDates(on)
	if !ok {
		return 0
	}
	between := t.DayCount.Days(last, next)
	if between <= 0 {
		return 0
	}
	since := t.DayCount.Days(last, on)
	return t.CouponPayment() * float64(since) / float64(between)
}

// DirtyPrice converts a clean price (percent of par) into the full price
// per bond including interest accrued as of 'on'.
func (t BondTerms) DirtyPrice(cleanPricePct float64, on Date) float64 {
	return cleanPricePct/100*t.Par + t.AccruedInterest(on)
}

// ApproxYTM is a closed-form approximation of yield to maturity:
//
//	(annualCoupon + (par − price)/yearsToMaturity) / ((price + par)/2)
//
// It is not a solved internal rate of return and consumers should label it
// as approximate. Returns 0 when the bond has matured or prices degenerate.
func (t BondTerms) ApproxYTM(currentPrice float64, on Date) Percent {
	years := float64(t.Maturity.Sub(on)) / 365
	if years <= 0 || currentPrice+t.Par <= 0 {
		return 0
	}
	annualCoupon := t.CouponRate / 100 * t.Par
	yield := (annualCoupon + (t.Par-currentPrice)/years) / ((currentPrice + t.Par) / 2)
	return Percent(yield * 100)
}

// BondMetrics is the valuation of a bond holding at one reference date.
type BondMetrics struct {
	OpenQuantity    float64 `json:"openQuantity"`
	CostBasis       float64 `json:"costBasis"`
	MarketValue     float64 `json:"marketValue"`
	AccruedInterest float64 `json:"accruedInterest"` // per bond, as of the reference date
	DirtyPrice      float64 `json:"dirtyPrice"`      // at the mark clean price
	AvgCleanPrice   float64 `json:"avgCleanPrice"`   // weighted by quantity
	YTM             Percent `json:"ytm"`             // closed-form approximation
	LastCoupon      Date    `json:"lastCoupon,omitzero"`
	NextCoupon      Date    `json:"nextCoupon,omitzero"`
	CouponPayment   float64 `json:"couponPayment"` // per bond
}

// Metrics values the holding against the terms at the reference date.
// Per-lot cost basis is the dirty price at each lot's trade date times
// quantity, plus fees.
func (t BondTerms) Metrics(h BondHolding, on Date) BondMetrics {
	var m BondMetrics

	var weightedClean float64
	for _, l := range h.entries() {
		m.OpenQuantity += l.Quantity
		m.CostBasis += l.Quantity*t.DirtyPrice(l.CleanPrice, l.Date) + l.Fees
		weightedClean += l.Quantity * l.CleanPrice
	}
	if m.OpenQuantity > 0 {
		m.AvgCleanPrice = weightedClean / m.OpenQuantity
	}

	m.AccruedInterest = t.AccruedInterest(on)
	m.DirtyPrice = t.DirtyPrice(h.MarkCleanPrice, on)
	m.MarketValue = m.OpenQuantity * m.DirtyPrice
	m.YTM = t.ApproxYTM(m.DirtyPrice, on)
	m.CouponPayment = t.CouponPayment()
	if last, next, ok := t.CouponDates(on); ok {
		m.LastCoupon, m.NextCoupon = last, next
	}
	return m
}
