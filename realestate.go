package valuation

import "math"

// PropertyTerms describes one directly-held real-estate position. The four
// blocks follow the record the position embeds: acquisition, financing,
// income, expenses, and the latest appraisal.
type PropertyTerms struct {
	Acquisition PropertyAcquisition `json:"acquisition"`
	Financing   PropertyFinancing   `json:"financing"`
	Income      PropertyIncome      `json:"income"`
	Expenses    PropertyExpenses    `json:"expenses"`
	Valuation   PropertyValuation   `json:"valuation"`
	Currency    string              `json:"currency,omitempty"`
}

type PropertyAcquisition struct {
	PurchaseDate  Date    `json:"purchaseDate"`
	PurchasePrice float64 `json:"purchasePrice"`
	ClosingCosts  float64 `json:"closingCosts,omitempty"`
	Improvements  float64 `json:"improvements,omitempty"`
}

type PropertyFinancing struct {
	Mortgaged      bool    `json:"mortgaged"`
	Principal      float64 `json:"principal,omitempty"`
	Rate           float64 `json:"rate,omitempty"` // annual, percent
	TermMonths     int     `json:"termMonths,omitempty"`
	MonthlyPayment float64 `json:"monthlyPayment,omitempty"` // overrides the amortized payment when set
}

type PropertyIncome struct {
	MonthlyRent float64 `json:"monthlyRent,omitempty"`
	OtherIncome float64 `json:"otherIncome,omitempty"` // monthly
}

type PropertyExpenses struct {
	Maintenance float64 `json:"maintenance,omitempty"` // all monthly
	Taxes       float64 `json:"taxes,omitempty"`
	Insurance   float64 `json:"insurance,omitempty"`
	Management  float64 `json:"management,omitempty"`
}

type PropertyValuation struct {
	CurrentValue float64 `json:"currentValue"`
	AsOf         Date    `json:"asOf"`
}

// MortgagePayment is the standard amortization formula
// P × r × (1+r)^n / ((1+r)^n − 1) for a monthly payment, where r is the
// monthly rate and n the term in months. Returns 0 for non-positive
// principal or term; a zero rate degrades to straight-line principal/term.
func MortgagePayment(principal, annualRatePct float64, termMonths int) float64 {
	if principal <= 0 || termMonths <= 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	if r <= 0 {
		return principal / float64(termMonths)
	}
	pow := math.Pow(1+r, float64(termMonths))
	return principal * r * pow / (pow - 1)
}

// PropertyMetrics is the valuation snapshot of a real-estate position.
//
// Equity subtracts the original loan principal, not the amortized remaining
// balance, so it understates equity as the loan is paid down. This is a
// known simplification of the model.
type PropertyMetrics struct {
	CostBasis       float64 `json:"costBasis"`
	Equity          float64 `json:"equity"`
	NOI             float64 `json:"noi"` // annualized net operating income
	CapRate         Percent `json:"capRate"`
	MonthlyCashFlow float64 `json:"monthlyCashFlow"`
	MortgagePayment float64 `json:"mortgagePayment"`
	Appreciation    Percent `json:"appreciation"` // CAGR since purchase
	LoanToValue     Percent `json:"loanToValue"`
	DSCR            float64 `json:"dscr"` // +Inf when there is no debt service
}

func (m PropertyMetrics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("costBasis", m.CostBasis)
	w.Append("equity", m.Equity)
	w.Append("noi", m.NOI)
	w.Append("capRate", float64(m.CapRate))
	w.Append("monthlyCashFlow", m.MonthlyCashFlow)
	w.Append("mortgagePayment", m.MortgagePayment)
	w.Append("appreciation", float64(m.Appreciation))
	w.Append("loanToValue", float64(m.LoanToValue))
	if !math.IsInf(m.DSCR, 1) {
		w.Append("dscr", m.DSCR)
	}
	return w.MarshalJSON()
}

// monthlyIncome is rent plus other recurring income.
func (t PropertyTerms) monthlyIncome() float64 {
	return t.Income.MonthlyRent + t.Income.OtherIncome
}

// monthlyExpenses is the sum of the operating expense block, excluding debt
// service.
func (t PropertyTerms) monthlyExpenses() float64 {
	e := t.Expenses
	return e.Maintenance + e.Taxes + e.Insurance + e.Management
}

// mortgagePayment resolves the monthly debt service: the explicit payment
// when provided, else the amortized one, zero when not mortgaged.
func (t PropertyTerms) mortgagePayment() float64 {
	if !t.Financing.Mortgaged {
		return 0
	}
	if t.Financing.MonthlyPayment > 0 {
		return t.Financing.MonthlyPayment
	}
	return MortgagePayment(t.Financing.Principal, t.Financing.Rate, t.Financing.TermMonths)
}

// Metrics computes the valuation snapshot as of the given date (used only
// for the years-owned term of the appreciation CAGR).
func (t PropertyTerms) Metrics(on Date) PropertyMetrics {
	var m PropertyMetrics

	m.CostBasis = t.Acquisition.PurchasePrice + t.Acquisition.ClosingCosts + t.Acquisition.Improvements

	value := t.Valuation.CurrentValue
	m.Equity = value
	if t.Financing.Mortgaged {
		m.Equity = value - t.Financing.Principal
	}

	m.NOI = (t.monthlyIncome() - t.monthlyExpenses()) * 12
	if value > 0 {
		m.CapRate = Percent(m.NOI / value * 100)
	}

	m.MortgagePayment = t.mortgagePayment()
	m.MonthlyCashFlow = t.monthlyIncome() - t.monthlyExpenses() - m.MortgagePayment

	yearsOwned := float64(on.Sub(t.Acquisition.PurchaseDate)) / 365.25
	if yearsOwned > 0 && t.Acquisition.PurchasePrice > 0 && value > 0 {
		m.Appreciation = Percent((math.Pow(value/t.Acquisition.PurchasePrice, 1/yearsOwned) - 1) * 100)
	}

	if t.Financing.Mortgaged && value > 0 {
		m.LoanToValue = Percent(t.Financing.Principal / value * 100)
	}

	annualDebtService := m.MortgagePayment * 12
	if annualDebtService > 0 {
		m.DSCR = m.NOI / annualDebtService
	} else {
		m.DSCR = math.Inf(1)
	}

	return m
}
