package hostfolio

import (
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
)

// PropertyReport gathers the operating metrics of each property over a range.
type PropertyReport struct {
	Range      date.Range        `json:"range"`
	Currency   string            `json:"currency"`
	Properties []PropertyMetrics `json:"properties"`
	Portfolio  PortfolioMetrics  `json:"portfolio"`
}

// PropertyMetrics are the metrics of a single property.
//
// Amounts are for the range. CapRate and CashOnCash are annualized over the
// days the property was owned in the range. Values are as of the range end.
type PropertyMetrics struct {
	Name          string    `json:"name"`
	Units         int       `json:"units"`
	PurchaseDate  date.Date `json:"purchaseDate"`
	PurchasePrice float64   `json:"purchasePrice"`
	MarketValue   float64   `json:"marketValue"`
	ValuationDate date.Date `json:"valuationDate"`

	Revenue           float64 `json:"revenue"`
	OperatingExpenses float64 `json:"operatingExpenses"` // fees, service tax, variable and fixed expenses
	NOI               float64 `json:"noi"`
	DebtService       float64 `json:"debtService"` // interest and principal due
	CashFlow          float64 `json:"cashFlow"`    // NOI after debt service
	CashInvested      float64 `json:"cashInvested"`
	Debt              float64 `json:"debt"`
	Equity            float64 `json:"equity"`

	CapRate      float64              `json:"capRate"`
	CashOnCash   float64              `json:"cashOnCash"`
	LTV          float64              `json:"ltv"`
	DSCR         float64              `json:"dscr"`
	Appreciation finance.Appreciation `json:"appreciation"`

	BookedNights    int     `json:"bookedNights"`
	AvailableNights int     `json:"availableNights"`
	Occupancy       float64 `json:"occupancy"`
	ADR             float64 `json:"adr"`
	RevPAR          float64 `json:"revpar"`
}

// PortfolioMetrics are the consolidated metrics of all properties.
type PortfolioMetrics struct {
	MarketValue float64 `json:"marketValue"`
	Debt        float64 `json:"debt"`
	Equity      float64 `json:"equity"`
	NOI         float64 `json:"noi"`
	Cash        float64 `json:"cash"`
	Liabilities float64 `json:"liabilities"` // loans and taxes payable
	NAV         float64 `json:"nav"`
	LTV         float64 `json:"ltv"`
	Occupancy   float64 `json:"occupancy"`
	RevPAR      float64 `json:"revpar"`
}

// NewPropertyReport computes the metrics of every property owned at the end of the range.
func (as *AccountingSystem) NewPropertyReport(r date.Range) (*PropertyReport, error) {
	report := &PropertyReport{
		Range:      r,
		Currency:   as.Currency,
		Properties: []PropertyMetrics{},
	}
	var booked, available, revenue float64
	for p := range as.Ledger.Properties() {
		if p.Date.After(r.To) {
			continue
		}
		m := as.propertyMetrics(p, r)
		report.Properties = append(report.Properties, m)

		pm := &report.Portfolio
		pm.MarketValue += m.MarketValue
		pm.Debt += m.Debt
		pm.NOI += m.NOI
		booked += float64(m.BookedNights)
		available += float64(m.AvailableNights)
		revenue += m.Revenue
	}
	pm := &report.Portfolio
	pm.Equity = finance.Equity(pm.MarketValue, pm.Debt)
	pm.Cash = as.Cash(r.To)
	pm.Liabilities = pm.Debt + as.taxesPayable(r.To)
	pm.NAV = finance.NAV(pm.MarketValue+pm.Cash, pm.Liabilities)
	pm.LTV = finance.LTV(pm.Debt, pm.MarketValue)
	pm.Occupancy = finance.Occupancy(booked, available)
	pm.RevPAR = finance.RevPAR(revenue, available)
	return report, nil
}

// propertyMetrics computes the metrics of a property p over r.
func (as *AccountingSystem) propertyMetrics(p Property, r date.Range) PropertyMetrics {
	m := PropertyMetrics{
		Name:          p.Name,
		Units:         p.Units,
		PurchaseDate:  p.Date,
		PurchasePrice: p.Price.InexactFloat64(),
	}
	m.MarketValue, m.ValuationDate = as.marketValue(p, r.To)

	a := as.activity(r, p.Name)
	m.Revenue = a.Gross.InexactFloat64()
	iss := finance.ServiceTax(m.Revenue, as.Rates.ServiceTax)
	m.OperatingExpenses = a.Fees.Add(a.Variable).Add(a.Fixed).InexactFloat64() + iss
	m.NOI = finance.NOI(m.Revenue, m.OperatingExpenses)
	m.DebtService = a.Interest + a.Principal
	m.CashFlow = m.NOI - m.DebtService

	total := as.activity(until(r.To), p.Name)
	m.CashInvested = total.Purchases.Add(total.Renovations).Sub(total.LoanProceeds).InexactFloat64()
	current, nonCurrent := as.debt(r.To, p.Name)
	m.Debt = current + nonCurrent
	m.Equity = finance.Equity(m.MarketValue, m.Debt)

	owned := date.NewRange(r.From, r.To)
	if owned.From.Before(p.Date) {
		owned.From = p.Date
	}
	days := owned.Days()
	annual := 0.0
	if days > 0 {
		annual = 365.25 / float64(days)
	}
	m.CapRate = finance.CapRate(m.NOI*annual, m.MarketValue)
	m.CashOnCash = finance.CashOnCash(m.CashFlow*annual, m.CashInvested)
	m.LTV = finance.LTV(m.Debt, m.MarketValue)
	m.DSCR = finance.DebtServiceCoverage(m.NOI, m.DebtService)
	m.Appreciation = finance.Appreciate(m.PurchasePrice, m.MarketValue, p.Date.YearsBetween(r.To))

	m.BookedNights = a.BookedNights
	m.AvailableNights = days * p.Units
	m.Occupancy = finance.Occupancy(float64(m.BookedNights), float64(m.AvailableNights))
	m.ADR = finance.ADR(m.Revenue, float64(m.BookedNights))
	m.RevPAR = finance.RevPAR(m.Revenue, float64(m.AvailableNights))
	return m
}
