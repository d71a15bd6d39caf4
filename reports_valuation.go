package hostfolio

import (
	"fmt"

	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
)

// ProjectionReport projects the operating result of the portfolio year by year.
//
// Revenue grows at Growth, operating expenses at Inflation.
type ProjectionReport struct {
	Base      date.Range      `json:"base"`
	Currency  string          `json:"currency"`
	Growth    float64         `json:"growth"`
	Inflation float64         `json:"inflation"`
	Start     ProjectedYear   `json:"start"` // the base range figures
	Years     []ProjectedYear `json:"years"`
}

// ProjectedYear is the operating result of one year.
type ProjectedYear struct {
	Year     int     `json:"year"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"` // deductions, variable costs and fixed expenses
	NOI      float64 `json:"noi"`
}

// NewProjectionReport projects 'years' years after the base range.
func (as *AccountingSystem) NewProjectionReport(base date.Range, years int, growth, inflation float64) (*ProjectionReport, error) {
	s := as.incomeStatement(base, "")
	start := ProjectedYear{
		Year:     base.To.Year(),
		Revenue:  s.GrossRevenue,
		Expenses: s.Deductions + s.VariableCosts + s.FixedExpenses,
	}
	start.NOI = finance.NOI(start.Revenue, start.Expenses)

	revenues, err := finance.ProjectPeriods(start.Revenue, finance.ConstantRates(growth, years), years)
	if err != nil {
		return nil, fmt.Errorf("cannot project revenue: %w", err)
	}
	expenses, err := finance.ProjectPeriods(start.Expenses, finance.ConstantRates(inflation, years), years)
	if err != nil {
		return nil, fmt.Errorf("cannot project expenses: %w", err)
	}
	report := &ProjectionReport{
		Base:      base,
		Currency:  as.Currency,
		Growth:    growth,
		Inflation: inflation,
		Start:     start,
		Years:     make([]ProjectedYear, years),
	}
	for i := range report.Years {
		report.Years[i] = ProjectedYear{
			Year:     start.Year + i + 1,
			Revenue:  revenues[i],
			Expenses: expenses[i],
			NOI:      finance.NOI(revenues[i], expenses[i]),
		}
	}
	return report, nil
}

// NOIs returns the projected NOI, one per year.
func (r *ProjectionReport) NOIs() []float64 {
	flows := make([]float64, len(r.Years))
	for i, y := range r.Years {
		flows[i] = y.NOI
	}
	return flows
}

// ValuationReport values the portfolio on a date.
type ValuationReport struct {
	Date       date.Date            `json:"date"`
	Currency   string               `json:"currency"`
	Projection *ProjectionReport    `json:"projection"`
	DCF        finance.DCFValuation `json:"dcf"`

	Debt        float64 `json:"debt"`
	Cash        float64 `json:"cash"`
	EquityValue float64 `json:"equityValue"` // DCF enterprise value less debt plus cash

	// trailing twelve months
	Revenue float64 `json:"revenue"`
	EBITDA  float64 `json:"ebitda"`

	EVToEBITDA  float64 `json:"evToEbitda"`
	EVToRevenue float64 `json:"evToRevenue"`

	MarketValue float64 `json:"marketValue"` // latest appraisals
	Liabilities float64 `json:"liabilities"` // loans and taxes payable
	NAV         float64 `json:"nav"`
}

// ValuationParams are the assumptions of a valuation.
type ValuationParams struct {
	Years          int     // projected years
	Growth         float64 // yearly revenue growth
	Inflation      float64 // yearly expenses growth
	DiscountRate   float64
	TerminalGrowth float64
}

// DefaultValuationParams are the assumptions used when none are given.
func DefaultValuationParams() ValuationParams {
	return ValuationParams{Years: 5, Growth: 0.05, Inflation: 0.04, DiscountRate: 0.12, TerminalGrowth: 0.03}
}

// NewValuationReport discounts the NOI projected from the twelve months ending
// on 'on' and compares it with the net asset value.
func (as *AccountingSystem) NewValuationReport(on date.Date, p ValuationParams) (*ValuationReport, error) {
	ttm := date.NewRange(on.AddMonths(-12).Add(1), on)
	projection, err := as.NewProjectionReport(ttm, p.Years, p.Growth, p.Inflation)
	if err != nil {
		return nil, err
	}
	dcf, err := finance.DCF(projection.NOIs(), p.DiscountRate, p.TerminalGrowth)
	if err != nil {
		return nil, fmt.Errorf("cannot discount the projected NOI: %w", err)
	}
	current, nonCurrent := as.debt(on, "")
	s := as.incomeStatement(ttm, "")
	v := &ValuationReport{
		Date:       on,
		Currency:   as.Currency,
		Projection: projection,
		DCF:        dcf,
		Debt:       current + nonCurrent,
		Cash:       as.Cash(on),
		Revenue:    s.GrossRevenue,
		EBITDA:     s.EBITDA,
	}
	v.EquityValue = finance.EquityValue(dcf.EnterpriseValue, v.Debt, v.Cash)
	v.EVToEBITDA = finance.EVToEBITDA(dcf.EnterpriseValue, v.EBITDA)
	v.EVToRevenue = finance.EVToRevenue(dcf.EnterpriseValue, v.Revenue)
	for prop := range as.Ledger.Properties() {
		if prop.Date.After(on) {
			continue
		}
		value, _ := as.marketValue(prop, on)
		v.MarketValue += value
	}
	v.Liabilities = v.Debt + as.taxesPayable(on)
	v.NAV = finance.NAV(v.MarketValue+v.Cash, v.Liabilities)
	return v, nil
}
