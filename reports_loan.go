package hostfolio

import (
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
)

// LoanReport details the loans of the portfolio on a date.
type LoanReport struct {
	Date     date.Date    `json:"date"`
	Currency string       `json:"currency"`
	Loans    []LoanDetail `json:"loans"`
}

// LoanDetail is a loan, its schedule and its position on the report date.
type LoanDetail struct {
	ID       string                    `json:"id,omitempty"`
	Property string                    `json:"property"`
	System   string                    `json:"system"`
	Terms    finance.LoanTerms         `json:"terms"`
	Schedule []finance.AmortizationRow `json:"schedule"`
	Summary  finance.LoanSummary       `json:"summary"`
	Paid     int                       `json:"paid"`    // installments due on or before the report date
	Balance  float64                   `json:"balance"` // outstanding principal on the report date
}

// NewLoanReport lists the loans taken on or before 'on', for a property or all
// of them if property is "".
func (as *AccountingSystem) NewLoanReport(property string, on date.Date) (*LoanReport, error) {
	if property != "" {
		if err := as.checkProperty(property); err != nil {
			return nil, err
		}
	}
	report := &LoanReport{Date: on, Currency: as.Currency, Loans: []LoanDetail{}}
	for _, lp := range as.loans {
		if lp.Date.After(on) || (property != "" && lp.Property != property) {
			continue
		}
		d := LoanDetail{
			ID:       lp.ID,
			Property: lp.Property,
			System:   lp.System,
			Terms:    lp.terms,
			Schedule: lp.rows,
			Summary:  finance.Summarize(lp.rows),
		}
		d.Paid, d.Balance = lp.position(on)
		report.Loans = append(report.Loans, d)
	}
	return report, nil
}

// DepreciationReport is the depreciation state of every asset on a date.
type DepreciationReport struct {
	Date     date.Date                  `json:"date"`
	Currency string                     `json:"currency"`
	Assets   []AssetDepreciation        `json:"assets"`
	Totals   finance.DepreciationResult `json:"totals"`
}

// AssetDepreciation is the depreciation of a building or a renovation.
type AssetDepreciation struct {
	Property  string    `json:"property"`
	Kind      string    `json:"kind"`
	Since     date.Date `json:"since"`
	Cost      float64   `json:"cost"`
	Life      float64   `json:"life"`
	YearsUsed float64   `json:"yearsUsed"` // bounded by the useful life
	finance.DepreciationResult
}

// NewDepreciationReport computes the depreciation of the assets in service on 'on'.
// RemainingLife in Totals is the longest remaining life.
func (as *AccountingSystem) NewDepreciationReport(on date.Date) (*DepreciationReport, error) {
	report := &DepreciationReport{Date: on, Currency: as.Currency, Assets: []AssetDepreciation{}}
	for _, a := range as.assets("") {
		if on.Before(a.Since) {
			continue
		}
		d := AssetDepreciation{
			Property:           a.Property,
			Kind:               a.Kind,
			Since:              a.Since,
			Cost:               a.Cost,
			Life:               a.Life,
			YearsUsed:          a.yearsUsed(on),
			DepreciationResult: a.depreciation(on),
		}
		report.Assets = append(report.Assets, d)

		t := &report.Totals
		t.AnnualDepreciation += d.AnnualDepreciation
		t.AccumulatedDepreciation += d.AccumulatedDepreciation
		t.BookValue += d.BookValue
		t.RemainingLife = max(t.RemainingLife, d.RemainingLife)
	}
	return report, nil
}
