package hostfolio

import (
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
)

// IncomeStatementReport is the income statement (DRE) of a range, for the
// whole portfolio or a single property.
type IncomeStatementReport struct {
	Range        date.Range                    `json:"range"`
	Property     string                        `json:"property,omitempty"`
	Currency     string                        `json:"currency"`
	ServiceTax   float64                       `json:"serviceTax"`   // ISS part of the deductions
	PlatformFees float64                       `json:"platformFees"` // booking fees part of the deductions
	LoanInterest float64                       `json:"loanInterest"` // installments part of the financial expenses
	Statement    finance.IncomeStatementResult `json:"statement"`
}

// NewIncomeStatementReport builds the income statement of a range. If property is
// not empty only its records are counted and portfolio wide records are left out.
func (as *AccountingSystem) NewIncomeStatementReport(r date.Range, property string) (*IncomeStatementReport, error) {
	if property != "" {
		if err := as.checkProperty(property); err != nil {
			return nil, err
		}
	}
	s := as.incomeStatement(r, property)
	return &IncomeStatementReport{
		Range:        r,
		Property:     property,
		Currency:     as.Currency,
		ServiceTax:   s.ServiceTax,
		PlatformFees: s.Fees,
		LoanInterest: s.Interest,
		Statement:    s.IncomeStatementResult,
	}, nil
}

// BalanceSheetReport is the balance sheet on a date.
type BalanceSheetReport struct {
	Date         date.Date                  `json:"date"`
	Currency     string                     `json:"currency"`
	Loans        LoanBalance                `json:"loans"`
	TaxesPayable float64                    `json:"taxesPayable"`
	Statement    finance.BalanceSheetResult `json:"statement"`
}

// LoanBalance is the outstanding principal of loans, split by maturity.
type LoanBalance struct {
	Current    float64 `json:"current"`    // due in the next 12 installments
	NonCurrent float64 `json:"nonCurrent"` // due later
}

// Total is the outstanding principal.
func (l LoanBalance) Total() float64 { return l.Current + l.NonCurrent }

// NewBalanceSheetReport builds the balance sheet on a date.
func (as *AccountingSystem) NewBalanceSheetReport(on date.Date) (*BalanceSheetReport, error) {
	a := as.activity(until(on), "")
	netProfit, taxes := as.results(on)
	current, nonCurrent := as.debt(on, "")
	payable := taxes - a.TaxPayments.InexactFloat64()

	in := finance.BalanceSheetInput{
		Cash:                    finance.CashFlow(a.cashFlowInput(0)).ClosingBalance,
		FixedAssets:             a.Purchases.Add(a.Renovations).InexactFloat64(),
		AccumulatedDepreciation: accumulatedDepreciation(as.assets(""), on),
		CurrentLiabilities:      current + payable,
		NonCurrentLiabilities:   nonCurrent,
		Capital:                 a.Contributions.InexactFloat64(),
		RetainedEarnings:        netProfit - a.Distributions.InexactFloat64(),
	}
	return &BalanceSheetReport{
		Date:         on,
		Currency:     as.Currency,
		Loans:        LoanBalance{Current: current, NonCurrent: nonCurrent},
		TaxesPayable: payable,
		Statement:    finance.BalanceSheet(in),
	}, nil
}

// CashFlowReport is the cash flow statement of a range.
type CashFlowReport struct {
	Range      date.Range             `json:"range"`
	Currency   string                 `json:"currency"`
	Activities finance.CashFlowInput  `json:"activities"`
	Statement  finance.CashFlowResult `json:"statement"`
}

// NewCashFlowReport builds the cash flow statement of a range. The opening
// balance is the cash on the day before the range.
func (as *AccountingSystem) NewCashFlowReport(r date.Range) (*CashFlowReport, error) {
	opening := as.Cash(r.From.Add(-1))
	in := as.activity(r, "").cashFlowInput(opening)
	return &CashFlowReport{
		Range:      r,
		Currency:   as.Currency,
		Activities: in,
		Statement:  finance.CashFlow(in),
	}, nil
}

// Caller supplied figures bypass the ledger: the builders run directly on them.

// IncomeStatementFromInput builds an income statement report from figures.
func IncomeStatementFromInput(r date.Range, currency string, in finance.IncomeStatementInput) *IncomeStatementReport {
	return &IncomeStatementReport{Range: r, Currency: currency, Statement: finance.IncomeStatement(in)}
}

// BalanceSheetFromInput builds a balance sheet report from figures.
func BalanceSheetFromInput(on date.Date, currency string, in finance.BalanceSheetInput) *BalanceSheetReport {
	return &BalanceSheetReport{Date: on, Currency: currency, Statement: finance.BalanceSheet(in)}
}

// CashFlowFromInput builds a cash flow report from figures.
func CashFlowFromInput(r date.Range, currency string, in finance.CashFlowInput) *CashFlowReport {
	return &CashFlowReport{Range: r, Currency: currency, Activities: in, Statement: finance.CashFlow(in)}
}
