package hostfolio

import (
	"fmt"
	"slices"

	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
	"github.com/shopspring/decimal"
)

// AccountingSystem turns a ledger into financial statements and reports.
//
// It is stateless with respect to the ledger: every figure is recomputed from
// the records. Loan schedules are computed once at construction.
type AccountingSystem struct {
	Ledger   *Ledger
	Currency string
	Rates    finance.TaxRates

	loans []loanPosition
}

// loanPosition is a loan, its amortization system and its schedule.
type loanPosition struct {
	Loan
	system finance.AmortizationSystem
	terms  finance.LoanTerms
	rows   []finance.AmortizationRow
}

// position returns the installments due on or before 'on' and the principal
// still owed after them.
func (lp loanPosition) position(on date.Date) (paid int, balance float64) {
	paid = finance.PaidInstallments(lp.rows, on)
	return paid, lp.system.RemainingBalance(lp.terms, paid)
}

// NewAccountingSystem creates a new accounting system for a ledger, reporting in 'currency'.
func NewAccountingSystem(ledger *Ledger, currency string, rates finance.TaxRates) (*AccountingSystem, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, fmt.Errorf("invalid reporting currency: %w", err)
	}
	as := &AccountingSystem{Ledger: ledger, Currency: currency, Rates: rates}
	for loan := range ledger.Loans("") {
		system, terms, err := loan.Amortization()
		if err != nil {
			return nil, fmt.Errorf("invalid loan %s on %s: %w", loan.ID, loan.Date, err)
		}
		as.loans = append(as.loans, loanPosition{Loan: loan, system: system, terms: terms, rows: system.Schedule(terms)})
	}
	return as, nil
}

// activity totals the movements of a range.
type activity struct {
	Gross, Fees                    decimal.Decimal
	Variable, Fixed                decimal.Decimal
	FinancialExpenses, TaxPayments decimal.Decimal
	FinancialIncome                decimal.Decimal
	Purchases, Renovations         decimal.Decimal
	Contributions, Distributions   decimal.Decimal
	LoanProceeds                   decimal.Decimal
	BookedNights                   int

	// from loan schedules, installments due in the range.
	Interest, Principal float64
}

// activity sums the records of range r. When property is not empty only the
// records of that property are counted, portfolio wide records are left out.
func (as *AccountingSystem) activity(r date.Range, property string) activity {
	var a activity
	mine := func(p string) bool { return property == "" || p == property }
	for _, rec := range as.Ledger.Records(InRange(r)) {
		switch v := rec.(type) {
		case Property:
			if mine(v.Name) {
				a.Purchases = a.Purchases.Add(v.Price)
			}
		case Loan:
			if mine(v.Property) {
				a.LoanProceeds = a.LoanProceeds.Add(v.Principal)
			}
		case Booking:
			if mine(v.Property) {
				a.Gross = a.Gross.Add(v.Amount)
				a.Fees = a.Fees.Add(v.Fees)
				a.BookedNights += v.Nights
			}
		case Expense:
			if property != "" && v.Property != property {
				continue
			}
			switch v.Category {
			case Variable:
				a.Variable = a.Variable.Add(v.Amount)
			case Financial:
				a.FinancialExpenses = a.FinancialExpenses.Add(v.Amount)
			case Tax:
				a.TaxPayments = a.TaxPayments.Add(v.Amount)
			default:
				a.Fixed = a.Fixed.Add(v.Amount)
			}
		case Renovation:
			if mine(v.Property) {
				a.Renovations = a.Renovations.Add(v.Amount)
			}
		case Income:
			if property == "" {
				a.FinancialIncome = a.FinancialIncome.Add(v.Amount)
			}
		case Contribute:
			if property == "" {
				a.Contributions = a.Contributions.Add(v.Amount)
			}
		case Distribute:
			if property == "" {
				a.Distributions = a.Distributions.Add(v.Amount)
			}
		}
	}
	for _, lp := range as.loans {
		if !mine(lp.Property) {
			continue
		}
		for _, row := range lp.rows {
			if r.Contains(row.DueDate) {
				a.Interest += row.Interest
				a.Principal += row.Principal
			}
		}
	}
	return a
}

// cashFlowInput maps an activity on the cash flow statement.
func (a activity) cashFlowInput(opening float64) finance.CashFlowInput {
	return finance.CashFlowInput{
		OpeningBalance:    opening,
		Receipts:          a.Gross.Sub(a.Fees).Add(a.FinancialIncome).InexactFloat64(),
		OperatingPayments: a.Variable.Add(a.Fixed).Add(a.FinancialExpenses).InexactFloat64(),
		InterestPaid:      a.Interest,
		TaxesPaid:         a.TaxPayments.InexactFloat64(),
		Acquisitions:      a.Purchases.InexactFloat64(),
		Improvements:      a.Renovations.InexactFloat64(),
		Contributions:     a.Contributions.InexactFloat64(),
		Distributions:     a.Distributions.InexactFloat64(),
		LoanProceeds:      a.LoanProceeds.InexactFloat64(),
		LoanRepayments:    a.Principal,
	}
}

// until is the range of every record up to 'on'.
func until(on date.Date) date.Range { return date.Range{To: on} }

// Cash returns the cash balance on a date: every inflow minus every outflow so far.
func (as *AccountingSystem) Cash(on date.Date) float64 {
	return finance.CashFlow(as.activity(until(on), "").cashFlowInput(0)).ClosingBalance
}

// asset is a depreciable asset: the building of a property or a renovation.
type asset struct {
	Property string
	Kind     string // "building" or "renovation"
	Since    date.Date
	Cost     float64
	Life     float64 // in years
}

// assets lists the depreciable assets of a property, or of the portfolio if property is "".
func (as *AccountingSystem) assets(property string) []asset {
	var assets []asset
	for _, rec := range as.Ledger.Records(ByCommand(CmdProperty), ByCommand(CmdRenovation)) {
		switch v := rec.(type) {
		case Property:
			if property == "" || v.Name == property {
				assets = append(assets, asset{Property: v.Name, Kind: "building", Since: v.Date, Cost: v.Building().InexactFloat64(), Life: float64(v.Life)})
			}
		case Renovation:
			if property == "" || v.Property == property {
				assets = append(assets, asset{Property: v.Property, Kind: "renovation", Since: v.Date, Cost: v.Amount.InexactFloat64(), Life: float64(v.Life)})
			}
		}
	}
	return assets
}

// yearsUsed is the time in service on a date, bounded by the useful life.
func (a asset) yearsUsed(on date.Date) float64 {
	if on.Before(a.Since) {
		return 0
	}
	return min(a.Since.YearsBetween(on), a.Life)
}

// depreciation is the state of the asset on a date.
func (a asset) depreciation(on date.Date) finance.DepreciationResult {
	return finance.StraightLine(a.Cost, a.Life, a.yearsUsed(on))
}

// accumulatedDepreciation sums the depreciation of assets up to a date.
func accumulatedDepreciation(assets []asset, on date.Date) float64 {
	total := 0.0
	for _, a := range assets {
		if on.Before(a.Since) {
			continue
		}
		total += a.depreciation(on).AccumulatedDepreciation
	}
	return total
}

// depreciation is the depreciation expense of range r.
func (as *AccountingSystem) depreciation(r date.Range, property string) float64 {
	assets := as.assets(property)
	return accumulatedDepreciation(assets, r.To) - accumulatedDepreciation(assets, r.From.Add(-1))
}

// statement is an income statement with the service tax it accrued.
type statement struct {
	finance.IncomeStatementResult
	ServiceTax float64
	Fees       float64
	Interest   float64
}

// incomeStatement builds the income statement of a range.
func (as *AccountingSystem) incomeStatement(r date.Range, property string) statement {
	a := as.activity(r, property)
	gross := a.Gross.InexactFloat64()
	iss := finance.ServiceTax(gross, as.Rates.ServiceTax)
	in := finance.IncomeStatementInput{
		GrossRevenue:      gross,
		Deductions:        a.Fees.InexactFloat64() + iss,
		VariableCosts:     a.Variable.InexactFloat64(),
		FixedExpenses:     a.Fixed.InexactFloat64(),
		Depreciation:      as.depreciation(r, property),
		FinancialExpenses: a.FinancialExpenses.InexactFloat64() + a.Interest,
		FinancialIncome:   a.FinancialIncome.InexactFloat64(),
	}
	tax := as.Rates.Corporate(finance.IncomeStatement(in).PreTaxProfit)
	in.IR, in.CSLL = tax.IR, tax.CSLL
	return statement{
		IncomeStatementResult: finance.IncomeStatement(in),
		ServiceTax:            iss,
		Fees:                  a.Fees.InexactFloat64(),
		Interest:              a.Interest,
	}
}

// fiscalYears iterates over the fiscal years from the first record up to 'on',
// the last one ending on 'on'.
func (as *AccountingSystem) fiscalYears(on date.Date) []date.Range {
	first := as.Ledger.OldestRecordDate()
	if first.IsZero() || on.Before(first) {
		return nil
	}
	return slices.Collect(date.NewRange(first.StartOf(date.Yearly), on).Periods(date.Yearly))
}

// results accumulates the yearly net profits and the taxes accrued up to 'on'.
func (as *AccountingSystem) results(on date.Date) (netProfit, taxes float64) {
	for _, year := range as.fiscalYears(on) {
		s := as.incomeStatement(year, "")
		netProfit += s.NetProfit
		taxes += s.ServiceTax + s.IncomeTax
	}
	return netProfit, taxes
}

// debt splits the outstanding principal of loans on a date into the part due
// in the next 12 installments and the rest.
func (as *AccountingSystem) debt(on date.Date, property string) (current, nonCurrent float64) {
	for _, lp := range as.loans {
		if lp.Date.After(on) || (property != "" && lp.Property != property) {
			continue
		}
		paid, outstanding := lp.position(on)
		for _, row := range lp.rows[paid:min(paid+12, len(lp.rows))] {
			current += row.Principal
		}
		nonCurrent += outstanding
	}
	nonCurrent -= current
	return current, max(0, nonCurrent)
}

// marketValue returns the latest appraisal of a property on a date, or its price.
func (as *AccountingSystem) marketValue(p Property, on date.Date) (float64, date.Date) {
	var values date.History[float64]
	values.Append(p.Date, p.Price.InexactFloat64())
	for _, rec := range as.Ledger.Records(ByCommand(CmdAppraise)) {
		if v := rec.(Appraise); v.Property == p.Name {
			values.Append(v.Date, v.Value.InexactFloat64())
		}
	}
	day, value, ok := values.ValueAsOf(on)
	if !ok {
		return 0, date.Date{}
	}
	return value, day
}

// taxesPayable is the service and corporate taxes accrued up to 'on' minus the tax payments.
func (as *AccountingSystem) taxesPayable(on date.Date) float64 {
	_, taxes := as.results(on)
	return taxes - as.activity(until(on), "").TaxPayments.InexactFloat64()
}

// checkProperty returns an error if the property is not declared in the ledger.
func (as *AccountingSystem) checkProperty(name string) error {
	if _, ok := as.Ledger.Property(name); !ok {
		return fmt.Errorf("unknown property %q", name)
	}
	return nil
}
