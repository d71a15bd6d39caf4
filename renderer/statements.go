package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hostfolio"
	md "github.com/nao1215/markdown"
)

// IncomeStatementMarkdown renders an income statement (DRE) as markdown.
func IncomeStatementMarkdown(r *hostfolio.IncomeStatementReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := fmt.Sprintf("Income Statement %s", r.Range)
	if r.Property != "" {
		title = fmt.Sprintf("Income Statement of %s %s", r.Property, r.Range)
	}
	doc.H1(title)

	s, cur := r.Statement, r.Currency
	neg := func(v float64) string { return amount(-v, cur) }
	doc.Table(md.TableSet{
		Alignment: rightAligned(3),
		Header:    []string{"", "Amount", "Margin"},
		Rows: [][]string{
			{md.Bold("Gross Revenue"), md.Bold(amount(s.GrossRevenue, cur)), ""},
			{"(-) Platform Fees", neg(r.PlatformFees), ""},
			{"(-) Service Tax (ISS)", neg(r.ServiceTax), ""},
			{"(-) Other Deductions", neg(s.Deductions - r.PlatformFees - r.ServiceTax), ""},
			{md.Bold("Net Revenue"), md.Bold(amount(s.NetRevenue, cur)), ""},
			{"(-) Variable Costs", neg(s.VariableCosts), ""},
			{md.Bold("Gross Profit"), md.Bold(amount(s.GrossProfit, cur)), percent(s.GrossMargin)},
			{"(-) Fixed Expenses", neg(s.FixedExpenses), ""},
			{md.Bold("EBITDA"), md.Bold(amount(s.EBITDA, cur)), percent(s.EBITDAMargin)},
			{"(-) Depreciation", neg(s.Depreciation), ""},
			{md.Bold("EBIT"), md.Bold(amount(s.EBIT, cur)), ""},
			{"(+) Financial Income", amount(s.FinancialIncome, cur), ""},
			{"(-) Loan Interest", neg(r.LoanInterest), ""},
			{"(-) Other Financial Expenses", neg(s.FinancialExpenses - r.LoanInterest), ""},
			{md.Bold("Pre-Tax Profit"), md.Bold(amount(s.PreTaxProfit, cur)), ""},
			{"(-) IR", neg(s.IR), ""},
			{"(-) CSLL", neg(s.CSLL), ""},
			{md.Bold("Net Profit"), md.Bold(amount(s.NetProfit, cur)), percent(s.NetMargin)},
		},
	})
	return doc.String()
}

// BalanceSheetMarkdown renders a balance sheet as markdown.
func BalanceSheetMarkdown(r *hostfolio.BalanceSheetReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	s, cur := r.Statement, r.Currency

	doc.H1(fmt.Sprintf("Balance Sheet on %s", r.Date))

	doc.H2("Assets")
	doc.Table(twoColumns(
		[]string{md.Bold("Total Assets"), md.Bold(amount(s.Assets.Total, cur))},
		[]string{"Cash", amount(s.Assets.Current.Cash, cur)},
		[]string{"Receivables", amount(s.Assets.Current.Receivables, cur)},
		[]string{md.Bold("Current Assets"), md.Bold(amount(s.Assets.Current.Total, cur))},
		[]string{"Properties and Improvements", amount(s.Assets.NonCurrent.FixedAssets, cur)},
		[]string{"(-) Accumulated Depreciation", amount(-s.Assets.NonCurrent.AccumulatedDepreciation, cur)},
		[]string{md.Bold("Non-Current Assets"), md.Bold(amount(s.Assets.NonCurrent.Total, cur))},
	))

	doc.H2("Liabilities and Equity")
	// Statements built from raw figures have no loan or tax detail.
	detailed := r.Loans.Total() != 0 || r.TaxesPayable != 0
	rows := [][]string{{md.Bold("Total Liabilities and Equity"), md.Bold(amount(s.LiabilitiesAndEquity, cur))}}
	if detailed {
		rows = append(rows,
			[]string{"Loans, next 12 installments", amount(r.Loans.Current, cur)},
			[]string{"Taxes Payable", amount(r.TaxesPayable, cur)},
		)
	}
	rows = append(rows, []string{md.Bold("Current Liabilities"), md.Bold(amount(s.Liabilities.Current, cur))})
	if detailed {
		rows = append(rows, []string{"Loans, later installments", amount(r.Loans.NonCurrent, cur)})
	}
	rows = append(rows,
		[]string{md.Bold("Non-Current Liabilities"), md.Bold(amount(s.Liabilities.NonCurrent, cur))},
		[]string{"Capital", amount(s.Equity.Capital, cur)},
		[]string{"Reserves", amount(s.Equity.Reserves, cur)},
		[]string{"Retained Earnings", amount(s.Equity.RetainedEarnings, cur)},
		[]string{md.Bold("Equity"), md.Bold(amount(s.Equity.Total, cur))},
	)
	doc.Table(twoColumns(rows[0], rows[1:]...))

	if !s.Balanced {
		doc.PlainText(md.Bold(fmt.Sprintf("Warning: the balance sheet is off by %s.", signed(s.Difference, cur))))
	}
	return doc.String()
}

// CashFlowMarkdown renders a cash flow statement as markdown.
func CashFlowMarkdown(r *hostfolio.CashFlowReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	a, s, cur := r.Activities, r.Statement, r.Currency
	in := func(v float64) string { return signed(v, cur) }
	out := func(v float64) string { return signed(-v, cur) }

	doc.H1(fmt.Sprintf("Cash Flow %s", r.Range))
	doc.Table(twoColumns(
		[]string{md.Bold("Opening Balance"), md.Bold(amount(s.OpeningBalance, cur))},
		[]string{"Receipts", in(a.Receipts)},
		[]string{"Operating Payments", out(a.OperatingPayments)},
		[]string{"Interest Paid", out(a.InterestPaid)},
		[]string{"Taxes Paid", out(a.TaxesPaid)},
		[]string{md.Bold("Operating Activities"), md.Bold(in(s.Operating))},
		[]string{"Asset Sales", in(a.AssetSales)},
		[]string{"Acquisitions", out(a.Acquisitions)},
		[]string{"Improvements", out(a.Improvements)},
		[]string{md.Bold("Investing Activities"), md.Bold(in(s.Investing))},
		[]string{"Contributions", in(a.Contributions)},
		[]string{"Loan Proceeds", in(a.LoanProceeds)},
		[]string{"Distributions", out(a.Distributions)},
		[]string{"Loan Repayments", out(a.LoanRepayments)},
		[]string{md.Bold("Financing Activities"), md.Bold(in(s.Financing))},
		[]string{md.Bold("Net Change"), md.Bold(in(s.Total))},
		[]string{md.Bold("Closing Balance"), md.Bold(amount(s.ClosingBalance, cur))},
	))
	return doc.String()
}
