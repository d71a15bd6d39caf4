package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
)

// newAccounting returns an accounting system on a small financed rental.
func newAccounting(t *testing.T) *hostfolio.AccountingSystem {
	t.Helper()
	on := date.MustParse
	ledger := hostfolio.NewLedger()
	for _, rec := range []hostfolio.Record{
		hostfolio.NewContribute(on("2024-01-01"), "", 200000),
		hostfolio.NewProperty(on("2024-01-01"), "", "loft", 250000, 50000, 25, 1),
		hostfolio.NewLoan(on("2024-01-01"), "", "loft", 100000, 0.12, 24, "price"),
		hostfolio.NewBooking(on("2024-02-10"), "", "loft", 4, 1234.56, 200),
		hostfolio.NewExpense(on("2024-02-11"), "", "loft", hostfolio.Variable, 150),
		hostfolio.NewRenovation(on("2024-03-01"), "", "loft", 10000, 0),
	} {
		v, err := ledger.Validate(rec)
		if err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		ledger.Append(v)
	}
	as, err := hostfolio.NewAccountingSystem(ledger, "BRL", finance.DefaultTaxRates())
	if err != nil {
		t.Fatalf("NewAccountingSystem() error = %v", err)
	}
	return as
}

// contains checks that every part is in the markdown.
func contains(t *testing.T, markdown string, parts ...string) {
	t.Helper()
	for _, part := range parts {
		if !strings.Contains(markdown, part) {
			t.Errorf("markdown does not contain %q:\n%s", part, markdown)
		}
	}
}

func TestIncomeStatementMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewIncomeStatementReport(date.NewRange(date.MustParse("2024-02-01"), date.MustParse("2024-02-29")), "loft")
	if err != nil {
		t.Fatal(err)
	}
	contains(t, IncomeStatementMarkdown(r),
		"# Income Statement of loft 2024-02",
		"R$1.234,56", // gross revenue
		"Platform Fees",
		"EBITDA",
		"Net Profit",
	)
}

func TestBalanceSheetMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewBalanceSheetReport(date.MustParse("2024-12-31"))
	if err != nil {
		t.Fatal(err)
	}
	md := BalanceSheetMarkdown(r)
	contains(t, md, "# Balance Sheet on 2024-12-31", "R$260.000,00", "Retained Earnings")
	if strings.Contains(md, "Warning") {
		t.Errorf("balance sheet is not balanced:\n%s", md)
	}
}

func TestCashFlowMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewCashFlowReport(date.Year(2024))
	if err != nil {
		t.Fatal(err)
	}
	contains(t, CashFlowMarkdown(r), "# Cash Flow 2024", "Opening Balance", "+R$200.000,00", "Closing Balance")
}

func TestPropertiesMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewPropertyReport(date.Year(2024))
	if err != nil {
		t.Fatal(err)
	}
	contains(t, PropertiesMarkdown(r), "# Properties 2024", "| loft", "(4/366)", "Net Asset Value")

	empty, err := as.NewPropertyReport(date.Year(2023))
	if err != nil {
		t.Fatal(err)
	}
	contains(t, PropertiesMarkdown(empty), "No property owned in this period.")
}

func TestLoanMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewLoanReport("", date.MustParse("2024-06-30"))
	if err != nil {
		t.Fatal(err)
	}
	contains(t, LoanMarkdown(r, false), "# Loans on 2024-06-30", "loft price loan of R$100.000,00", "5/24")
	contains(t, LoanMarkdown(r, true), "2026-01-01")
}

func TestScheduleMarkdown(t *testing.T) {
	terms := finance.LoanTerms{Principal: 1200, TermMonths: 12, StartDate: date.MustParse("2025-01-31")}
	rows := finance.SAC{}.Schedule(terms)
	contains(t, ScheduleMarkdown("SAC", terms, rows, "USD"), "# SAC Schedule", "$1,200.00", "2025-02-28", "$100.00")
}

func TestDepreciationMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewDepreciationReport(date.MustParse("2025-01-01"))
	if err != nil {
		t.Fatal(err)
	}
	contains(t, DepreciationMarkdown(r), "loft building", "loft renovation", "R$8.000,00", "R$1.000,00")
}

func TestValuationMarkdown(t *testing.T) {
	as := newAccounting(t)
	r, err := as.NewValuationReport(date.MustParse("2024-12-31"), hostfolio.ValuationParams{
		Years: 3, Growth: 0.05, Inflation: 0.04, DiscountRate: 0.12, TerminalGrowth: 0.02,
	})
	if err != nil {
		t.Fatal(err)
	}
	contains(t, ValuationMarkdown(r), "# Valuation on 2024-12-31", "2024 (base)", "2027", "Terminal", "12.00%")
}

func TestCalculatorsMarkdown(t *testing.T) {
	plan := finance.ConsortiumPlan{CreditAmount: 100000, AdminFee: 0.15, ReserveFund: 0.02, Insurance: 0.03, TermMonths: 100}
	res, err := finance.Consortium(plan)
	if err != nil {
		t.Fatal(err)
	}
	contains(t, ConsortiumMarkdown(plan, res, "BRL"), "R$1.200,00", "20.00%")

	rates := finance.DefaultTaxRates()
	contains(t, TaxMarkdown(10000, rates, finance.ServiceTax(10000, rates.ServiceTax), rates.Corporate(4000), "BRL"),
		"R$500,00", "R$600,00", "R$360,00", "R$1.460,00")
}
