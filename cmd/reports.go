package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
	"github.com/etnz/hostfolio/renderer"
	"github.com/google/subcommands"
)

// report prints a report as JSON when asJSON is set, as markdown otherwise.
func report(asJSON bool, r any, markdown func() string) subcommands.ExitStatus {
	if asJSON {
		if err := printJSON(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(markdown())
	return subcommands.ExitSuccess
}

// accountingSystem loads the accounting system, reporting errors on stderr.
func accountingSystem() (*hostfolio.AccountingSystem, bool) {
	as, err := NewAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating accounting system: %v\n", err)
		return nil, false
	}
	return as, true
}

// --- DRE Command ---

type dreCmd struct {
	rangeFlags
	property string
	input    string
	json     bool
}

func (*dreCmd) Name() string     { return "dre" }
func (*dreCmd) Synopsis() string { return "display the income statement (DRE) of a period" }
func (*dreCmd) Usage() string {
	return `hf dre [-p <period> | -s <start_date>] [-d <end_date>] [-property <name>] [-input <file.json>] [-json]

  Displays the income statement of the portfolio, or of a single property,
  from gross revenue down to net profit.

  With -input, the statement is computed from the figures of a JSON file
  instead of the ledger. See "hf topic statements" for its fields.
`
}

func (c *dreCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f, "year")
	f.StringVar(&c.property, "property", "", "Only count the records of this property")
	f.StringVar(&c.input, "input", "", "JSON file of income statement figures")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *dreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var rep *hostfolio.IncomeStatementReport
	if c.input != "" {
		var in finance.IncomeStatementInput
		if err := readJSON(c.input, &in); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return subcommands.ExitFailure
		}
		rep = hostfolio.IncomeStatementFromInput(r, *currency, in)
	} else {
		as, ok := accountingSystem()
		if !ok {
			return subcommands.ExitFailure
		}
		if rep, err = as.NewIncomeStatementReport(r, c.property); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating income statement: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return report(c.json, rep, func() string { return renderer.IncomeStatementMarkdown(rep) })
}

// --- Balance Command ---

type balanceCmd struct {
	date  string
	input string
	json  bool
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance sheet on a date" }
func (*balanceCmd) Usage() string {
	return `hf balance [-d <date>] [-input <file.json>] [-json]

  Displays the assets, liabilities and equity of the portfolio on a date.

  With -input, the balance sheet is computed from the figures of a JSON file
  instead of the ledger.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the balance sheet")
	f.StringVar(&c.input, "input", "", "JSON file of balance sheet figures")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var rep *hostfolio.BalanceSheetReport
	if c.input != "" {
		var in finance.BalanceSheetInput
		if err := readJSON(c.input, &in); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return subcommands.ExitFailure
		}
		rep = hostfolio.BalanceSheetFromInput(on, *currency, in)
	} else {
		as, ok := accountingSystem()
		if !ok {
			return subcommands.ExitFailure
		}
		if rep, err = as.NewBalanceSheetReport(on); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating balance sheet: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return report(c.json, rep, func() string { return renderer.BalanceSheetMarkdown(rep) })
}

// --- Cash Flow Command ---

type cashflowCmd struct {
	rangeFlags
	input string
	json  bool
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the cash flow statement of a period" }
func (*cashflowCmd) Usage() string {
	return `hf cashflow [-p <period> | -s <start_date>] [-d <end_date>] [-input <file.json>] [-json]

  Displays the operating, investing and financing cash flows of a period.

  With -input, the statement is computed from the figures of a JSON file
  instead of the ledger.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f, "year")
	f.StringVar(&c.input, "input", "", "JSON file of cash flow figures")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var rep *hostfolio.CashFlowReport
	if c.input != "" {
		var in finance.CashFlowInput
		if err := readJSON(c.input, &in); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			return subcommands.ExitFailure
		}
		rep = hostfolio.CashFlowFromInput(r, *currency, in)
	} else {
		as, ok := accountingSystem()
		if !ok {
			return subcommands.ExitFailure
		}
		if rep, err = as.NewCashFlowReport(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating cash flow statement: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return report(c.json, rep, func() string { return renderer.CashFlowMarkdown(rep) })
}

// --- Properties Command ---

type propertiesCmd struct {
	rangeFlags
	json bool
}

func (*propertiesCmd) Name() string { return "properties" }
func (*propertiesCmd) Synopsis() string {
	return "display the operating and investment metrics of each property"
}
func (*propertiesCmd) Usage() string {
	return `hf properties [-p <period> | -s <start_date>] [-d <end_date>] [-json]

  Displays, for each property owned during the period, its occupancy, ADR,
  RevPAR, NOI, cap rate, cash on cash return, LTV, DSCR and appreciation,
  and the net asset value of the portfolio at the end of the period.
`
}

func (c *propertiesCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f, "year")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *propertiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	as, ok := accountingSystem()
	if !ok {
		return subcommands.ExitFailure
	}
	rep, err := as.NewPropertyReport(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating property report: %v\n", err)
		return subcommands.ExitFailure
	}
	return report(c.json, rep, func() string { return renderer.PropertiesMarkdown(rep) })
}

// --- Loan Command ---

type loanCmd struct {
	date     string
	property string
	schedule bool
	json     bool
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "display the loans and their outstanding balance" }
func (*loanCmd) Usage() string {
	return `hf loan [-d <date>] [-property <name>] [-schedule] [-json]

  Displays every loan taken before the date, with its installments paid and
  outstanding balance. Use -schedule to print the full amortization schedules.
`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the balances")
	f.StringVar(&c.property, "property", "", "Only show the loans of this property")
	f.BoolVar(&c.schedule, "schedule", false, "Print the amortization schedules")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	as, ok := accountingSystem()
	if !ok {
		return subcommands.ExitFailure
	}
	rep, err := as.NewLoanReport(c.property, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating loan report: %v\n", err)
		return subcommands.ExitFailure
	}
	return report(c.json, rep, func() string { return renderer.LoanMarkdown(rep, c.schedule) })
}

// --- Depreciation Command ---

type depreciationCmd struct {
	date string
	json bool
}

func (*depreciationCmd) Name() string { return "depreciation" }
func (*depreciationCmd) Synopsis() string {
	return "display the depreciation of buildings and renovations"
}
func (*depreciationCmd) Usage() string {
	return `hf depreciation [-d <date>] [-json]

  Displays the straight-line depreciation of every building and renovation,
  and their book value on the date.
`
}

func (c *depreciationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the book values")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *depreciationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	as, ok := accountingSystem()
	if !ok {
		return subcommands.ExitFailure
	}
	rep, err := as.NewDepreciationReport(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating depreciation report: %v\n", err)
		return subcommands.ExitFailure
	}
	return report(c.json, rep, func() string { return renderer.DepreciationMarkdown(rep) })
}

// --- Projection Command ---

type projectionCmd struct {
	rangeFlags
	years     int
	growth    string
	inflation string
	json      bool
}

func (*projectionCmd) Name() string { return "projection" }
func (*projectionCmd) Synopsis() string {
	return "project revenue, expenses and NOI over the next years"
}
func (*projectionCmd) Usage() string {
	return `hf projection [-p <period> | -s <start_date>] [-d <end_date>] [-years <n>] [-growth <rate>] [-inflation <rate>] [-json]

  Projects the revenue and operating expenses of the base period over the
  next years: revenue grows at -growth and expenses at -inflation.
`
}

func (c *projectionCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f, "year")
	f.IntVar(&c.years, "years", 5, "Number of projected years")
	f.StringVar(&c.growth, "growth", "5%", "Yearly revenue growth")
	f.StringVar(&c.inflation, "inflation", "4%", "Yearly expense inflation")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *projectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	base, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	growth, ok := parseRateFlag("growth", c.growth)
	if !ok {
		return subcommands.ExitUsageError
	}
	inflation, ok := parseRateFlag("inflation", c.inflation)
	if !ok {
		return subcommands.ExitUsageError
	}
	as, ok := accountingSystem()
	if !ok {
		return subcommands.ExitFailure
	}
	rep, err := as.NewProjectionReport(base, c.years, growth, inflation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating projection: %v\n", err)
		return subcommands.ExitFailure
	}
	return report(c.json, rep, func() string { return renderer.ProjectionMarkdown(rep) })
}

// --- Valuation Command ---

type valuationCmd struct {
	date      string
	years     int
	growth    string
	inflation string
	discount  string
	terminal  string
	json      bool
}

func (*valuationCmd) Name() string { return "valuation" }
func (*valuationCmd) Synopsis() string {
	return "value the portfolio by discounted cash flows and net assets"
}
func (*valuationCmd) Usage() string {
	return `hf valuation [-d <date>] [-years <n>] [-growth <rate>] [-inflation <rate>] [-discount <rate>] [-terminal <rate>] [-json]

  Projects the NOI of the last twelve months, discounts it with a terminal
  value, and compares the resulting equity value with the net asset value.
`
}

func (c *valuationCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Valuation date")
	f.IntVar(&c.years, "years", 5, "Number of projected years")
	f.StringVar(&c.growth, "growth", "5%", "Yearly revenue growth")
	f.StringVar(&c.inflation, "inflation", "4%", "Yearly expense inflation")
	f.StringVar(&c.discount, "discount", "12%", "Discount rate")
	f.StringVar(&c.terminal, "terminal", "3%", "Terminal growth rate, below the discount rate")
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
}

func (c *valuationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	p := hostfolio.ValuationParams{Years: c.years}
	for _, r := range []struct {
		name, value string
		dst         *float64
	}{
		{"growth", c.growth, &p.Growth},
		{"inflation", c.inflation, &p.Inflation},
		{"discount", c.discount, &p.DiscountRate},
		{"terminal", c.terminal, &p.TerminalGrowth},
	} {
		v, ok := parseRateFlag(r.name, r.value)
		if !ok {
			return subcommands.ExitUsageError
		}
		*r.dst = v
	}
	as, ok := accountingSystem()
	if !ok {
		return subcommands.ExitFailure
	}
	rep, err := as.NewValuationReport(on, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating valuation: %v\n", err)
		return subcommands.ExitFailure
	}
	return report(c.json, rep, func() string { return renderer.ValuationMarkdown(rep) })
}
