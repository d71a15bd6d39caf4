package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
	"github.com/etnz/hostfolio/renderer"
	"github.com/google/subcommands"
)

// Calculators run the finance engines on figures given on the command line,
// they do not read the ledger.

type scheduleCmd struct {
	principal float64
	rate      string
	months    int
	system    string
	start     string
	json      bool
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "compute a SAC or PRICE amortization schedule" }
func (*scheduleCmd) Usage() string {
	return `hf schedule -principal <amount> -rate <rate> -months <n> [-system sac|price] [-start <date>] [-json]

  Computes the installments of a loan. SAC amortizes a constant principal,
  PRICE pays a constant installment.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.principal, "principal", 0, "Amount borrowed")
	f.StringVar(&c.rate, "rate", "0%", "Nominal annual interest rate")
	f.IntVar(&c.months, "months", 0, "Number of monthly installments")
	f.StringVar(&c.system, "system", "price", "Amortization system: sac or price")
	f.StringVar(&c.start, "start", date.Today().AddMonths(1).String(), "Due date of the first installment")
	f.BoolVar(&c.json, "json", false, "Print the schedule as JSON")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rate, ok := parseRateFlag("rate", c.rate)
	if !ok {
		return subcommands.ExitUsageError
	}
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	system, err := finance.ParseAmortizationSystem(c.system)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	terms, err := finance.NewLoanTerms(c.principal, rate, c.months, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	rows := system.Schedule(terms)
	out := struct {
		System   string                    `json:"system"`
		Terms    finance.LoanTerms         `json:"terms"`
		Summary  finance.LoanSummary       `json:"summary"`
		Schedule []finance.AmortizationRow `json:"schedule"`
	}{system.Name(), terms, finance.Summarize(rows), rows}
	return report(c.json, out, func() string { return renderer.ScheduleMarkdown(system.Name(), terms, rows, *currency) })
}

type consortiumCmd struct {
	credit    float64
	admin     string
	reserve   string
	insurance string
	months    int
	json      bool
}

func (*consortiumCmd) Name() string     { return "consortium" }
func (*consortiumCmd) Synopsis() string { return "compute the cost of a consortium (consórcio) plan" }
func (*consortiumCmd) Usage() string {
	return `hf consortium -credit <amount> -months <n> [-admin <rate>] [-reserve <rate>] [-insurance <rate>] [-json]

  Computes the monthly payment and the total cost of a consortium: the credit
  plus the administration fee, reserve fund and insurance, spread over the term.
`
}

func (c *consortiumCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.credit, "credit", 0, "Credit letter amount")
	f.StringVar(&c.admin, "admin", "15%", "Administration fee over the whole term")
	f.StringVar(&c.reserve, "reserve", "2%", "Reserve fund")
	f.StringVar(&c.insurance, "insurance", "0%", "Insurance")
	f.IntVar(&c.months, "months", 0, "Number of monthly payments")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
}

func (c *consortiumCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	plan := finance.ConsortiumPlan{CreditAmount: c.credit, TermMonths: c.months}
	for _, r := range []struct {
		name, value string
		dst         *float64
	}{
		{"admin", c.admin, &plan.AdminFee},
		{"reserve", c.reserve, &plan.ReserveFund},
		{"insurance", c.insurance, &plan.Insurance},
	} {
		v, ok := parseRateFlag(r.name, r.value)
		if !ok {
			return subcommands.ExitUsageError
		}
		*r.dst = v
	}
	res, err := finance.Consortium(plan)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	out := struct {
		Plan   finance.ConsortiumPlan   `json:"plan"`
		Result finance.ConsortiumResult `json:"result"`
	}{plan, res}
	return report(c.json, out, func() string { return renderer.ConsortiumMarkdown(plan, res, *currency) })
}

type taxCmd struct {
	revenue float64
	profit  float64
	json    bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "compute ISS, IR and CSLL" }
func (*taxCmd) Usage() string {
	return `hf tax -revenue <amount> -profit <amount> [-json]

  Computes the service tax on the revenue and the corporate taxes on the
  profit, with the rates of the -iss-rate, -ir-rate and -csll-rate flags.
  A loss pays no corporate tax.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.revenue, "revenue", 0, "Gross revenue")
	f.Float64Var(&c.profit, "profit", 0, "Taxable profit")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, err := TaxRates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	iss := finance.ServiceTax(c.revenue, rates.ServiceTax)
	corporate := rates.Corporate(c.profit)
	out := struct {
		Rates     finance.TaxRates           `json:"rates"`
		Revenue   float64                    `json:"revenue"`
		ISS       float64                    `json:"iss"`
		Corporate finance.CorporateTaxResult `json:"corporate"`
		Total     float64                    `json:"total"`
	}{rates, c.revenue, iss, corporate, iss + corporate.Total}
	return report(c.json, out, func() string { return renderer.TaxMarkdown(c.revenue, rates, iss, corporate, *currency) })
}

type dcfCmd struct {
	discount string
	terminal string
	json     bool
}

func (*dcfCmd) Name() string     { return "dcf" }
func (*dcfCmd) Synopsis() string { return "discount a series of cash flows" }
func (*dcfCmd) Usage() string {
	return `hf dcf [-discount <rate>] [-terminal <rate>] [-json] <flow1> <flow2> ...

  Computes the present value of yearly cash flows plus a Gordon growth
  terminal value on the last flow.
`
}

func (c *dcfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.discount, "discount", "12%", "Discount rate")
	f.StringVar(&c.terminal, "terminal", "3%", "Terminal growth rate")
	f.BoolVar(&c.json, "json", false, "Print the valuation as JSON")
}

func (c *dcfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	discount, ok := parseRateFlag("discount", c.discount)
	if !ok {
		return subcommands.ExitUsageError
	}
	terminal, ok := parseRateFlag("terminal", c.terminal)
	if !ok {
		return subcommands.ExitUsageError
	}
	flows := make([]float64, 0, f.NArg())
	for _, arg := range f.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cash flow %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		flows = append(flows, v)
	}
	v, err := finance.DCF(flows, discount, terminal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return report(c.json, v, func() string { return renderer.DCFMarkdown(v, *currency) })
}
