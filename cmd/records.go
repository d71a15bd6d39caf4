package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/date"
	"github.com/google/subcommands"
)

// recordFlags are the flags shared by every record command.
type recordFlags struct {
	date string
	memo string
}

func (r *recordFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.date, "d", date.Today().String(), "Record date (YYYY-MM-DD)")
	f.StringVar(&r.memo, "m", "", "An optional memo for the record")
}

func (r *recordFlags) day() (date.Date, bool) {
	day, err := date.Parse(r.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return day, false
	}
	return day, true
}

// parseRateFlag parses a rate flag like "12%" or "0.12".
func parseRateFlag(name, value string) (float64, bool) {
	r, err := hostfolio.ParseRate(value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -%s: %v\n", name, err)
		return 0, false
	}
	return float64(r), true
}

// --- Property Command ---

type addPropertyCmd struct {
	recordFlags
	name  string
	price float64
	land  float64
	life  int
	units int
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "record the acquisition of a rental property" }
func (*addPropertyCmd) Usage() string {
	return `hf add-property -name <name> -price <amount> [-land <amount>] [-life <years>] [-units <n>] [-d <date>] [-m <memo>]

  Records the purchase of a property. The price includes the land, only the
  building (price minus land) is depreciated over its useful life.
`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.name, "name", "", "Unique name of the property")
	f.Float64Var(&c.price, "price", 0, "Acquisition cost, land included")
	f.Float64Var(&c.land, "land", 0, "Part of the price that is land")
	f.IntVar(&c.life, "life", hostfolio.DefaultBuildingLife, "Useful life of the building in years")
	f.IntVar(&c.units, "units", 1, "Number of rentable units")
}

func (c *addPropertyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.price <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -name and a positive -price are required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewProperty(day, c.memo, c.name, c.price, c.land, c.life, c.units))
}

// --- Loan Command ---

type addLoanCmd struct {
	recordFlags
	property  string
	principal float64
	rate      string
	months    int
	system    string
}

func (*addLoanCmd) Name() string     { return "add-loan" }
func (*addLoanCmd) Synopsis() string { return "record a loan financing a property" }
func (*addLoanCmd) Usage() string {
	return `hf add-loan -property <name> -principal <amount> -rate <rate> -months <n> [-system sac|price] [-d <date>] [-m <memo>]

  Records a loan. The principal is received on the record date and the first
  installment is due one month later.
`
}

func (c *addLoanCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.property, "property", "", "Financed property")
	f.Float64Var(&c.principal, "principal", 0, "Amount borrowed")
	f.StringVar(&c.rate, "rate", "0%", "Nominal annual interest rate, e.g. 12% or 0.12")
	f.IntVar(&c.months, "months", 0, "Number of monthly installments")
	f.StringVar(&c.system, "system", hostfolio.DefaultLoanSystem, "Amortization system: sac or price")
}

func (c *addLoanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.principal <= 0 || c.months <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -property, a positive -principal and -months are required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	rate, ok := parseRateFlag("rate", c.rate)
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewLoan(day, c.memo, c.property, c.principal, rate, c.months, c.system))
}

// --- Booking Command ---

type addBookingCmd struct {
	recordFlags
	property string
	nights   int
	amount   float64
	fees     float64
}

func (*addBookingCmd) Name() string     { return "add-booking" }
func (*addBookingCmd) Synopsis() string { return "record the revenue of a stay" }
func (*addBookingCmd) Usage() string {
	return `hf add-booking -property <name> -nights <n> -amount <amount> [-fees <amount>] [-d <date>] [-m <memo>]

  Records a booking. The amount is the gross revenue paid by the guest and the
  fees are the platform commission withheld from it.
`
}

func (c *addBookingCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.property, "property", "", "Booked property")
	f.IntVar(&c.nights, "nights", 0, "Number of nights booked")
	f.Float64Var(&c.amount, "amount", 0, "Gross revenue of the stay")
	f.Float64Var(&c.fees, "fees", 0, "Platform fees")
}

func (c *addBookingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -property and a positive -amount are required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewBooking(day, c.memo, c.property, c.nights, c.amount, c.fees))
}

// --- Expense Command ---

type addExpenseCmd struct {
	recordFlags
	property string
	category string
	amount   float64
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `hf add-expense -c <category> -amount <amount> [-property <name>] [-d <date>] [-m <memo>]

  Records an expense. Categories are variable, fixed, financial, tax and other.
  Expenses without a property are shared by the whole portfolio.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.property, "property", "", "Property the expense belongs to")
	f.StringVar(&c.category, "c", hostfolio.Other, "Expense category")
	f.Float64Var(&c.amount, "amount", 0, "Amount paid")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: a positive -amount is required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewExpense(day, c.memo, c.property, c.category, c.amount))
}

// --- Income Command ---

type addIncomeCmd struct {
	recordFlags
	amount float64
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record a financial income" }
func (*addIncomeCmd) Usage() string {
	return `hf add-income -amount <amount> [-d <date>] [-m <memo>]

  Records a financial income, like the interest earned on the cash balance.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.Float64Var(&c.amount, "amount", 0, "Amount received")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: a positive -amount is required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewIncome(day, c.memo, c.amount))
}

// --- Renovation Command ---

type addRenovationCmd struct {
	recordFlags
	property string
	amount   float64
	life     int
}

func (*addRenovationCmd) Name() string     { return "add-renovation" }
func (*addRenovationCmd) Synopsis() string { return "record a capitalized improvement of a property" }
func (*addRenovationCmd) Usage() string {
	return `hf add-renovation -property <name> -amount <amount> [-life <years>] [-d <date>] [-m <memo>]

  Records a renovation. It is capitalized and depreciated over its own useful life.
`
}

func (c *addRenovationCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.property, "property", "", "Renovated property")
	f.Float64Var(&c.amount, "amount", 0, "Cost of the renovation")
	f.IntVar(&c.life, "life", hostfolio.DefaultRenovationLife, "Useful life in years")
}

func (c *addRenovationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -property and a positive -amount are required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewRenovation(day, c.memo, c.property, c.amount, c.life))
}

// --- Appraise Command ---

type appraiseCmd struct {
	recordFlags
	property string
	value    float64
}

func (*appraiseCmd) Name() string     { return "appraise" }
func (*appraiseCmd) Synopsis() string { return "record the market value of a property" }
func (*appraiseCmd) Usage() string {
	return `hf appraise -property <name> -value <amount> [-d <date>] [-m <memo>]

  Records an appraisal. The latest appraisal is the market value of the property,
  its purchase price is used until the first one.
`
}

func (c *appraiseCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.StringVar(&c.property, "property", "", "Appraised property")
	f.Float64Var(&c.value, "value", 0, "Market value")
}

func (c *appraiseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.property == "" || c.value <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -property and a positive -value are required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewAppraise(day, c.memo, c.property, c.value))
}

// --- Contribute and Distribute Commands ---

type contributeCmd struct {
	recordFlags
	amount float64
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "record capital paid in by the owners" }
func (*contributeCmd) Usage() string {
	return `hf contribute -amount <amount> [-d <date>] [-m <memo>]
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.Float64Var(&c.amount, "amount", 0, "Capital contributed")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: a positive -amount is required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewContribute(day, c.memo, c.amount))
}

type distributeCmd struct {
	recordFlags
	amount float64
}

func (*distributeCmd) Name() string     { return "distribute" }
func (*distributeCmd) Synopsis() string { return "record profits paid out to the owners" }
func (*distributeCmd) Usage() string {
	return `hf distribute -amount <amount> [-d <date>] [-m <memo>]
`
}

func (c *distributeCmd) SetFlags(f *flag.FlagSet) {
	c.recordFlags.SetFlags(f)
	f.Float64Var(&c.amount, "amount", 0, "Amount distributed")
}

func (c *distributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount <= 0 {
		fmt.Fprintln(os.Stderr, "Error: a positive -amount is required.")
		return subcommands.ExitUsageError
	}
	day, ok := c.day()
	if !ok {
		return subcommands.ExitUsageError
	}
	return AppendRecord(hostfolio.NewDistribute(day, c.memo, c.amount))
}
