// Package cmd implements the CLI application to manage a short-term rental portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/finance"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addPropertyCmd{}, "records")
	c.Register(&addLoanCmd{}, "records")
	c.Register(&addBookingCmd{}, "records")
	c.Register(&addExpenseCmd{}, "records")
	c.Register(&addIncomeCmd{}, "records")
	c.Register(&addRenovationCmd{}, "records")
	c.Register(&appraiseCmd{}, "records")
	c.Register(&contributeCmd{}, "records")
	c.Register(&distributeCmd{}, "records")

	c.Register(&dreCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&propertiesCmd{}, "reports")
	c.Register(&loanCmd{}, "reports")
	c.Register(&depreciationCmd{}, "reports")
	c.Register(&projectionCmd{}, "reports")
	c.Register(&valuationCmd{}, "reports")

	c.Register(&scheduleCmd{}, "calculators")
	c.Register(&consortiumCmd{}, "calculators")
	c.Register(&taxCmd{}, "calculators")
	c.Register(&dcfCmd{}, "calculators")

	c.Register(&queryCmd{}, "tools")
	c.Register(&fmtCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
	c.Register(&AssistCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "rentals.jsonl", "Path to the ledger file containing records (JSONL format)")
	currency   = flag.String("currency", "BRL", "Reporting currency, 3-letter code")
	verbose    = flag.Bool("v", false, "Log what the commands do on stderr")
	raw        = flag.Bool("raw", false, "Print reports as raw markdown instead of rendering them for the terminal")
	issRate    = flag.String("iss-rate", "5%", "Service tax (ISS) rate over gross revenue")
	irRate     = flag.String("ir-rate", "15%", "Corporate income tax (IR) rate over profit")
	csllRate   = flag.String("csll-rate", "9%", "Social contribution (CSLL) rate over profit")
)

// envFlags maps environment variables to the global flags they set.
var envFlags = map[string]string{
	"HF_LEDGER_FILE": "ledger-file",
	"HF_CURRENCY":    "currency",
	"HF_VERBOSE":     "v",
	"HF_ISS_RATE":    "iss-rate",
	"HF_IR_RATE":     "ir-rate",
	"HF_CSLL_RATE":   "csll-rate",
}

// LoadEnv reads an optional .env file and sets the global flags from the HF_*
// environment variables. Call it before parsing the command line so that
// explicit flags win.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not read .env file: %w", err)
	}
	for env, name := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		if err := flag.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}
	return nil
}

// TaxRates returns the tax rates set on the command line.
func TaxRates() (finance.TaxRates, error) {
	var rates finance.TaxRates
	for _, r := range []struct {
		name string
		flag *string
		dst  *float64
	}{
		{"iss-rate", issRate, &rates.ServiceTax},
		{"ir-rate", irRate, &rates.IR},
		{"csll-rate", csllRate, &rates.CSLL},
	} {
		v, err := hostfolio.ParseRate(*r.flag)
		if err != nil {
			return rates, fmt.Errorf("invalid -%s: %w", r.name, err)
		}
		*r.dst = float64(v)
	}
	return rates, nil
}

// DecodeLedger decodes the ledger from the application's ledger file.
// If the file does not exist, it returns a new empty ledger.
func DecodeLedger() (*hostfolio.Ledger, error) {
	ledger, err := hostfolio.LoadLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	Logger().Debugw("ledger loaded", "file", *ledgerFile, "records", ledger.Len())
	return ledger, nil
}

// NewAccountingSystem loads the ledger and creates the accounting system with
// the reporting currency and tax rates of the command line.
func NewAccountingSystem() (*hostfolio.AccountingSystem, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return nil, err
	}
	// Reports need the defaults that validation fills in.
	if ledger, err = ledger.Fmt(); err != nil {
		return nil, fmt.Errorf("invalid ledger %q: %w", *ledgerFile, err)
	}
	rates, err := TaxRates()
	if err != nil {
		return nil, err
	}
	Logger().Debugw("accounting system", "currency", *currency, "rates", rates)
	return hostfolio.NewAccountingSystem(ledger, *currency, rates)
}

// AppendRecord validates a record against the ledger and appends it to the ledger file.
func AppendRecord(rec hostfolio.Record) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	valid, err := ledger.Validate(rec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := hostfolio.EncodeRecord(f, valid); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	Logger().Debugw("record appended", "command", valid.What(), "id", valid.Identifier(), "date", valid.When())

	fmt.Printf("Successfully appended %s record to %s\n", valid.What(), filename)
	return subcommands.ExitSuccess
}
