package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/docs"
	"github.com/google/subcommands"
)

// --- Query Command ---

// Reports names queryable with hf query.
var queryReports = []string{"balance", "cashflow", "depreciation", "dre", "loan", "properties", "valuation"}

// BuildReport builds the named report on a range, reports on a single date
// use the end of the range.
func BuildReport(as *hostfolio.AccountingSystem, name string, r date.Range) (any, error) {
	switch name {
	case "dre":
		return as.NewIncomeStatementReport(r, "")
	case "balance":
		return as.NewBalanceSheetReport(r.To)
	case "cashflow":
		return as.NewCashFlowReport(r)
	case "properties":
		return as.NewPropertyReport(r)
	case "loan":
		return as.NewLoanReport("", r.To)
	case "depreciation":
		return as.NewDepreciationReport(r.To)
	case "valuation":
		return as.NewValuationReport(r.To, hostfolio.DefaultValuationParams())
	default:
		return nil, fmt.Errorf("unknown report %q, want one of %s", name, strings.Join(queryReports, ", "))
	}
}

// Query evaluates a JSONPath expression on the JSON form of a report.
func Query(report any, path string) (any, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	res, err := jsonpath.Get(path, v)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return res, nil
}

type queryCmd struct {
	rangeFlags
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from a report with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `hf query [-p <period> | -s <start_date>] [-d <end_date>] <report> <jsonpath>

  Builds a report and prints the JSON values selected by the expression.
  Reports are balance, cashflow, depreciation, dre, loan, properties and valuation.

Usage Examples:
# Net profit of the current year.
$ hf query dre '$.statement.netProfit'

# Occupancy of every property last quarter.
$ hf query -p quarter properties '$.properties[*].occupancy'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	c.rangeFlags.SetFlags(f, "year")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: a report name and a JSONPath expression are required.")
		return subcommands.ExitUsageError
	}
	name, path := f.Arg(0), f.Arg(1)
	if !slices.Contains(queryReports, name) {
		fmt.Fprintf(os.Stderr, "Error: unknown report %q, want one of %s\n", name, strings.Join(queryReports, ", "))
		return subcommands.ExitUsageError
	}
	r, err := c.Range()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	as, ok := accountingSystem()
	if !ok {
		return subcommands.ExitFailure
	}
	rep, err := BuildReport(as, name, r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s report: %v\n", name, err)
		return subcommands.ExitFailure
	}
	res, err := Query(rep, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printJSON(res); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- Fmt Command ---

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `hf fmt

  Validates and formats the ledger file. This command reads all records,
  validates them, fills in defaults and missing ids, sorts them by date,
  and writes them back in a canonical JSONL format.
  Nothing is written if a record is invalid.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	formatted, err := ledger.Fmt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting ledger %q:\n%v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	if err := hostfolio.SaveLedger(*ledgerFile, formatted); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Successfully formatted %d records of %q.\n", formatted.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}

// --- Topic Command ---

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	var b strings.Builder
	b.WriteString("hf topic <topic>\n\nShow documentation for a given topic, \"*\" shows them all.\n\n")
	summaries, _ := docs.Summaries()
	topics := slices.Sorted(maps.Keys(summaries))
	for _, topic := range topics {
		fmt.Fprintf(&b, "  %-12s %s\n", topic, summaries[topic])
	}
	return b.String()
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}
