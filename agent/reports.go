package agent

import (
	"context"
	"fmt"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/docs"
	"github.com/etnz/hostfolio/renderer"
	"google.golang.org/genai"
)

// Source loads the accounting system of the user's ledger. It is called on
// every function call so that the answers follow the ledger's changes.
type Source func() (*hostfolio.AccountingSystem, error)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// parameters of the report functions.
func dateParam() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeString,
		Description: `The date of the report, or the end of its period. Today is the default.
		Otherwise it uses a date format based on YYYY-MM-DD:

		` + must(docs.GetTopic("dates")),
	}
}

var (
	periodParam = &genai.Schema{
		Type:        genai.TypeString,
		Description: "The period ending on 'date': day, week, month, quarter or year. Year is the default.",
		Enum:        []string{"day", "week", "month", "quarter", "year"},
	}
	startParam = &genai.Schema{
		Type:        genai.TypeString,
		Description: "The first day of a custom period, YYYY-MM-DD. Overrides 'period'.",
	}
	propertyParam = &genai.Schema{
		Type:        genai.TypeString,
		Description: "The name of a property, to report only on it. The whole portfolio by default.",
	}
)

// reportFunction declares a function returning a markdown report.
func reportFunction(src Source, name, description string, params map[string]*genai.Schema, build func(as *hostfolio.AccountingSystem, args map[string]any) (string, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters:  &genai.Schema{Type: genai.TypeObject, Properties: params},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The report formatted in markdown.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			as, err := src()
			if err != nil {
				return errorResponse(id, name, fmt.Errorf("could not load ledger: %w", err))
			}
			md, err := build(as, args)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, md)
		},
	}
}

// reportFunctions returns the functions of the Accountant.
func reportFunctions(src Source) []*Func {
	onDate := map[string]*genai.Schema{"date": dateParam()}
	inRange := map[string]*genai.Schema{"date": dateParam(), "period": periodParam, "start": startParam}

	return []*Func{
		reportFunction(src, "IncomeStatement",
			`IncomeStatement returns the income statement (DRE) of a period: gross revenue, deductions (ISS and platform fees),
			variable costs, fixed expenses, EBITDA, depreciation, financial result, IR, CSLL and net profit.`,
			map[string]*genai.Schema{"date": dateParam(), "period": periodParam, "start": startParam, "property": propertyParam},
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				r, err := parseRange(args)
				if err != nil {
					return "", err
				}
				property, err := parseString(args, "property")
				if err != nil {
					return "", err
				}
				rep, err := as.NewIncomeStatementReport(r, property)
				if err != nil {
					return "", err
				}
				return renderer.IncomeStatementMarkdown(rep), nil
			}),

		reportFunction(src, "BalanceSheet",
			`BalanceSheet returns the assets (cash, properties net of depreciation), liabilities (loans, taxes payable)
			and equity (capital, retained earnings) of the portfolio on a date.`,
			onDate,
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				on, err := parseDate(args)
				if err != nil {
					return "", err
				}
				rep, err := as.NewBalanceSheetReport(on)
				if err != nil {
					return "", err
				}
				return renderer.BalanceSheetMarkdown(rep), nil
			}),

		reportFunction(src, "CashFlow",
			`CashFlow returns the operating, investing and financing cash flows of a period, with the opening and closing cash.`,
			inRange,
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				r, err := parseRange(args)
				if err != nil {
					return "", err
				}
				rep, err := as.NewCashFlowReport(r)
				if err != nil {
					return "", err
				}
				return renderer.CashFlowMarkdown(rep), nil
			}),

		reportFunction(src, "Properties",
			`Properties returns, for each property owned during a period, its occupancy, ADR, RevPAR, NOI, cap rate,
			cash on cash return, market value, debt, LTV, DSCR and appreciation, and the net asset value of the portfolio.`,
			inRange,
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				r, err := parseRange(args)
				if err != nil {
					return "", err
				}
				rep, err := as.NewPropertyReport(r)
				if err != nil {
					return "", err
				}
				return renderer.PropertiesMarkdown(rep), nil
			}),

		reportFunction(src, "Loans",
			`Loans returns every loan with its amortization system, rate, installments paid and outstanding balance on a date.`,
			map[string]*genai.Schema{"date": dateParam(), "property": propertyParam},
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				on, err := parseDate(args)
				if err != nil {
					return "", err
				}
				property, err := parseString(args, "property")
				if err != nil {
					return "", err
				}
				rep, err := as.NewLoanReport(property, on)
				if err != nil {
					return "", err
				}
				return renderer.LoanMarkdown(rep, false), nil
			}),

		reportFunction(src, "Depreciation",
			`Depreciation returns the straight-line depreciation and book value of every building and renovation on a date.`,
			onDate,
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				on, err := parseDate(args)
				if err != nil {
					return "", err
				}
				rep, err := as.NewDepreciationReport(on)
				if err != nil {
					return "", err
				}
				return renderer.DepreciationMarkdown(rep), nil
			}),

		reportFunction(src, "Valuation",
			`Valuation returns the value of the portfolio on a date: a discounted cash flow of the projected NOI of the
			last twelve months (5 years, revenue +5%/y, expenses +4%/y, discount 12%, terminal growth 3%),
			the EV/EBITDA and EV/Revenue multiples, and the net asset value.`,
			onDate,
			func(as *hostfolio.AccountingSystem, args map[string]any) (string, error) {
				on, err := parseDate(args)
				if err != nil {
					return "", err
				}
				rep, err := as.NewValuationReport(on, hostfolio.DefaultValuationParams())
				if err != nil {
					return "", err
				}
				return renderer.ValuationMarkdown(rep), nil
			}),
	}
}

func parseString(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument '%s' is not a string as expected but %T", name, v)
	}
	return s, nil
}

func parseDate(args map[string]any) (date.Date, error) {
	s, err := parseString(args, "date")
	if err != nil || s == "" {
		return date.Today(), err
	}
	on, err := date.Parse(s)
	if err != nil {
		return date.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the format date\n\n%s ", s, must(docs.GetTopic("dates")))
	}
	return on, nil
}

func parseRange(args map[string]any) (date.Range, error) {
	end, err := parseDate(args)
	if err != nil {
		return date.Range{}, err
	}
	start, err := parseString(args, "start")
	if err != nil {
		return date.Range{}, err
	}
	if start != "" {
		from, err := date.Parse(start)
		if err != nil {
			return date.Range{}, fmt.Errorf("argument 'start' must be a valid date got %q", start)
		}
		if from.After(end) {
			return date.Range{}, fmt.Errorf("start %s is after date %s", from, end)
		}
		return date.NewRange(from, end), nil
	}
	period, err := parseString(args, "period")
	if err != nil {
		return date.Range{}, err
	}
	if period == "" {
		period = "year"
	}
	p, err := date.ParsePeriod(period)
	if err != nil {
		return date.Range{}, err
	}
	return p.Range(end), nil
}
