package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/finance"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a ProjectionReport.
func ProjectionMarkdown(r *hostfolio.ProjectionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	doc.H1(fmt.Sprintf("Projection from %s", r.Base))
	doc.PlainText(fmt.Sprintf("Revenue grows %s a year, expenses %s.", percent(r.Growth), percent(r.Inflation)))
	doc.Table(projectionTable(r, cur))
	return doc.String()
}

func projectionTable(r *hostfolio.ProjectionReport, cur string) md.TableSet {
	t := md.TableSet{
		Alignment: rightAligned(4),
		Header:    []string{"Year", "Revenue", "Expenses", "NOI"},
		Rows: [][]string{{
			fmt.Sprintf("%d (base)", r.Start.Year),
			amount(r.Start.Revenue, cur),
			amount(r.Start.Expenses, cur),
			amount(r.Start.NOI, cur),
		}},
	}
	for _, y := range r.Years {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(y.Year),
			amount(y.Revenue, cur),
			amount(y.Expenses, cur),
			amount(y.NOI, cur),
		})
	}
	return t
}

// ValuationMarkdown renders a ValuationReport.
func ValuationMarkdown(r *hostfolio.ValuationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	doc.H1(fmt.Sprintf("Valuation on %s", r.Date))
	doc.Table(twoColumns(
		[]string{md.Bold("Equity Value (DCF)"), md.Bold(amount(r.EquityValue, cur))},
		[]string{"Enterprise Value", amount(r.DCF.EnterpriseValue, cur)},
		[]string{"(-) Debt", amount(-r.Debt, cur)},
		[]string{"(+) Cash", amount(r.Cash, cur)},
		[]string{md.Bold("Net Asset Value"), md.Bold(amount(r.NAV, cur))},
		[]string{"Market Value", amount(r.MarketValue, cur)},
		[]string{"Liabilities", amount(r.Liabilities, cur)},
		[]string{"EV/EBITDA", hostfolio.Ratio(r.EVToEBITDA)},
		[]string{"EV/Revenue", hostfolio.Ratio(r.EVToRevenue)},
	))

	doc.H2("Projected NOI")
	doc.Table(projectionTable(r.Projection, cur))

	doc.H2("Discounted Cash Flow")
	doc.PlainText(DCFMarkdown(r.DCF, cur))
	return doc.String()
}

// DCFMarkdown renders the detail of a discounted cash flow valuation.
func DCFMarkdown(v finance.DCFValuation, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	t := md.TableSet{
		Alignment: rightAligned(3),
		Header:    []string{"Period", "Cash Flow", "Present Value"},
	}
	for i, flow := range v.CashFlows {
		t.Rows = append(t.Rows, []string{strconv.Itoa(i + 1), amount(flow, cur), amount(v.PresentValues[i], cur)})
	}
	t.Rows = append(t.Rows,
		[]string{"Terminal", amount(v.TerminalValue, cur), amount(v.PVTerminal, cur)},
		[]string{md.Bold("Enterprise Value"), "", md.Bold(amount(v.EnterpriseValue, cur))},
	)
	doc.PlainText(fmt.Sprintf("Discount rate %s, terminal growth %s.", percent(v.DiscountRate), percent(v.TerminalGrowth)))
	doc.Table(t)
	return doc.String()
}

// ConsortiumMarkdown renders the cost of a consortium plan.
func ConsortiumMarkdown(p finance.ConsortiumPlan, r finance.ConsortiumResult, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Consortium of %s", amount(p.CreditAmount, cur)))
	doc.Table(twoColumns(
		[]string{md.Bold("Monthly Payment"), md.Bold(amount(r.MonthlyPayment, cur))},
		[]string{"Term", fmt.Sprintf("%d months", p.TermMonths)},
		[]string{"Fees", fmt.Sprintf("%s (admin %s, reserve %s, insurance %s)", percent(r.TotalFeeRate), percent(p.AdminFee), percent(p.ReserveFund), percent(p.Insurance))},
		[]string{"Total Paid", amount(r.TotalPaid, cur)},
		[]string{"Total Cost", amount(r.TotalCost, cur)},
		[]string{"Effective Rate", percent(r.EffectiveRate)},
	))
	return doc.String()
}

// TaxMarkdown renders the taxes due on a revenue and a profit.
func TaxMarkdown(revenue float64, rates finance.TaxRates, iss float64, corporate finance.CorporateTaxResult, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Taxes")
	doc.Table(md.TableSet{
		Alignment: rightAligned(4),
		Header:    []string{"Tax", "Base", "Rate", "Amount"},
		Rows: [][]string{
			{"ISS", amount(revenue, cur), percent(rates.ServiceTax), amount(iss, cur)},
			{"IR", amount(corporate.TaxableProfit, cur), percent(rates.IR), amount(corporate.IR, cur)},
			{"CSLL", amount(corporate.TaxableProfit, cur), percent(rates.CSLL), amount(corporate.CSLL, cur)},
			{md.Bold("Total"), "", "", md.Bold(amount(iss+corporate.Total, cur))},
		},
	})
	return doc.String()
}
