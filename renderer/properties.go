package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/hostfolio"
	md "github.com/nao1215/markdown"
)

// PropertiesMarkdown renders the property metrics as markdown.
func PropertiesMarkdown(r *hostfolio.PropertyReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	doc.H1(fmt.Sprintf("Properties %s", r.Range))

	p := r.Portfolio
	doc.Table(twoColumns(
		[]string{md.Bold("Net Asset Value"), md.Bold(amount(p.NAV, cur))},
		[]string{"Market Value", amount(p.MarketValue, cur)},
		[]string{"Cash", amount(p.Cash, cur)},
		[]string{"Liabilities", amount(p.Liabilities, cur)},
		[]string{"Debt", amount(p.Debt, cur)},
		[]string{"Equity in Properties", amount(p.Equity, cur)},
		[]string{"NOI", amount(p.NOI, cur)},
		[]string{"LTV", percent(p.LTV)},
		[]string{"Occupancy", percent(p.Occupancy)},
		[]string{"RevPAR", amount(p.RevPAR, cur)},
	))

	if len(r.Properties) == 0 {
		doc.PlainText("No property owned in this period.")
		return doc.String()
	}

	doc.H2("Operations")
	ops := md.TableSet{
		Alignment: rightAligned(7),
		Header:    []string{"Property", "Revenue", "NOI", "Cash Flow", "Occupancy", "ADR", "RevPAR"},
	}
	for _, m := range r.Properties {
		ops.Rows = append(ops.Rows, []string{
			m.Name,
			amount(m.Revenue, cur),
			amount(m.NOI, cur),
			signed(m.CashFlow, cur),
			fmt.Sprintf("%s (%d/%d)", percent(m.Occupancy), m.BookedNights, m.AvailableNights),
			amount(m.ADR, cur),
			amount(m.RevPAR, cur),
		})
	}
	doc.Table(ops)

	doc.H2("Investment")
	inv := md.TableSet{
		Alignment: rightAligned(9),
		Header:    []string{"Property", "Market Value", "Debt", "Equity", "LTV", "Cap Rate", "Cash on Cash", "DSCR", "Appreciation"},
	}
	for _, m := range r.Properties {
		dscr := "-"
		if m.DebtService != 0 {
			dscr = strconv.FormatFloat(m.DSCR, 'f', 2, 64)
		}
		inv.Rows = append(inv.Rows, []string{
			m.Name,
			amount(m.MarketValue, cur),
			amount(m.Debt, cur),
			amount(m.Equity, cur),
			percent(m.LTV),
			percent(m.CapRate),
			percent(m.CashOnCash),
			dscr,
			fmt.Sprintf("%s (%s/y)", hostfolio.Rate(m.Appreciation.Percent).SignedString(), hostfolio.Rate(m.Appreciation.Annualized).SignedString()),
		})
	}
	doc.Table(inv)
	return doc.String()
}
