package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/hostfolio"
	"github.com/etnz/hostfolio/finance"
	md "github.com/nao1215/markdown"
)

// LoanMarkdown renders the loans of a LoanReport. Schedules are rendered in
// full only when withSchedule is true.
func LoanMarkdown(r *hostfolio.LoanReport, withSchedule bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	doc.H1(fmt.Sprintf("Loans on %s", r.Date))
	if len(r.Loans) == 0 {
		doc.PlainText("No loan.")
		return doc.String()
	}

	for _, l := range r.Loans {
		doc.H2(fmt.Sprintf("%s %s loan of %s", l.Property, l.System, amount(l.Terms.Principal, cur)))
		doc.Table(twoColumns(
			[]string{md.Bold("Outstanding"), md.Bold(amount(l.Balance, cur))},
			[]string{"Annual Rate", percent(l.Terms.AnnualRate)},
			[]string{"Installments Paid", fmt.Sprintf("%d/%d", l.Paid, l.Summary.Installments)},
			[]string{"First Installment", fmt.Sprintf("%s on %s", amount(l.Summary.FirstPayment, cur), l.Terms.StartDate)},
			[]string{"Last Installment", amount(l.Summary.LastPayment, cur)},
			[]string{"Total Paid", amount(l.Summary.TotalPaid, cur)},
			[]string{"Total Interest", amount(l.Summary.TotalInterest, cur)},
		))
		if withSchedule {
			doc.Table(scheduleTable(l.Schedule, cur))
		}
	}
	return doc.String()
}

// ScheduleMarkdown renders a standalone amortization schedule.
func ScheduleMarkdown(system string, terms finance.LoanTerms, rows []finance.AmortizationRow, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s Schedule", system))
	s := finance.Summarize(rows)
	doc.Table(twoColumns(
		[]string{md.Bold("Principal"), md.Bold(amount(terms.Principal, cur))},
		[]string{"Annual Rate", percent(terms.AnnualRate)},
		[]string{"Term", fmt.Sprintf("%d months", terms.TermMonths)},
		[]string{"Total Paid", amount(s.TotalPaid, cur)},
		[]string{"Total Interest", amount(s.TotalInterest, cur)},
	))
	doc.Table(scheduleTable(rows, cur))
	return doc.String()
}

func scheduleTable(rows []finance.AmortizationRow, cur string) md.TableSet {
	t := md.TableSet{
		Alignment: rightAligned(6),
		Header:    []string{"#", "Due", "Payment", "Interest", "Principal", "Balance"},
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(row.Installment),
			row.DueDate.String(),
			amount(row.Payment, cur),
			amount(row.Interest, cur),
			amount(row.Principal, cur),
			amount(row.Balance, cur),
		})
	}
	return t
}

// DepreciationMarkdown renders a DepreciationReport.
func DepreciationMarkdown(r *hostfolio.DepreciationReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := r.Currency

	doc.H1(fmt.Sprintf("Depreciation on %s", r.Date))
	t := md.TableSet{
		Alignment: rightAligned(7),
		Header:    []string{"Asset", "Since", "Cost", "Life", "Yearly", "Accumulated", "Book Value"},
	}
	for _, a := range r.Assets {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%s %s", a.Property, a.Kind),
			a.Since.String(),
			amount(a.Cost, cur),
			fmt.Sprintf("%.1f/%.0fy", a.YearsUsed, a.Life),
			amount(a.AnnualDepreciation, cur),
			amount(a.AccumulatedDepreciation, cur),
			amount(a.BookValue, cur),
		})
	}
	t.Rows = append(t.Rows, []string{
		md.Bold("Total"), "", "", "",
		md.Bold(amount(r.Totals.AnnualDepreciation, cur)),
		md.Bold(amount(r.Totals.AccumulatedDepreciation, cur)),
		md.Bold(amount(r.Totals.BookValue, cur)),
	})
	doc.Table(t)
	return doc.String()
}
