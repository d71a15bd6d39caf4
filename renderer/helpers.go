package renderer

import (
	"github.com/etnz/hostfolio"
	md "github.com/nao1215/markdown"
)

// amount formats v in currency cur, e.g. "R$1.234,56".
func amount(v float64, cur string) string { return hostfolio.M(v, cur).String() }

// signed formats v in currency cur with an explicit sign, 0 is "-".
func signed(v float64, cur string) string { return hostfolio.M(v, cur).SignedString() }

// percent formats a fraction as a percentage.
func percent(v float64) string { return hostfolio.Rate(v).String() }

// twoColumns returns a label/value table set, labels on the left.
func twoColumns(header []string, rows ...[]string) md.TableSet {
	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    header,
		Rows:      rows,
	}
}

// rightAligned returns the alignment of a table with a left label and n-1 right aligned figures.
func rightAligned(n int) []md.TableAlignment {
	a := make([]md.TableAlignment, n)
	a[0] = md.AlignLeft
	for i := 1; i < n; i++ {
		a[i] = md.AlignRight
	}
	return a
}
