// Package finance holds the financial computation core of hostfolio: loan
// amortization, depreciation, property ratios, statement builders, valuation,
// projections, consortium plans and taxes.
//
// Every function is pure: inputs are passed explicitly, outputs are freshly
// built values, nothing is logged, stored or fetched. Rates are fractions
// (0.10 is 10%) and amounts are plain numbers in a single currency unit,
// formatting them is left to the caller.
//
// Ratios return 0 when their denominator is 0. Genuine preconditions (a loan
// term shorter than one month, a terminal growth rate not below the discount
// rate, a rate series that does not match the number of periods) are reported
// as errors rather than NaN or infinite values.
package finance
