// Package hostfolio tracks a portfolio of short-term-rental properties.
//
// It is local-first and auditable: every fact about the portfolio is a record
// in a chronological JSONL ledger, and every figure is derived from it.
//
// The main functionalities are:
//   - Ledger Management: recording properties, loans, bookings, expenses,
//     financial income, renovations, appraisals and owner capital movements
//     in a human-readable, version-controllable file.
//   - Accounting System: a stateless engine that turns the ledger into the
//     inputs of the financial core (package finance) and builds the income
//     statement, balance sheet and cash flow statement of the portfolio.
//   - Reports: property metrics (NOI, cap rate, occupancy, RevPAR...), loan
//     schedules, depreciation, projections and valuation.
//
// This package is the foundation of the `hf` command-line tool.
package hostfolio
