package finance

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/hostfolio/date"
)

// LoanTerms are the contractual terms of an amortizing loan.
type LoanTerms struct {
	Principal  float64   `json:"principal"`
	AnnualRate float64   `json:"annualRate"` // nominal, compounded monthly
	TermMonths int       `json:"termMonths"`
	StartDate  date.Date `json:"startDate"` // due date of the first installment
}

// NewLoanTerms returns validated loan terms.
func NewLoanTerms(principal, annualRate float64, termMonths int, start date.Date) (LoanTerms, error) {
	t := LoanTerms{Principal: principal, AnnualRate: annualRate, TermMonths: termMonths, StartDate: start}
	return t, t.Validate()
}

// Validate checks the preconditions of the amortization formulas.
func (t LoanTerms) Validate() error {
	if t.TermMonths < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidTerm, t.TermMonths)
	}
	if !(t.Principal > 0) || math.IsInf(t.Principal, 1) {
		return fmt.Errorf("%w, got %v", ErrInvalidPrincipal, t.Principal)
	}
	if math.IsNaN(t.AnnualRate) || math.IsInf(t.AnnualRate, 0) {
		return fmt.Errorf("%w, got %v", ErrInvalidRate, t.AnnualRate)
	}
	return nil
}

// monthlyRate is the periodic rate applied to the outstanding balance.
func (t LoanTerms) monthlyRate() float64 { return t.AnnualRate / 12 }

// AmortizationRow is one installment of a loan schedule.
type AmortizationRow struct {
	Installment int       `json:"installment"` // 1-based
	DueDate     date.Date `json:"dueDate"`
	Payment     float64   `json:"payment"`
	Interest    float64   `json:"interest"`
	Principal   float64   `json:"principal"`
	Balance     float64   `json:"balance"` // outstanding after this installment
}

// AmortizationSystem is a loan repayment policy.
//
// Schedule returns one row per installment, and RemainingBalance the
// outstanding principal once 'paid' installments have been paid. Terms with
// fewer than one month produce an empty schedule and a zero balance.
type AmortizationSystem interface {
	Name() string
	Schedule(t LoanTerms) []AmortizationRow
	RemainingBalance(t LoanTerms, paid int) float64
}

// ParseAmortizationSystem returns the system named "sac" or "price".
func ParseAmortizationSystem(name string) (AmortizationSystem, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sac":
		return SAC{}, nil
	case "price", "french":
		return Price{}, nil
	default:
		return nil, fmt.Errorf("unknown amortization system %q, want sac or price", name)
	}
}

// SAC is the constant amortization system: every installment repays the same
// share of principal, plus the interest on the outstanding balance, so
// payments decrease over time.
type SAC struct{}

func (SAC) Name() string { return "SAC" }

// Schedule implements AmortizationSystem.
func (SAC) Schedule(t LoanTerms) []AmortizationRow {
	n := t.TermMonths
	if n < 1 {
		return nil
	}
	r := t.monthlyRate()
	fixed := t.Principal / float64(n)

	rows := make([]AmortizationRow, 0, n)
	for i := 1; i <= n; i++ {
		before := t.Principal - fixed*float64(i-1)
		principal := fixed
		if i == n {
			// the last installment absorbs the floating point residue.
			principal = before
		}
		interest := before * r
		rows = append(rows, AmortizationRow{
			Installment: i,
			DueDate:     t.StartDate.AddMonths(i - 1),
			Payment:     principal + interest,
			Interest:    interest,
			Principal:   principal,
			Balance:     max(0, before-principal),
		})
	}
	rows[n-1].Balance = 0
	return rows
}

// RemainingBalance implements AmortizationSystem in closed form.
func (SAC) RemainingBalance(t LoanTerms, paid int) float64 {
	n := t.TermMonths
	if n < 1 || paid >= n {
		return 0
	}
	if paid <= 0 {
		return t.Principal
	}
	fixed := t.Principal / float64(n)
	return max(0, t.Principal-fixed*float64(paid))
}

// Price is the fixed payment (French, annuity) system: every installment has
// the same amount, the interest share decreases over time.
type Price struct{}

func (Price) Name() string { return "PRICE" }

// Payment returns the constant installment amount.
func (Price) Payment(t LoanTerms) float64 {
	n := t.TermMonths
	if n < 1 {
		return 0
	}
	r := t.monthlyRate()
	if r == 0 {
		return t.Principal / float64(n)
	}
	f := math.Pow(1+r, float64(n))
	return t.Principal * r * f / (f - 1)
}

// Schedule implements AmortizationSystem.
func (p Price) Schedule(t LoanTerms) []AmortizationRow {
	n := t.TermMonths
	if n < 1 {
		return nil
	}
	r := t.monthlyRate()
	payment := p.Payment(t)

	rows := make([]AmortizationRow, 0, n)
	balance := t.Principal
	for i := 1; i <= n; i++ {
		interest := balance * r
		principal := payment - interest
		balance -= principal
		rows = append(rows, AmortizationRow{
			Installment: i,
			DueDate:     t.StartDate.AddMonths(i - 1),
			Payment:     payment,
			Interest:    interest,
			Principal:   principal,
			Balance:     max(0, balance),
		})
	}
	rows[n-1].Balance = 0
	return rows
}

// RemainingBalance implements AmortizationSystem using the present value of
// the installments still due.
func (p Price) RemainingBalance(t LoanTerms, paid int) float64 {
	n := t.TermMonths
	if n < 1 || paid >= n {
		return 0
	}
	if paid <= 0 {
		return t.Principal
	}
	r := t.monthlyRate()
	payment := p.Payment(t)
	left := float64(n - paid)
	if r == 0 {
		return payment * left
	}
	f := math.Pow(1+r, left)
	return max(0, payment*(f-1)/(r*f))
}

// LoanSummary aggregates a schedule.
type LoanSummary struct {
	Installments   int     `json:"installments"`
	FirstPayment   float64 `json:"firstPayment"`
	LastPayment    float64 `json:"lastPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
	TotalPrincipal float64 `json:"totalPrincipal"`
}

// Summarize totals a schedule.
func Summarize(rows []AmortizationRow) LoanSummary {
	s := LoanSummary{Installments: len(rows)}
	if len(rows) == 0 {
		return s
	}
	s.FirstPayment = rows[0].Payment
	s.LastPayment = rows[len(rows)-1].Payment
	for _, row := range rows {
		s.TotalPaid += row.Payment
		s.TotalInterest += row.Interest
		s.TotalPrincipal += row.Principal
	}
	return s
}

// PaidInstallments returns how many installments of a schedule are due on or before 'on'.
func PaidInstallments(rows []AmortizationRow, on date.Date) int {
	paid := 0
	for _, row := range rows {
		if row.DueDate.After(on) {
			break
		}
		paid++
	}
	return paid
}
