package finance

import "fmt"

// ConsortiumPlan describes a consortium quota: a credit paid back in flat
// installments loaded with fees, without interest.
type ConsortiumPlan struct {
	CreditAmount float64 `json:"creditAmount"`
	AdminFee     float64 `json:"adminFee"`    // rate over the credit, for the whole term
	ReserveFund  float64 `json:"reserveFund"` // rate
	Insurance    float64 `json:"insurance"`   // rate
	TermMonths   int     `json:"termMonths"`
}

// ConsortiumResult is the total cost of a consortium plan.
type ConsortiumResult struct {
	TotalFeeRate   float64 `json:"totalFeeRate"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalCost      float64 `json:"totalCost"`
	EffectiveRate  float64 `json:"effectiveRate"` // total cost over the credit
}

// Consortium computes the installment and total cost of a plan.
func Consortium(p ConsortiumPlan) (ConsortiumResult, error) {
	if p.TermMonths < 1 {
		return ConsortiumResult{}, fmt.Errorf("%w, got %d", ErrInvalidTerm, p.TermMonths)
	}
	n := float64(p.TermMonths)
	r := ConsortiumResult{TotalFeeRate: p.AdminFee + p.ReserveFund + p.Insurance}
	r.MonthlyPayment = p.CreditAmount / n * (1 + r.TotalFeeRate)
	r.TotalPaid = r.MonthlyPayment * n
	r.TotalCost = r.TotalPaid - p.CreditAmount
	r.EffectiveRate = ratio(r.TotalCost, p.CreditAmount)
	return r, nil
}
