package finance

import "math"

// ratio divides a by b, and returns 0 when b is 0.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// NOI is the net operating income.
func NOI(grossRevenue, operatingExpenses float64) float64 { return grossRevenue - operatingExpenses }

// CapRate is NOI / propertyValue.
func CapRate(noi, propertyValue float64) float64 { return ratio(noi, propertyValue) }

// CashOnCash is the annual cash flow over the cash actually invested.
func CashOnCash(annualCashFlow, cashInvested float64) float64 {
	return ratio(annualCashFlow, cashInvested)
}

// LTV is the loan-to-value ratio.
func LTV(loanAmount, propertyValue float64) float64 { return ratio(loanAmount, propertyValue) }

// Equity is the owner's share of a property's value.
func Equity(propertyValue, debt float64) float64 { return propertyValue - debt }

// DebtServiceCoverage is NOI over the debt service (interest and principal) of the same period.
func DebtServiceCoverage(noi, debtService float64) float64 { return ratio(noi, debtService) }

// Appreciation describes the change in value of an asset since its purchase.
type Appreciation struct {
	Total      float64 `json:"total"`
	Percent    float64 `json:"percent"`
	Annualized float64 `json:"annualized"` // compound annual growth rate
}

// Appreciate computes the appreciation from purchase to current value over 'years'.
//
// Annualized is 0 when years or the purchase price is not positive, or the current value is negative.
func Appreciate(purchase, current, years float64) Appreciation {
	a := Appreciation{
		Total: current - purchase,
	}
	a.Percent = ratio(a.Total, purchase)
	if years > 0 && purchase > 0 && current >= 0 {
		a.Annualized = math.Pow(current/purchase, 1/years) - 1
	}
	return a
}

// Occupancy is the share of available nights that were booked.
func Occupancy(bookedNights, availableNights float64) float64 {
	return ratio(bookedNights, availableNights)
}

// ADR is the average daily rate: revenue per booked night.
func ADR(revenue, bookedNights float64) float64 { return ratio(revenue, bookedNights) }

// RevPAR is the revenue per available night.
func RevPAR(revenue, availableNights float64) float64 { return ratio(revenue, availableNights) }
