package finance

import "errors"

var (
	// ErrInvalidTerm is returned when a term is shorter than one month.
	ErrInvalidTerm = errors.New("term must be at least one month")
	// ErrInvalidPrincipal is returned when a loan principal is not positive.
	ErrInvalidPrincipal = errors.New("principal must be positive")
	// ErrInvalidRate is returned when an annual rate is not a finite number.
	ErrInvalidRate = errors.New("rate must be a finite number")
	// ErrTerminalGrowth is returned when the terminal growth rate is not strictly below the discount rate.
	ErrTerminalGrowth = errors.New("discount rate must exceed terminal growth rate")
	// ErrDiscountRate is returned when a discount rate is -100% or less.
	ErrDiscountRate = errors.New("discount rate must be greater than -100%")
	// ErrNoCashFlows is returned when a valuation has no cash flow to discount.
	ErrNoCashFlows = errors.New("at least one cash flow is required")
	// ErrRateCount is returned when a rate series does not match the number of periods.
	ErrRateCount = errors.New("one rate per projected period is required")
)
