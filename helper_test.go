package hostfolio

import (
	"math"
	"testing"

	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
)

// BRL is a helper for test to create real money from const.
func BRL(v float64) Money { return M(v, "BRL") }

// USD is a helper for test to create usd money from const.
func USD(v float64) Money { return M(v, "USD") }

// d is a short helper to parse dates in tests.
func d(s string) date.Date { return date.MustParse(s) }

// near reports whether a and b are equal within 1e-6.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// appendValid validates each record and appends it, failing the test on the first error.
func appendValid(t *testing.T, ledger *Ledger, recs ...Record) {
	t.Helper()
	for _, rec := range recs {
		v, err := ledger.Validate(rec)
		if err != nil {
			t.Fatalf("Validate(%v) error = %v", rec.What(), err)
		}
		ledger.Append(v)
	}
}

// newTestLedger returns a ledger with a single financed loft:
//
//   - 300000 contributed, 1000 distributed
//   - a 250000 loft (50000 of land) bought on 2024-01-01
//   - a 120000 SAC loan at 12% over 120 months, 1000 of principal a month from 2024-02-01
//   - one booking of 2000 (300 of fees) in March, some expenses and a 12000 renovation in April
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	ledger := NewLedger()
	appendValid(t, ledger,
		NewContribute(d("2024-01-01"), "initial capital", 300000),
		NewProperty(d("2024-01-01"), "", "loft", 250000, 50000, 25, 1),
		NewLoan(d("2024-01-01"), "", "loft", 120000, 0.12, 120, "sac"),
		NewBooking(d("2024-03-10"), "", "loft", 5, 2000, 300),
		NewExpense(d("2024-03-15"), "cleaning", "loft", Variable, 200),
		NewExpense(d("2024-03-20"), "condo", "loft", Fixed, 500),
		NewRenovation(d("2024-04-01"), "kitchen", "loft", 12000, 10),
		NewIncome(d("2024-06-30"), "savings", 100),
		NewDistribute(d("2024-07-01"), "", 1000),
		NewExpense(d("2024-07-10"), "ISS", "", Tax, 50),
		NewAppraise(d("2024-12-31"), "", "loft", 280000),
	)
	return ledger
}

// newTestAccounting returns an accounting system in BRL on newTestLedger.
func newTestAccounting(t *testing.T) *AccountingSystem {
	t.Helper()
	as, err := NewAccountingSystem(newTestLedger(t), "BRL", finance.DefaultTaxRates())
	if err != nil {
		t.Fatalf("NewAccountingSystem() error = %v", err)
	}
	return as
}
