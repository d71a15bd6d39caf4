package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStraightLine(t *testing.T) {
	testCases := []struct {
		value, life, used float64
	}{
		{value: 300000, life: 25, used: 0},
		{value: 300000, life: 25, used: 3.5},
		{value: 12345.67, life: 7, used: 7},
		{value: 1000, life: 10, used: 12},
	}
	for _, tc := range testCases {
		got := StraightLine(tc.value, tc.life, tc.used)
		if !near(got.AnnualDepreciation*tc.life, tc.value) {
			t.Errorf("annual × life = %v, want %v", got.AnnualDepreciation*tc.life, tc.value)
		}
		if !near(MonthlyDepreciation(tc.value, tc.life)*12, got.AnnualDepreciation) {
			t.Errorf("monthly × 12 = %v, want %v", MonthlyDepreciation(tc.value, tc.life)*12, got.AnnualDepreciation)
		}
		if !near(got.BookValue+got.AccumulatedDepreciation, tc.value) {
			t.Errorf("book value + accumulated = %v, want %v", got.BookValue+got.AccumulatedDepreciation, tc.value)
		}
		if want := math.Max(0, tc.life-tc.used); got.RemainingLife != want {
			t.Errorf("RemainingLife = %v, want %v", got.RemainingLife, want)
		}
	}

	// beyond the useful life the book value is not floored.
	if got := StraightLine(1000, 10, 12); got.BookValue != -200 {
		t.Errorf("BookValue after 12 of 10 years = %v, want -200", got.BookValue)
	}
	if got := AnnualDepreciation(1000, 0); got != 0 {
		t.Errorf("AnnualDepreciation() with zero life = %v, want 0", got)
	}
}

func TestMetrics(t *testing.T) {
	testCases := []struct {
		name string
		got  float64
		want float64
	}{
		{"NOI", NOI(120000, 45000), 75000},
		{"CapRate", CapRate(75000, 1000000), 0.075},
		{"CapRate zero value", CapRate(75000, 0), 0},
		{"CashOnCash", CashOnCash(20000, 250000), 0.08},
		{"CashOnCash nothing invested", CashOnCash(20000, 0), 0},
		{"LTV", LTV(600000, 1000000), 0.6},
		{"LTV zero value", LTV(600000, 0), 0},
		{"Equity", Equity(1000000, 600000), 400000},
		{"DSCR", DebtServiceCoverage(75000, 60000), 1.25},
		{"DSCR no debt", DebtServiceCoverage(75000, 0), 0},
		{"Occupancy", Occupancy(219, 365), 0.6},
		{"Occupancy no availability", Occupancy(10, 0), 0},
		{"ADR", ADR(65700, 219), 300},
		{"ADR no booking", ADR(0, 0), 0},
		{"RevPAR", RevPAR(65700, 365), 180},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !near(tc.got, tc.want) {
				t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
			}
		})
	}
}

func TestAppreciate(t *testing.T) {
	testCases := []struct {
		name                     string
		purchase, current, years float64
		want                     Appreciation
	}{
		{
			name:     "ten percent a year",
			purchase: 100, current: 121, years: 2,
			want: Appreciation{Total: 21, Percent: 0.21, Annualized: 0.1},
		},
		{
			name:     "no elapsed time",
			purchase: 100, current: 150, years: 0,
			want: Appreciation{Total: 50, Percent: 0.5},
		},
		{
			name:     "no purchase price",
			purchase: 0, current: 150, years: 3,
			want: Appreciation{Total: 150},
		},
		{
			name:     "loss",
			purchase: 200, current: 50, years: 2,
			want: Appreciation{Total: -150, Percent: -0.75, Annualized: -0.5},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Appreciate(tc.purchase, tc.current, tc.years)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
				t.Errorf("Appreciate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProject(t *testing.T) {
	got := Project(100, []float64{0.1, 0, -0.5})
	want := []float64{110, 110, 55}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("Project() mismatch (-want +got):\n%s", diff)
	}
	if got := Project(100, nil); len(got) != 0 {
		t.Errorf("Project() without rates = %v, want empty", got)
	}
}

func TestProjectPeriods(t *testing.T) {
	got, err := ProjectPeriods(1000, ConstantRates(0.05, 3), 3)
	if err != nil {
		t.Fatalf("ProjectPeriods() unexpected error: %v", err)
	}
	want := []float64{1050, 1102.5, 1157.625}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("ProjectPeriods() mismatch (-want +got):\n%s", diff)
	}

	if _, err := ProjectPeriods(1000, ConstantRates(0.05, 2), 3); !errors.Is(err, ErrRateCount) {
		t.Errorf("ProjectPeriods() with too few rates error = %v, want %v", err, ErrRateCount)
	}
	if _, err := ProjectPeriods(1000, nil, -1); !errors.Is(err, ErrRateCount) {
		t.Errorf("ProjectPeriods() with negative periods error = %v, want %v", err, ErrRateCount)
	}
	if got := ConstantRates(0.1, -2); len(got) != 0 {
		t.Errorf("ConstantRates(-2) = %v, want empty", got)
	}
}

func TestConsortium(t *testing.T) {
	got, err := Consortium(ConsortiumPlan{
		CreditAmount: 200000,
		AdminFee:     0.15,
		ReserveFund:  0.05,
		Insurance:    0.02,
		TermMonths:   100,
	})
	if err != nil {
		t.Fatalf("Consortium() unexpected error: %v", err)
	}
	want := ConsortiumResult{
		TotalFeeRate:   0.22,
		MonthlyPayment: 2440,
		TotalPaid:      244000,
		TotalCost:      44000,
		EffectiveRate:  0.22,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("Consortium() mismatch (-want +got):\n%s", diff)
	}

	if _, err := Consortium(ConsortiumPlan{CreditAmount: 1000}); !errors.Is(err, ErrInvalidTerm) {
		t.Errorf("Consortium() without term error = %v, want %v", err, ErrInvalidTerm)
	}
	zero, err := Consortium(ConsortiumPlan{AdminFee: 0.1, TermMonths: 10})
	if err != nil || zero.EffectiveRate != 0 {
		t.Errorf("Consortium() without credit = %+v, %v, want zero effective rate", zero, err)
	}
}

func TestCorporateTax(t *testing.T) {
	testCases := []struct {
		name   string
		profit float64
		want   CorporateTaxResult
	}{
		{
			name:   "profit",
			profit: 100000,
			want:   CorporateTaxResult{TaxableProfit: 100000, IR: 15000, CSLL: 9000, Total: 24000},
		},
		{
			name:   "loss",
			profit: -5000,
			want:   CorporateTaxResult{TaxableProfit: -5000},
		},
		{
			name: "break even",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := DefaultTaxRates().Corporate(tc.profit)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
				t.Errorf("CorporateTax() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestServiceTax(t *testing.T) {
	if got := ServiceTax(20000, DefaultServiceTaxRate); !near(got, 1000) {
		t.Errorf("ServiceTax() = %v, want 1000", got)
	}
	if got := ServiceTax(20000, 0); got != 0 {
		t.Errorf("ServiceTax() at zero rate = %v, want 0", got)
	}
}
