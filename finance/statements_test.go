package finance

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestIncomeStatement(t *testing.T) {
	got := IncomeStatement(IncomeStatementInput{
		GrossRevenue:      100000,
		Deductions:        5000,
		VariableCosts:     15000,
		FixedExpenses:     20000,
		Depreciation:      10000,
		FinancialExpenses: 12000,
		FinancialIncome:   2000,
		IR:                6000,
		CSLL:              3600,
	})
	want := IncomeStatementResult{
		GrossRevenue:      100000,
		Deductions:        5000,
		NetRevenue:        95000,
		VariableCosts:     15000,
		GrossProfit:       80000,
		FixedExpenses:     20000,
		EBITDA:            60000,
		Depreciation:      10000,
		EBIT:              50000,
		FinancialExpenses: 12000,
		FinancialIncome:   2000,
		FinancialResult:   -10000,
		PreTaxProfit:      40000,
		IR:                6000,
		CSLL:              3600,
		IncomeTax:         9600,
		NetProfit:         30400,
		GrossMargin:       0.8,
		EBITDAMargin:      0.6,
		NetMargin:         0.304,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("IncomeStatement() mismatch (-want +got):\n%s", diff)
	}
}

func TestIncomeStatement_ZeroRevenue(t *testing.T) {
	got := IncomeStatement(IncomeStatementInput{FixedExpenses: 1000})
	if got.NetProfit != -1000 {
		t.Errorf("NetProfit = %v, want -1000", got.NetProfit)
	}
	if got.GrossMargin != 0 || got.EBITDAMargin != 0 || got.NetMargin != 0 {
		t.Errorf("margins = %v, %v, %v, want 0", got.GrossMargin, got.EBITDAMargin, got.NetMargin)
	}
}

func TestBalanceSheet(t *testing.T) {
	testCases := []struct {
		name         string
		in           BalanceSheetInput
		wantBalanced bool
		wantDiff     float64
	}{
		{
			name:         "empty",
			in:           BalanceSheetInput{},
			wantBalanced: true,
		},
		{
			name: "consistent",
			in: BalanceSheetInput{
				Cash:                    12345.67,
				Receivables:             1500.10,
				FixedAssets:             400000,
				AccumulatedDepreciation: 32000,
				CurrentLiabilities:      21000.5,
				NonCurrentLiabilities:   250000,
				Capital:                 100000,
				RetainedEarnings:        10845.27,
			},
			wantBalanced: true,
		},
		{
			name: "off by a cent",
			in: BalanceSheetInput{
				Cash:    100.02,
				Capital: 100,
			},
			wantBalanced: false,
			wantDiff:     0.02,
		},
		{
			name: "within tolerance",
			in: BalanceSheetInput{
				Cash:    100.005,
				Capital: 100,
			},
			wantBalanced: true,
			wantDiff:     0.005,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BalanceSheet(tc.in)
			if got.Balanced != tc.wantBalanced {
				t.Errorf("Balanced = %v, want %v (difference %v)", got.Balanced, tc.wantBalanced, got.Difference)
			}
			if !near(got.Difference, tc.wantDiff) {
				t.Errorf("Difference = %v, want %v", got.Difference, tc.wantDiff)
			}
		})
	}
}

func TestBalanceSheet_Totals(t *testing.T) {
	got := BalanceSheet(BalanceSheetInput{
		Cash:                    1000,
		Receivables:             200,
		OtherCurrentAssets:      50,
		FixedAssets:             5000,
		AccumulatedDepreciation: 1000,
		OtherNonCurrentAssets:   250,
		CurrentLiabilities:      300,
		NonCurrentLiabilities:   2000,
		Capital:                 3000,
		Reserves:                100,
		RetainedEarnings:        100,
	})
	if got.Assets.Current.Total != 1250 {
		t.Errorf("current assets = %v, want 1250", got.Assets.Current.Total)
	}
	if got.Assets.NonCurrent.NetFixedAssets != 4000 || got.Assets.NonCurrent.Total != 4250 {
		t.Errorf("non current assets = %+v, want net 4000 total 4250", got.Assets.NonCurrent)
	}
	if got.Assets.Total != 5500 || got.Liabilities.Total != 2300 || got.Equity.Total != 3200 {
		t.Errorf("totals = %v, %v, %v, want 5500, 2300, 3200", got.Assets.Total, got.Liabilities.Total, got.Equity.Total)
	}
	if !got.Balanced || got.LiabilitiesAndEquity != 5500 {
		t.Errorf("Balanced = %v, LiabilitiesAndEquity = %v, want true, 5500", got.Balanced, got.LiabilitiesAndEquity)
	}
}

// A balance sheet built from a consistent set of movements always balances.
func TestBalanceSheet_RoundTrip(t *testing.T) {
	contributed, borrowed, repaid := 150000.0, 300000.0, 27350.55
	bought, depreciated := 420000.0, 16800.0
	profit, distributed := 31234.56, 12000.0

	cash := contributed + borrowed - repaid - bought + profit + depreciated - distributed
	got := BalanceSheet(BalanceSheetInput{
		Cash:                    cash,
		FixedAssets:             bought,
		AccumulatedDepreciation: depreciated,
		NonCurrentLiabilities:   borrowed - repaid,
		Capital:                 contributed,
		RetainedEarnings:        profit - distributed,
	})
	if !got.Balanced {
		t.Errorf("BalanceSheet() is not balanced, difference %v", got.Difference)
	}
}

func TestCashFlow(t *testing.T) {
	testCases := []struct {
		name string
		in   CashFlowInput
		want CashFlowResult
	}{
		{
			name: "empty",
		},
		{
			name: "all activities",
			in: CashFlowInput{
				OpeningBalance:    1000,
				Receipts:          50000,
				OperatingPayments: 20000,
				InterestPaid:      6000,
				TaxesPaid:         4000,
				AssetSales:        0,
				Acquisitions:      300000,
				Improvements:      25000,
				Contributions:     100000,
				Distributions:     5000,
				LoanProceeds:      240000,
				LoanRepayments:    12000,
			},
			want: CashFlowResult{
				OpeningBalance: 1000,
				Operating:      20000,
				Investing:      -325000,
				Financing:      323000,
				Total:          18000,
				ClosingBalance: 19000,
			},
		},
		{
			name: "negative opening",
			in:   CashFlowInput{OpeningBalance: -500, Receipts: 200},
			want: CashFlowResult{OpeningBalance: -500, Operating: 200, Total: 200, ClosingBalance: -300},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CashFlow(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("CashFlow() mismatch (-want +got):\n%s", diff)
			}
			if got.ClosingBalance-got.OpeningBalance != got.Total {
				t.Errorf("closing - opening = %v, want %v", got.ClosingBalance-got.OpeningBalance, got.Total)
			}
		})
	}
}

func TestCashFlow_CentIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cents := func() float64 { return float64(rng.IntN(10_000_000)) / 100 }
	for i := 0; i < 10000; i++ {
		in := CashFlowInput{
			OpeningBalance:    cents(),
			Receipts:          cents(),
			OperatingPayments: cents(),
			InterestPaid:      cents(),
			TaxesPaid:         cents(),
			AssetSales:        cents(),
			Acquisitions:      cents(),
			Improvements:      cents(),
			Contributions:     cents(),
			Distributions:     cents(),
			LoanProceeds:      cents(),
			LoanRepayments:    cents(),
		}
		got := CashFlow(in)
		if got.ClosingBalance-got.OpeningBalance != got.Total {
			t.Fatalf("CashFlow(%+v): closing - opening = %v, total = %v", in, got.ClosingBalance-got.OpeningBalance, got.Total)
		}
		if got.ClosingBalance != got.OpeningBalance+got.Operating+got.Investing+got.Financing {
			t.Fatalf("CashFlow(%+v): closing = %v, want opening + activities", in, got.ClosingBalance)
		}
	}
}
