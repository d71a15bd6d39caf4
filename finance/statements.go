package finance

import "math"

// BalanceTolerance is the largest gap between assets and liabilities plus
// equity that still counts as a balanced sheet.
const BalanceTolerance = 0.01

// IncomeStatementInput are the figures of an income statement (DRE).
//
// All fields are optional, an absent field is 0. Deductions, costs and
// expenses are positive amounts that are subtracted.
type IncomeStatementInput struct {
	GrossRevenue      float64 `json:"grossRevenue"`
	Deductions        float64 `json:"deductions"` // service tax, platform commissions, refunds
	VariableCosts     float64 `json:"variableCosts"`
	FixedExpenses     float64 `json:"fixedExpenses"`
	Depreciation      float64 `json:"depreciation"`
	FinancialExpenses float64 `json:"financialExpenses"`
	FinancialIncome   float64 `json:"financialIncome"`
	IR                float64 `json:"ir"`   // corporate income tax
	CSLL              float64 `json:"csll"` // social contribution on net profit
}

// IncomeStatementResult is a fully articulated income statement.
type IncomeStatementResult struct {
	GrossRevenue      float64 `json:"grossRevenue"`
	Deductions        float64 `json:"deductions"`
	NetRevenue        float64 `json:"netRevenue"`
	VariableCosts     float64 `json:"variableCosts"`
	GrossProfit       float64 `json:"grossProfit"`
	FixedExpenses     float64 `json:"fixedExpenses"`
	EBITDA            float64 `json:"ebitda"`
	Depreciation      float64 `json:"depreciation"`
	EBIT              float64 `json:"ebit"`
	FinancialExpenses float64 `json:"financialExpenses"`
	FinancialIncome   float64 `json:"financialIncome"`
	FinancialResult   float64 `json:"financialResult"`
	PreTaxProfit      float64 `json:"preTaxProfit"`
	IR                float64 `json:"ir"`
	CSLL              float64 `json:"csll"`
	IncomeTax         float64 `json:"incomeTax"`
	NetProfit         float64 `json:"netProfit"`

	GrossMargin  float64 `json:"grossMargin"`
	EBITDAMargin float64 `json:"ebitdaMargin"`
	NetMargin    float64 `json:"netMargin"`
}

// IncomeStatement builds the income statement pipeline from gross revenue down to net profit.
func IncomeStatement(in IncomeStatementInput) IncomeStatementResult {
	r := IncomeStatementResult{
		GrossRevenue:      in.GrossRevenue,
		Deductions:        in.Deductions,
		VariableCosts:     in.VariableCosts,
		FixedExpenses:     in.FixedExpenses,
		Depreciation:      in.Depreciation,
		FinancialExpenses: in.FinancialExpenses,
		FinancialIncome:   in.FinancialIncome,
		IR:                in.IR,
		CSLL:              in.CSLL,
	}
	r.NetRevenue = r.GrossRevenue - r.Deductions
	r.GrossProfit = r.NetRevenue - r.VariableCosts
	r.EBITDA = r.GrossProfit - r.FixedExpenses
	r.EBIT = r.EBITDA - r.Depreciation
	r.FinancialResult = r.FinancialIncome - r.FinancialExpenses
	r.PreTaxProfit = r.EBIT + r.FinancialResult
	r.IncomeTax = r.IR + r.CSLL
	r.NetProfit = r.PreTaxProfit - r.IncomeTax

	r.GrossMargin = ratio(r.GrossProfit, r.GrossRevenue)
	r.EBITDAMargin = ratio(r.EBITDA, r.GrossRevenue)
	r.NetMargin = ratio(r.NetProfit, r.GrossRevenue)
	return r
}

// BalanceSheetInput are the figures of a balance sheet. All fields are optional.
type BalanceSheetInput struct {
	Cash                    float64 `json:"cash"`
	Receivables             float64 `json:"receivables"`
	OtherCurrentAssets      float64 `json:"otherCurrentAssets"`
	FixedAssets             float64 `json:"fixedAssets"` // at cost
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"`
	OtherNonCurrentAssets   float64 `json:"otherNonCurrentAssets"`

	CurrentLiabilities    float64 `json:"currentLiabilities"`
	NonCurrentLiabilities float64 `json:"nonCurrentLiabilities"`

	Capital          float64 `json:"capital"`
	Reserves         float64 `json:"reserves"`
	RetainedEarnings float64 `json:"retainedEarnings"`
}

// CurrentAssets groups the assets expected to turn into cash within a year.
type CurrentAssets struct {
	Cash        float64 `json:"cash"`
	Receivables float64 `json:"receivables"`
	Other       float64 `json:"other"`
	Total       float64 `json:"total"`
}

// NonCurrentAssets groups long lived assets.
type NonCurrentAssets struct {
	FixedAssets             float64 `json:"fixedAssets"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"`
	NetFixedAssets          float64 `json:"netFixedAssets"`
	Other                   float64 `json:"other"`
	Total                   float64 `json:"total"`
}

// Assets is the left side of the balance sheet.
type Assets struct {
	Current    CurrentAssets    `json:"current"`
	NonCurrent NonCurrentAssets `json:"nonCurrent"`
	Total      float64          `json:"total"`
}

// Liabilities are the obligations toward third parties.
type Liabilities struct {
	Current    float64 `json:"current"`
	NonCurrent float64 `json:"nonCurrent"`
	Total      float64 `json:"total"`
}

// OwnersEquity is the owners' claim on the assets.
type OwnersEquity struct {
	Capital          float64 `json:"capital"`
	Reserves         float64 `json:"reserves"`
	RetainedEarnings float64 `json:"retainedEarnings"`
	Total            float64 `json:"total"`
}

// BalanceSheetResult is a fully totalled balance sheet.
type BalanceSheetResult struct {
	Assets      Assets       `json:"assets"`
	Liabilities Liabilities  `json:"liabilities"`
	Equity      OwnersEquity `json:"equity"`
	// LiabilitiesAndEquity is the right side total.
	LiabilitiesAndEquity float64 `json:"liabilitiesAndEquity"`
	// Difference is Assets.Total - LiabilitiesAndEquity.
	Difference float64 `json:"difference"`
	Balanced   bool    `json:"balanced"`
}

// BalanceSheet totals both sides of the balance sheet and checks that they match
// within BalanceTolerance.
func BalanceSheet(in BalanceSheetInput) BalanceSheetResult {
	var r BalanceSheetResult

	ca := &r.Assets.Current
	ca.Cash, ca.Receivables, ca.Other = in.Cash, in.Receivables, in.OtherCurrentAssets
	ca.Total = ca.Cash + ca.Receivables + ca.Other

	nca := &r.Assets.NonCurrent
	nca.FixedAssets, nca.AccumulatedDepreciation, nca.Other = in.FixedAssets, in.AccumulatedDepreciation, in.OtherNonCurrentAssets
	nca.NetFixedAssets = nca.FixedAssets - nca.AccumulatedDepreciation
	nca.Total = nca.NetFixedAssets + nca.Other

	r.Assets.Total = ca.Total + nca.Total

	r.Liabilities = Liabilities{
		Current:    in.CurrentLiabilities,
		NonCurrent: in.NonCurrentLiabilities,
		Total:      in.CurrentLiabilities + in.NonCurrentLiabilities,
	}
	r.Equity = OwnersEquity{
		Capital:          in.Capital,
		Reserves:         in.Reserves,
		RetainedEarnings: in.RetainedEarnings,
		Total:            in.Capital + in.Reserves + in.RetainedEarnings,
	}
	r.LiabilitiesAndEquity = r.Liabilities.Total + r.Equity.Total
	r.Difference = r.Assets.Total - r.LiabilitiesAndEquity
	r.Balanced = math.Abs(r.Difference) < BalanceTolerance
	return r
}

// CashFlowInput are the cash movements of a period, outflows are positive amounts.
// All fields are optional.
type CashFlowInput struct {
	OpeningBalance float64 `json:"openingBalance"`

	// operating activities
	Receipts          float64 `json:"receipts"`
	OperatingPayments float64 `json:"operatingPayments"`
	InterestPaid      float64 `json:"interestPaid"`
	TaxesPaid         float64 `json:"taxesPaid"`

	// investing activities
	AssetSales   float64 `json:"assetSales"`
	Acquisitions float64 `json:"acquisitions"`
	Improvements float64 `json:"improvements"`

	// financing activities
	Contributions  float64 `json:"contributions"`
	Distributions  float64 `json:"distributions"`
	LoanProceeds   float64 `json:"loanProceeds"`
	LoanRepayments float64 `json:"loanRepayments"`
}

// CashFlowResult is the cash flow statement of a period.
type CashFlowResult struct {
	OpeningBalance float64 `json:"openingBalance"`
	Operating      float64 `json:"operating"`
	Investing      float64 `json:"investing"`
	Financing      float64 `json:"financing"`
	Total          float64 `json:"total"`
	ClosingBalance float64 `json:"closingBalance"`
}

// CashFlow sums the activities of the period and rolls the opening balance forward.
// Total is derived from the closing balance so that closing - opening == total exactly.
func CashFlow(in CashFlowInput) CashFlowResult {
	r := CashFlowResult{
		OpeningBalance: in.OpeningBalance,
		Operating:      in.Receipts - in.OperatingPayments - in.InterestPaid - in.TaxesPaid,
		Investing:      in.AssetSales - in.Acquisitions - in.Improvements,
		Financing:      in.Contributions + in.LoanProceeds - in.Distributions - in.LoanRepayments,
	}
	r.ClosingBalance = r.OpeningBalance + r.Operating + r.Investing + r.Financing
	r.Total = r.ClosingBalance - r.OpeningBalance
	return r
}
