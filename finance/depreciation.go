package finance

// DepreciationResult is the straight-line depreciation state of an asset.
type DepreciationResult struct {
	AnnualDepreciation      float64 `json:"annualDepreciation"`
	AccumulatedDepreciation float64 `json:"accumulatedDepreciation"`
	BookValue               float64 `json:"bookValue"`
	RemainingLife           float64 `json:"remainingLife"`
}

// StraightLine depreciates assetValue evenly over usefulLifeYears.
//
// yearsUsed is not bounded: beyond the useful life the book value becomes
// negative, callers that need a floor must clamp yearsUsed themselves.
func StraightLine(assetValue, usefulLifeYears, yearsUsed float64) DepreciationResult {
	annual := AnnualDepreciation(assetValue, usefulLifeYears)
	accumulated := annual * yearsUsed
	return DepreciationResult{
		AnnualDepreciation:      annual,
		AccumulatedDepreciation: accumulated,
		BookValue:               assetValue - accumulated,
		RemainingLife:           max(0, usefulLifeYears-yearsUsed),
	}
}

// AnnualDepreciation is assetValue / usefulLifeYears, 0 for a non positive life.
func AnnualDepreciation(assetValue, usefulLifeYears float64) float64 {
	if usefulLifeYears <= 0 {
		return 0
	}
	return assetValue / usefulLifeYears
}

// MonthlyDepreciation is the annual depreciation spread over 12 months.
func MonthlyDepreciation(assetValue, usefulLifeYears float64) float64 {
	return AnnualDepreciation(assetValue, usefulLifeYears) / 12
}
