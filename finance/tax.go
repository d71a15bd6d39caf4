package finance

// Default rates of the simplified presumed tax regime.
const (
	DefaultServiceTaxRate = 0.05 // ISS
	DefaultIRRate         = 0.15
	DefaultCSLLRate       = 0.09
)

// TaxRates groups the rates used to tax a rental activity.
type TaxRates struct {
	ServiceTax float64 `json:"serviceTax"` // ISS, over gross revenue
	IR         float64 `json:"ir"`         // over taxable profit
	CSLL       float64 `json:"csll"`       // over taxable profit
}

// DefaultTaxRates returns the default rates.
func DefaultTaxRates() TaxRates {
	return TaxRates{ServiceTax: DefaultServiceTaxRate, IR: DefaultIRRate, CSLL: DefaultCSLLRate}
}

// ServiceTax is the flat ISS over revenue.
func ServiceTax(revenue, rate float64) float64 { return revenue * rate }

// CorporateTaxResult holds the two corporate tax components.
type CorporateTaxResult struct {
	TaxableProfit float64 `json:"taxableProfit"`
	IR            float64 `json:"ir"`
	CSLL          float64 `json:"csll"`
	Total         float64 `json:"total"`
}

// CorporateTax applies irRate and csllRate to a positive profit. A loss is not taxed.
func CorporateTax(profit, irRate, csllRate float64) CorporateTaxResult {
	r := CorporateTaxResult{TaxableProfit: profit}
	if profit <= 0 {
		return r
	}
	r.IR = profit * irRate
	r.CSLL = profit * csllRate
	r.Total = r.IR + r.CSLL
	return r
}

// Corporate is CorporateTax with these rates.
func (t TaxRates) Corporate(profit float64) CorporateTaxResult {
	return CorporateTax(profit, t.IR, t.CSLL)
}
