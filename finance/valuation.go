package finance

import (
	"fmt"
	"math"
)

// DCFValuation is the result of a discounted cash flow valuation.
type DCFValuation struct {
	DiscountRate    float64   `json:"discountRate"`
	TerminalGrowth  float64   `json:"terminalGrowth"`
	CashFlows       []float64 `json:"cashFlows"`
	PresentValues   []float64 `json:"presentValues"` // one per cash flow
	PVFlows         float64   `json:"pvFlows"`
	TerminalValue   float64   `json:"terminalValue"`
	PVTerminal      float64   `json:"pvTerminal"`
	EnterpriseValue float64   `json:"enterpriseValue"`
}

// DCF discounts flows, the first one at the end of period 1, and adds a
// Gordon growth terminal value based on the last flow.
//
// discountRate must be greater than -1 and strictly greater than terminalGrowth.
func DCF(flows []float64, discountRate, terminalGrowth float64) (DCFValuation, error) {
	if len(flows) == 0 {
		return DCFValuation{}, ErrNoCashFlows
	}
	if !(discountRate > -1) {
		return DCFValuation{}, fmt.Errorf("%w, got %v", ErrDiscountRate, discountRate)
	}
	if !(discountRate > terminalGrowth) {
		return DCFValuation{}, fmt.Errorf("%w, got discount %v and growth %v", ErrTerminalGrowth, discountRate, terminalGrowth)
	}

	v := DCFValuation{
		DiscountRate:   discountRate,
		TerminalGrowth: terminalGrowth,
		CashFlows:      append([]float64(nil), flows...),
		PresentValues:  make([]float64, len(flows)),
	}
	for i, flow := range flows {
		pv := flow / math.Pow(1+discountRate, float64(i+1))
		v.PresentValues[i] = pv
		v.PVFlows += pv
	}
	last := flows[len(flows)-1]
	v.TerminalValue = last * (1 + terminalGrowth) / (discountRate - terminalGrowth)
	v.PVTerminal = v.TerminalValue / math.Pow(1+discountRate, float64(len(flows)))
	v.EnterpriseValue = v.PVFlows + v.PVTerminal
	return v, nil
}

// EquityValue bridges an enterprise value to the owners' value.
func EquityValue(enterpriseValue, debt, cash float64) float64 {
	return enterpriseValue - debt + cash
}

// NAV is the net asset value: assets at market value minus liabilities.
func NAV(assets, liabilities float64) float64 { return assets - liabilities }

// EVToEBITDA is the enterprise value multiple of EBITDA, 0 when ebitda is 0.
func EVToEBITDA(ev, ebitda float64) float64 { return ratio(ev, ebitda) }

// EVToRevenue is the enterprise value multiple of revenue, 0 when revenue is 0.
func EVToRevenue(ev, revenue float64) float64 { return ratio(ev, revenue) }
