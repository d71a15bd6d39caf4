package finance

import "fmt"

// Project compounds base by each rate in turn and returns one value per rate.
// The base itself is not part of the result.
func Project(base float64, rates []float64) []float64 {
	values := make([]float64, len(rates))
	v := base
	for i, r := range rates {
		v *= 1 + r
		values[i] = v
	}
	return values
}

// ProjectPeriods is Project for exactly 'periods' periods.
func ProjectPeriods(base float64, rates []float64, periods int) ([]float64, error) {
	if periods < 0 || len(rates) != periods {
		return nil, fmt.Errorf("%w: got %d rates for %d periods", ErrRateCount, len(rates), periods)
	}
	return Project(base, rates), nil
}

// ConstantRates returns 'periods' times the same rate.
func ConstantRates(rate float64, periods int) []float64 {
	rates := make([]float64, max(0, periods))
	for i := range rates {
		rates[i] = rate
	}
	return rates
}
