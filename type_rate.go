package hostfolio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rate is a fractional rate: 0.05 is 5%.
type Rate float64

// ParseRate parses "5%" or "0.05" into a Rate.
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q, want e.g. 5%% or 0.05: %w", s, err)
	}
	if percent {
		v /= 100
	}
	return Rate(v), nil
}

func (r Rate) Equal(q Rate) bool {
	// it has to be compared with some precision
	const precision = 0.000001
	return math.Abs(float64(r-q)) < precision
}

// String formats the rate as a percentage.
func (r Rate) String() string { return fmt.Sprintf("%.2f%%", float64(r)*100) }

// SignedString formats the rate as a signed percentage, 0 is "-".
func (r Rate) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(r)*100)
	if res == "+0.00%" || res == "-0.00%" {
		return "-"
	}
	return res
}

// Ratio formats a multiple like an EV/EBITDA, e.g. "8.50x".
func Ratio(v float64) string { return fmt.Sprintf("%.2fx", v) }
