package types

import (
	"strconv"
	"strings"
)

// Maturity biases the starport distribution toward how settled a region is.
type Maturity int

const (
	MaturityBackwater Maturity = iota + 1
	MaturityFrontier
	MaturityMature
	MaturityCluster
)

// DefaultMaturity is used when no tier, or an unknown one, is given.
const DefaultMaturity = MaturityMature

var maturityNames = map[Maturity]string{
	MaturityBackwater: "backwater",
	MaturityFrontier:  "frontier",
	MaturityMature:    "mature",
	MaturityCluster:   "cluster",
}

// String returns the tier name.
func (m Maturity) String() string {
	if name, ok := maturityNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMaturity maps a tier name to its Maturity. Unknown names report false
// along with DefaultMaturity.
func ParseMaturity(s string) (Maturity, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for m, name := range maturityNames {
		if name == needle {
			return m, true
		}
	}
	return DefaultMaturity, false
}

// DefaultDensity is the percent chance a hex holds a system.
const DefaultDensity = 50

var densityTiers = map[string]int{
	"dense":     66,
	"scattered": 33,
	"sparse":    16,
	"rift":      4,
	"zero":      0,
}

// ParseDensity accepts a named tier or a percentage from 0 to 100, with or
// without a trailing '%'. Anything else reports false along with
// DefaultDensity.
func ParseDensity(s string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if pct, ok := densityTiers[needle]; ok {
		return pct, true
	}
	n, err := strconv.Atoi(strings.TrimSuffix(needle, "%"))
	if err != nil || n < 0 || n > 100 {
		return DefaultDensity, false
	}
	return n, true
}
