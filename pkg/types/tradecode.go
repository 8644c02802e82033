package types

import "strings"

// TradeCode is a short economic or demographic classification.
type TradeCode string

const (
	TradeHighPop    TradeCode = "Hi"
	TradeLowPop     TradeCode = "Lo"
	TradeBarren     TradeCode = "Ba"
	TradeAgri       TradeCode = "Ag"
	TradeNonAgri    TradeCode = "Na"
	TradeIndustrial TradeCode = "In"
	TradeNonInd     TradeCode = "Ni"
	TradeRich       TradeCode = "Ri"
	TradePoor       TradeCode = "Po"
	TradeDesert     TradeCode = "De"
	TradeWater      TradeCode = "Wa"
	TradeAsteroid   TradeCode = "As"
	TradeVacuum     TradeCode = "Va"
	TradeFluid      TradeCode = "Fl"
	TradeIceCapped  TradeCode = "Ic"
)

// TradeCodes keeps codes in rule-table order.
type TradeCodes []TradeCode

// Has reports whether code is present.
func (tc TradeCodes) Has(code TradeCode) bool {
	for _, c := range tc {
		if c == code {
			return true
		}
	}
	return false
}

// String renders every code followed by a single space ("Hi In "), the form
// the fixed-column layouts pad and truncate.
func (tc TradeCodes) String() string {
	var b strings.Builder
	for _, c := range tc {
		b.WriteString(string(c))
		b.WriteByte(' ')
	}
	return b.String()
}
