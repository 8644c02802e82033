package generator

import "github.com/forthekill/GenSec4/pkg/types"

type tradeRule struct {
	code types.TradeCode
	when func(siz, atm, hyd, pop, gov, law int) bool
}

// Rules are evaluated in table order and the output keeps that order. The
// exclusive asteroid/vacuum pair sits between the head and tail tables.
var tradeRulesHead = []tradeRule{
	{types.TradeHighPop, func(_, _, _, pop, _, _ int) bool { return pop > 8 }},
	{types.TradeLowPop, func(_, _, _, pop, _, _ int) bool { return pop < 4 }},
	{types.TradeBarren, func(_, _, _, pop, gov, law int) bool { return pop == 0 && gov == 0 && law == 0 }},
	{types.TradeAgri, func(_, atm, hyd, pop, _, _ int) bool {
		return atm > 3 && atm < 10 && hyd > 3 && hyd < 9 && pop > 4 && pop < 8
	}},
	{types.TradeNonAgri, func(_, atm, hyd, pop, _, _ int) bool { return atm < 4 && hyd < 4 && pop > 5 }},
	{types.TradeIndustrial, func(_, atm, _, pop, _, _ int) bool {
		return ((atm > 1 && atm < 5) || atm == 7 || atm == 9) && pop > 8
	}},
	{types.TradeNonInd, func(_, _, _, pop, _, _ int) bool { return pop < 7 }},
	{types.TradeRich, func(_, atm, _, pop, gov, _ int) bool {
		return (atm == 6 || atm == 8) && pop > 5 && pop < 9 && gov > 3 && gov < 10
	}},
	{types.TradePoor, func(_, atm, hyd, _, _, _ int) bool { return atm > 1 && atm < 6 && hyd < 4 }},
	{types.TradeDesert, func(_, atm, hyd, _, _, _ int) bool { return hyd == 0 && atm > 1 }},
	{types.TradeWater, func(_, _, hyd, _, _, _ int) bool { return hyd == 10 }},
}

var tradeRulesTail = []tradeRule{
	{types.TradeFluid, func(siz, atm, _, _, _, _ int) bool { return siz > 9 && atm > 0 }},
	{types.TradeIceCapped, func(_, atm, hyd, _, _, _ int) bool { return atm < 2 && hyd > 0 }},
}

func tradeCodes(sys types.System) types.TradeCodes {
	siz, atm, hyd := sys.Size, sys.Atmosphere, sys.Hydrographics
	pop, gov, law := sys.Population, sys.Government, sys.LawLevel

	codes := types.TradeCodes{}
	apply := func(rules []tradeRule) {
		for _, r := range rules {
			if r.when(siz, atm, hyd, pop, gov, law) {
				codes = append(codes, r.code)
			}
		}
	}

	apply(tradeRulesHead)
	if siz == 0 && atm == 0 && hyd == 0 {
		codes = append(codes, types.TradeAsteroid)
	} else if atm == 0 {
		codes = append(codes, types.TradeVacuum)
	}
	apply(tradeRulesTail)

	return codes
}
