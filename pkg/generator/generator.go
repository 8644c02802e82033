// Package generator rolls up individual star systems using the Traveller
// basic world generation tables.
package generator

import (
	"github.com/rs/zerolog"

	"github.com/forthekill/GenSec4/pkg/dice"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/types"
)

// Generator produces System records from a dice stream.
type Generator struct {
	roller   dice.Roller
	maturity types.Maturity
	logger   zerolog.Logger
}

// New returns a Generator drawing from roller with the given maturity tier.
func New(roller dice.Roller, maturity types.Maturity) *Generator {
	return &Generator{
		roller:   roller,
		maturity: maturity,
		logger:   logging.GetLogger("generator"),
	}
}

// Maturity reports the tier used for starport rolls.
func (g *Generator) Maturity() types.Maturity {
	return g.maturity
}

// Generate rolls one complete system at hex. Dice are consumed in a fixed
// order so a seeded stream always yields the same sector.
func (g *Generator) Generate(hex types.Hex, allegiance, name string) types.System {
	sys := types.System{
		Name:       name,
		Hex:        hex,
		Allegiance: allegiance,
	}

	sys.Starport = starportFor(g.maturity, g.d2()-2)
	g.physical(&sys)
	g.social(&sys)
	sys.TechLevel = g.techLevel(sys)
	g.makeup(&sys)
	sys.Zone = g.zone(sys.Starport)
	sys.Base = g.bases(sys)
	sys.TradeCodes = tradeCodes(sys)

	g.logger.Trace().
		Str("hex", hex.String()).
		Str("uwp", sys.UWP()).
		Str("base", sys.Base.String()).
		Int("pbg", sys.PBG()).
		Msg("System generated")

	return sys
}

func (g *Generator) d1() int { return dice.D6(g.roller) }
func (g *Generator) d2() int { return dice.D2(g.roller) }

func (g *Generator) physical(sys *types.System) {
	sys.Size = g.d2() - 2

	if sys.Size == 0 {
		sys.Atmosphere = 0
	} else {
		sys.Atmosphere = clamp(g.d2()-7+sys.Size, 0, types.MaxAtmosphere)
	}

	// The roll is consumed even when small worlds force the result to zero.
	hyd := g.d2() - 7 + sys.Size + dm(sys.Atmosphere < 2 || sys.Atmosphere > 9, -4)
	if sys.Size < 2 {
		hyd = 0
	}
	sys.Hydrographics = clamp(hyd, 0, types.MaxHydrographics)
}

func (g *Generator) social(sys *types.System) {
	sys.Population = g.d2() - 2
	sys.Government = clamp(g.d2()-7+sys.Population, 0, types.MaxGovernment)
	sys.LawLevel = clamp(g.d2()-7+sys.Government, 0, types.MaxLawLevel)
}

func (g *Generator) techLevel(sys types.System) int {
	port, siz, atm, hyd, pop, gov := sys.Starport, sys.Size, sys.Atmosphere,
		sys.Hydrographics, sys.Population, sys.Government

	tl := g.d1() +
		dm(port == types.StarportA, 6) +
		dm(port == types.StarportB, 4) +
		dm(port == types.StarportC, 2) +
		dm(port == types.StarportX, -4)
	tl += dm(siz < 5, 1) + dm(siz < 2, 1)
	tl += dm(atm < 4, 1) + dm(atm > 9 && atm < 15, 1)
	tl += dm(hyd == 8, 1) + dm(hyd == 9, 2)
	tl += dm(pop > 0 && pop < 6, 1) + dm(pop == 9, 2) + dm(pop == 10, 4)
	tl += dm(gov == 0 || gov == 5, 1) + dm(gov == 13, -2)

	return clamp(tl, 0, types.MaxTechLevel)
}

// makeup rolls the PBG digits. Belt and giant presence is gated on one 2d6
// and the count comes from a fresh 2d6.
func (g *Generator) makeup(sys *types.System) {
	mul := g.roller.Roll(5)
	if g.d1() > 3 {
		mul--
	} else {
		mul += 4
	}
	sys.PopMultiplier = mul

	if g.d2() >= 8 {
		sys.Belts = lookup(beltTable, g.d2()-2)
	}
	if g.d2() >= 5 {
		sys.GasGiants = lookup(giantTable, g.d2()-2)
	}
}

func (g *Generator) zone(port types.Starport) types.Zone {
	if port == types.StarportX {
		return types.ZoneRed
	}
	if g.d2() > 11 {
		return types.ZoneAmber
	}
	return types.ZoneNone
}
