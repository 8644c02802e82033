package generator

import "github.com/forthekill/GenSec4/pkg/types"

// betterThan reports whether port outranks limit. X ranks below E.
func betterThan(port, limit types.Starport) bool {
	return port != types.StarportX && port < limit
}

// bases rolls each base predicate and resolves them into one code. Rolls
// happen only for classes that pass each threshold.
func (g *Generator) bases(sys types.System) types.Base {
	port := sys.Starport

	naval := betterThan(port, types.StarportC) && g.d2() > 7

	scoutDM := dm(port == types.StarportA, -3) +
		dm(port == types.StarportB, -2) +
		dm(port == types.StarportC, -1)
	scout := betterThan(port, types.StarportE) && g.d2()+scoutDM > 6

	militaryDM := dm(sys.Population > 8, -1) +
		dm(sys.Atmosphere > 1 && sys.Atmosphere < 6 && sys.Hydrographics < 4, -20)
	military := betterThan(port, types.StarportD) && g.d2()+militaryDM > 11

	depot := port == types.StarportA && sys.Government > 9
	way := port == types.StarportA && sys.Hydrographics > 4

	return resolveBase(naval, scout, military, depot, way)
}

// resolveBase picks the first matching combination in priority order.
func resolveBase(naval, scout, military, depot, way bool) types.Base {
	switch {
	case naval && scout:
		return types.BaseNavalScout
	case naval && way:
		return types.BaseNavalWaystation
	case way:
		return types.BaseWaystation
	case depot && naval:
		return types.BaseDepot
	case naval:
		return types.BaseNaval
	case scout:
		return types.BaseScout
	case military:
		return types.BaseMilitary
	default:
		return types.BaseNone
	}
}
