package generator

import "github.com/forthekill/GenSec4/pkg/types"

// starportTables map a 2d6-2 roll (0-10) to a starport class per maturity.
var starportTables = map[types.Maturity][11]types.Starport{
	types.MaturityBackwater: classTable("AABBCCCDEEX"),
	types.MaturityFrontier:  classTable("AAABBCCDEEX"),
	types.MaturityMature:    classTable("AAABBCCDEEE"),
	types.MaturityCluster:   classTable("AAAABBCCDEX"),
}

// beltTable and giantTable are indexed by a fresh 2d6-2 once presence is
// established.
var (
	beltTable  = [11]int{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2}
	giantTable = [11]int{1, 1, 2, 2, 3, 3, 4, 4, 4, 5, 5}
)

func classTable(letters string) [11]types.Starport {
	var t [11]types.Starport
	for i := range t {
		t[i] = types.Starport(letters[i])
	}
	return t
}

// starportFor looks up the class for a 2d6-2 index, falling back to the
// mature table for unknown tiers. Out-of-range indexes clamp to the table ends.
func starportFor(m types.Maturity, index int) types.Starport {
	table, ok := starportTables[m]
	if !ok {
		table = starportTables[types.DefaultMaturity]
	}
	return table[clamp(index, 0, len(table)-1)]
}

func lookup(table [11]int, index int) int {
	return table[clamp(index, 0, len(table)-1)]
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// dm returns mod when test holds.
func dm(test bool, mod int) int {
	if test {
		return mod
	}
	return 0
}
