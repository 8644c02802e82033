package names

import (
	"sort"

	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/types"
)

// Lookup finds override names by coordinate, so entries may appear in any
// order in the file.
type Lookup struct {
	byHex map[types.Hex]string
}

// NewLookup indexes overrides by hex. When a hex repeats, the first entry
// wins.
func NewLookup(overrides []Override) *Lookup {
	logger := logging.GetLogger("names")

	l := &Lookup{byHex: make(map[types.Hex]string, len(overrides))}
	for _, o := range overrides {
		hex := o.Coordinate()
		if existing, ok := l.byHex[hex]; ok {
			logger.Warn().
				Str("hex", hex.String()).
				Str("kept", existing).
				Str("dropped", o.Name).
				Msg("Duplicate hex in names file")
			continue
		}
		l.byHex[hex] = o.Name
	}
	return l
}

// Name returns the override for hex, if any.
func (l *Lookup) Name(hex types.Hex) (string, bool) {
	if l == nil {
		return "", false
	}
	name, ok := l.byHex[hex]
	return name, ok
}

// Hexes lists every overridden hex in ascending code order.
func (l *Lookup) Hexes() []types.Hex {
	if l == nil {
		return nil
	}
	hexes := make([]types.Hex, 0, len(l.byHex))
	for h := range l.byHex {
		hexes = append(hexes, h)
	}
	sort.Slice(hexes, func(i, j int) bool { return hexes[i].Code() < hexes[j].Code() })
	return hexes
}

// Len is the number of distinct overridden hexes.
func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.byHex)
}
