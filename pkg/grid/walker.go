// Package grid walks the hexes of a sector or subsector and decides which of
// them hold a star system.
package grid

import (
	"github.com/rs/zerolog"

	"github.com/forthekill/GenSec4/pkg/dice"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/types"
)

// SystemGenerator rolls one system at a hex.
type SystemGenerator interface {
	Generate(hex types.Hex, allegiance, name string) types.System
}

// Overrides supplies pre-named hexes.
type Overrides interface {
	Name(hex types.Hex) (string, bool)
	Hexes() []types.Hex
}

// Sink receives generated systems in walk order.
type Sink interface {
	Add(sys types.System)
}

// Options configures a Walker.
type Options struct {
	Roller     dice.Roller
	Generator  SystemGenerator
	Overrides  Overrides
	Density    int
	Allegiance string
}

// Result summarizes one walk.
type Result struct {
	Scanned   int
	Generated int
	Named     int
}

// Walker scans hexes in ascending-hex order: every row of a column before
// moving to the next column.
type Walker struct {
	roller     dice.Roller
	generator  SystemGenerator
	overrides  Overrides
	density    int
	allegiance string
	logger     zerolog.Logger
}

// NewWalker builds a Walker. Density is clamped to 0-100.
func NewWalker(opts Options) *Walker {
	density := opts.Density
	if density < 0 {
		density = 0
	}
	if density > 100 {
		density = 100
	}
	return &Walker{
		roller:     opts.Roller,
		generator:  opts.Generator,
		overrides:  opts.Overrides,
		density:    density,
		allegiance: opts.Allegiance,
		logger:     logging.GetLogger("grid"),
	}
}

// Walk visits every hex in bounds and adds each system that exists to sink.
// A pre-named hex always holds a system and consumes no density roll.
func (w *Walker) Walk(bounds types.Bounds, sink Sink) Result {
	w.logger.Debug().
		Str("bounds", bounds.String()).
		Int("density", w.density).
		Str("allegiance", w.allegiance).
		Msg("Walking grid")

	w.reportOutside(bounds)

	var res Result
	for col := bounds.ColStart; col <= bounds.ColEnd; col++ {
		for row := bounds.RowStart; row <= bounds.RowEnd; row++ {
			hex := types.Hex{Col: col, Row: row}
			res.Scanned++

			name, named := w.override(hex)
			if !named {
				if w.roller.Roll(100) > w.density {
					continue
				}
				name = types.UnnamedSystem
			} else {
				res.Named++
			}

			sink.Add(w.generator.Generate(hex, w.allegiance, name))
			res.Generated++
		}
	}

	w.logger.Info().
		Int("scanned", res.Scanned).
		Int("generated", res.Generated).
		Int("named", res.Named).
		Msg("Grid walk complete")

	return res
}

func (w *Walker) override(hex types.Hex) (string, bool) {
	if w.overrides == nil {
		return "", false
	}
	return w.overrides.Name(hex)
}

func (w *Walker) reportOutside(bounds types.Bounds) {
	if w.overrides == nil {
		return
	}
	for _, hex := range w.overrides.Hexes() {
		if bounds.Contains(hex) {
			continue
		}
		name, _ := w.overrides.Name(hex)
		w.logger.Debug().
			Str("hex", hex.String()).
			Str("name", name).
			Msg("Named system lies outside the walked bounds")
	}
}
