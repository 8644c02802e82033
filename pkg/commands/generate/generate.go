// Package generate implements the generate command: walk the grid, roll the
// systems and write the sector file.
package generate

import (
	"os"
	"path/filepath"

	"github.com/forthekill/GenSec4/pkg/config"
	"github.com/forthekill/GenSec4/pkg/dice"
	"github.com/forthekill/GenSec4/pkg/errors"
	"github.com/forthekill/GenSec4/pkg/format"
	"github.com/forthekill/GenSec4/pkg/generator"
	"github.com/forthekill/GenSec4/pkg/grid"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/names"
	"github.com/forthekill/GenSec4/pkg/sector"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	Params config.Params

	// Roller replaces the dice stream. When nil, Params.Seed seeds the
	// stream, or the clock does when the seed is 0.
	Roller dice.Roller
}

// Result summarizes a finished run.
type Result struct {
	Sector     *sector.Sector
	OutputPath string
	Format     format.Format
	Scanned    int
	Generated  int
	Named      int
	Seed       uint64
}

// Generate runs one sector generation and writes the output file.
func Generate(opts GenerateOptions) (*Result, error) {
	logger := logging.GetLogger("commands.generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	p := opts.Params

	roller := opts.Roller
	seed := p.Seed
	if roller == nil {
		var d *dice.Dice
		if seed == 0 {
			d = dice.NewRandom()
		} else {
			d = dice.New(seed)
		}
		seed = d.Seed()
		roller = d
	}

	overrides, err := names.Load(p.NamesPath)
	if err != nil {
		return nil, err
	}

	sec := sector.New(sector.Meta{
		Name:       p.SectorName,
		Allegiance: p.Allegiance,
		Maturity:   p.Maturity,
		Density:    p.Density,
		Bounds:     p.Bounds,
		Seed:       seed,
	})

	logger.Info().
		Str("run", sec.RunID.String()).
		Str("sector", p.SectorName).
		Str("bounds", p.Bounds.String()).
		Uint64("seed", seed).
		Msg("Executing command")

	walker := grid.NewWalker(grid.Options{
		Roller:     roller,
		Generator:  generator.New(roller, p.Maturity),
		Overrides:  names.NewLookup(overrides),
		Density:    p.Density,
		Allegiance: p.Allegiance,
	})
	walk := walker.Walk(p.Bounds, sec)

	if err := writeFile(p.OutputPath, sec, p.Format); err != nil {
		return nil, err
	}

	logger.Info().
		Str("run", sec.RunID.String()).
		Str("path", p.OutputPath).
		Int("systems", sec.Len()).
		Msg("Sector written")

	return &Result{
		Sector:     sec,
		OutputPath: p.OutputPath,
		Format:     p.Format,
		Scanned:    walk.Scanned,
		Generated:  walk.Generated,
		Named:      walk.Named,
		Seed:       seed,
	}, nil
}

func writeFile(path string, sec *sector.Sector, f format.Format) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "failed to create output file %s", path)
	}

	if err := format.Write(out, sec, f); err != nil {
		_ = out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to close output file %s", path)
	}
	return nil
}
