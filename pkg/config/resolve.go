package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/forthekill/GenSec4/pkg/format"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/names"
	"github.com/forthekill/GenSec4/pkg/types"
)

// Default sector identity.
const (
	DefaultSectorName = "Unnamed"
	DefaultAllegiance = "Im"
)

// Params are the validated inputs of one generation run.
type Params struct {
	SectorName string
	Allegiance string
	Subsector  string
	Bounds     types.Bounds
	Density    int
	Maturity   types.Maturity
	Seed       uint64
	Format     format.Format
	NamesPath  string
	OutputPath string
	// OutputDerived is set when OutputPath was built from the sector name.
	OutputDerived bool
}

// Resolve turns configuration into run parameters. Values that cannot be
// understood keep their defaults and are reported as warnings, never errors.
func (c *Config) Resolve() Params {
	logger := logging.GetLogger("config")

	p := Params{
		SectorName: strings.TrimSpace(c.Sector.Name),
		Allegiance: strings.TrimSpace(c.Sector.Allegiance),
		Seed:       c.Generate.Seed,
	}
	if p.SectorName == "" {
		p.SectorName = DefaultSectorName
	}
	if p.Allegiance == "" {
		p.Allegiance = DefaultAllegiance
	}

	bounds, err := types.SubsectorBounds(c.Sector.Subsector)
	if err != nil {
		logger.Warn().Err(err).Msg("Ignoring subsector, generating the whole sector")
	} else {
		p.Subsector = strings.ToUpper(strings.TrimSpace(c.Sector.Subsector))
	}
	p.Bounds = bounds

	density, ok := types.ParseDensity(c.Generate.Density)
	if !ok {
		logger.Warn().Str("density", c.Generate.Density).Int("using", density).Msg("Unknown density")
	}
	p.Density = density

	maturity, ok := types.ParseMaturity(c.Generate.Maturity)
	if !ok {
		logger.Warn().Str("maturity", c.Generate.Maturity).Str("using", maturity.String()).Msg("Unknown maturity")
	}
	p.Maturity = maturity

	p.Format = format.Parse(c.Output.Format)
	if n, err := strconv.Atoi(strings.TrimSpace(c.Output.Format)); err != nil || !format.Format(n).Valid() {
		logger.Warn().Str("format", c.Output.Format).Str("using", p.Format.String()).Msg("Unknown output format")
	}

	namesPath := c.Names.Path
	if namesPath == "" {
		namesPath = homeDir()
	}
	p.NamesPath = names.Resolve(namesPath, p.SectorName)

	p.OutputPath = c.Output.File
	if p.OutputPath == "" {
		dir := c.Output.Dir
		if dir == "" {
			dir = homeDir()
		}
		p.OutputPath = filepath.Join(dir, p.SectorName+p.Format.Extension())
		p.OutputDerived = true
	}

	logger.Debug().
		Str("sector", p.SectorName).
		Str("bounds", p.Bounds.String()).
		Int("density", p.Density).
		Str("maturity", p.Maturity.String()).
		Str("format", p.Format.String()).
		Str("names", p.NamesPath).
		Str("output", p.OutputPath).
		Msg("Resolved parameters")

	return p
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
