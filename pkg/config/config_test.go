package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthekill/GenSec4/pkg/errors"
	"github.com/forthekill/GenSec4/pkg/format"
	"github.com/forthekill/GenSec4/pkg/testutil"
	"github.com/forthekill/GenSec4/pkg/types"
)

// isolate points the home and XDG config directories at fresh temp dirs.
func isolate(t *testing.T) (home, configHome string) {
	t.Helper()
	home = t.TempDir()
	configHome = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return home, configHome
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, "Unnamed", cfg.Sector.Name)
	assert.Equal(t, "Im", cfg.Sector.Allegiance)
	assert.Empty(t, cfg.Sector.Subsector)
	assert.Equal(t, "50", cfg.Generate.Density)
	assert.Equal(t, "mature", cfg.Generate.Maturity)
	assert.Zero(t, cfg.Generate.Seed)
	assert.Equal(t, "6", cfg.Output.Format)
	assert.Empty(t, cfg.Output.File)
}

func TestLoadLayering(t *testing.T) {
	isolate(t)

	path := testutil.CreateFile(t, t.TempDir(), "custom.toml", `
[sector]
name = "Spinward Marches"
allegiance = "Zh"

[generate]
density = "dense"
seed = 7
`)
	t.Setenv("GENSEC_SECTOR_ALLEGIANCE", "Cs")
	t.Setenv("GENSEC_GENERATE_MATURITY", "frontier")

	cfg, err := Load(LoadOptions{
		ConfigPath: path,
		Flags: map[string]interface{}{
			"output.format":     "4",
			"generate.maturity": "cluster",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Spinward Marches", cfg.Sector.Name, "file overrides defaults")
	assert.Equal(t, "Cs", cfg.Sector.Allegiance, "env overrides file")
	assert.Equal(t, "cluster", cfg.Generate.Maturity, "flags override env")
	assert.Equal(t, "dense", cfg.Generate.Density)
	assert.Equal(t, uint64(7), cfg.Generate.Seed)
	assert.Equal(t, "4", cfg.Output.Format)
}

func TestLoadUserConfigFromXDG(t *testing.T) {
	_, configHome := isolate(t)
	testutil.CreateFile(t, filepath.Join(configHome, "gensec"), "config.toml", "[output]\nformat = 2\n")

	assert.Equal(t, filepath.Join(configHome, "gensec", "config.toml"), DefaultConfigPath())

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "2", cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := Load(LoadOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))

	bad := testutil.CreateFile(t, t.TempDir(), "bad.toml", "[sector\nname = ")
	_, err = Load(LoadOptions{ConfigPath: bad})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestResolveDefaults(t *testing.T) {
	home, _ := isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	p := cfg.Resolve()

	assert.Equal(t, "Unnamed", p.SectorName)
	assert.Equal(t, "Im", p.Allegiance)
	assert.Equal(t, types.SectorBounds(), p.Bounds)
	assert.Equal(t, 50, p.Density)
	assert.Equal(t, types.MaturityMature, p.Maturity)
	assert.Equal(t, format.V25, p.Format)
	assert.Equal(t, filepath.Join(home, "Unnamed_names.txt"), p.NamesPath)
	assert.Equal(t, filepath.Join(home, "Unnamed.sec"), p.OutputPath)
	assert.True(t, p.OutputDerived)
}

func TestResolveLeniency(t *testing.T) {
	home, _ := isolate(t)

	base := func() Config {
		return Config{
			Sector:   Sector{Name: "Spinward", Allegiance: "Im"},
			Generate: Generate{Density: "50", Maturity: "mature"},
			Output:   Output{Format: "6"},
		}
	}

	tests := []struct {
		name   string
		modify func(*Config)
		check  func(*testing.T, Params)
	}{
		{
			name:   "density tier",
			modify: func(c *Config) { c.Generate.Density = "Dense" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, 66, p.Density) },
		},
		{
			name:   "density percent sign",
			modify: func(c *Config) { c.Generate.Density = "25%" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, 25, p.Density) },
		},
		{
			name:   "density out of range keeps default",
			modify: func(c *Config) { c.Generate.Density = "150" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, types.DefaultDensity, p.Density) },
		},
		{
			name:   "density garbage keeps default",
			modify: func(c *Config) { c.Generate.Density = "lots" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, types.DefaultDensity, p.Density) },
		},
		{
			name:   "unknown maturity",
			modify: func(c *Config) { c.Generate.Maturity = "ancient" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, types.MaturityMature, p.Maturity) },
		},
		{
			name:   "backwater maturity",
			modify: func(c *Config) { c.Generate.Maturity = "backwater" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, types.MaturityBackwater, p.Maturity) },
		},
		{
			name:   "non-numeric format",
			modify: func(c *Config) { c.Output.Format = "xml" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, format.V25, p.Format) },
		},
		{
			name:   "xml format changes extension",
			modify: func(c *Config) { c.Output.Format = "7" },
			check: func(t *testing.T, p Params) {
				assert.Equal(t, format.XML3, p.Format)
				assert.Equal(t, filepath.Join(home, "Spinward.xml"), p.OutputPath)
			},
		},
		{
			name:   "subsector",
			modify: func(c *Config) { c.Sector.Subsector = "c" },
			check: func(t *testing.T, p Params) {
				assert.Equal(t, "C", p.Subsector)
				assert.Equal(t, "1701-2410", p.Bounds.String())
			},
		},
		{
			name:   "bad subsector generates whole sector",
			modify: func(c *Config) { c.Sector.Subsector = "Z" },
			check: func(t *testing.T, p Params) {
				assert.Empty(t, p.Subsector)
				assert.Equal(t, types.SectorBounds(), p.Bounds)
			},
		},
		{
			name: "explicit output file",
			modify: func(c *Config) {
				c.Output.File = "/tmp/out.sec"
				c.Output.Dir = "/ignored"
			},
			check: func(t *testing.T, p Params) {
				assert.Equal(t, "/tmp/out.sec", p.OutputPath)
				assert.False(t, p.OutputDerived)
			},
		},
		{
			name:   "output dir",
			modify: func(c *Config) { c.Output.Dir = "/srv/sectors" },
			check:  func(t *testing.T, p Params) { assert.Equal(t, "/srv/sectors/Spinward.sec", p.OutputPath) },
		},
		{
			name: "blank identity falls back",
			modify: func(c *Config) {
				c.Sector.Name = "  "
				c.Sector.Allegiance = ""
			},
			check: func(t *testing.T, p Params) {
				assert.Equal(t, DefaultSectorName, p.SectorName)
				assert.Equal(t, DefaultAllegiance, p.Allegiance)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.modify(&cfg)
			tt.check(t, cfg.Resolve())
		})
	}
}

func TestResolveNamesDirectory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	yamlPath := testutil.CreateFile(t, dir, "Spinward_names.yaml", "[]\n")

	cfg := Config{Sector: Sector{Name: "Spinward"}, Names: Names{Path: dir}}
	assert.Equal(t, yamlPath, cfg.Resolve().NamesPath)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[sector]")
	assert.Contains(t, content, `# name = "Unnamed"`)
	assert.Contains(t, content, "# format = 6")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
	}
}

func TestCommentOutConfigValues(t *testing.T) {
	input := "# header\n\n[output]\nformat = 2\n  dir = \"/tmp\""
	want := "# header\n\n[output]\n# format = 2\n#   dir = \"/tmp\""
	assert.Equal(t, want, commentOutConfigValues(input))
}

func TestResolvedConfigContent(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{Flags: map[string]interface{}{"sector.name": "Trojan Reach"}})
	require.NoError(t, err)

	content, err := ResolvedConfigContent(cfg)
	require.NoError(t, err)
	assert.Contains(t, content, "[sector]")

	var back Config
	require.NoError(t, toml.Unmarshal([]byte(content), &back))
	assert.Equal(t, *cfg, back)
}
