package config

// Config mirrors the TOML configuration file.
type Config struct {
	Sector   Sector   `koanf:"sector" toml:"sector"`
	Generate Generate `koanf:"generate" toml:"generate"`
	Names    Names    `koanf:"names" toml:"names"`
	Output   Output   `koanf:"output" toml:"output"`
}

// Sector holds the sector identity.
type Sector struct {
	Name       string `koanf:"name" toml:"name"`
	Allegiance string `koanf:"allegiance" toml:"allegiance"`
	Subsector  string `koanf:"subsector" toml:"subsector"`
}

// Generate holds the generation tuning knobs. Density is kept as text since
// it accepts tier names as well as percentages.
type Generate struct {
	Density  string `koanf:"density" toml:"density"`
	Maturity string `koanf:"maturity" toml:"maturity"`
	Seed     uint64 `koanf:"seed" toml:"seed"`
}

// Names locates the names file.
type Names struct {
	Path string `koanf:"path" toml:"path"`
}

// Output selects the layout and destination.
type Output struct {
	Format string `koanf:"format" toml:"format"`
	File   string `koanf:"file" toml:"file"`
	Dir    string `koanf:"dir" toml:"dir"`
}
