package gensec

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Traveller sector generator"
	MsgGenerateShort   = "Generate a sector and write it to a sector file"
	MsgFormatsShort    = "List the output formats"
	MsgFormatsLong     = "Formats lists every sector file layout gensec can write, with the selector to pass to --format."
	MsgGenConfigShort  = "Print a configuration file"
	MsgGenConfigLong   = "Gen-config prints the default configuration with every value commented out, ready to be saved as $XDG_CONFIG_HOME/gensec/config.toml. With --resolved it prints the effective configuration instead."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status labels
	MsgOutputPath   = "outputPath"
	MsgOutputFile   = "Output file"
	MsgSystemCount  = "# of Systems"
	MsgNamedCount   = "Named systems"
	MsgSeed         = "Seed"
	MsgRunID        = "Run"
	MsgConfigExists = "Config file already exists, left unchanged"
	MsgConfigSaved  = "Config written to"

	// Version output
	MsgVersionFormat = "gensec version %s\n  commit: %s\n  built:  %s\n"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file (default $XDG_CONFIG_HOME/gensec/config.toml)"
	MsgFlagSubsector  = "Subsector letter A-P; omit to generate the whole sector"
	MsgFlagDensity    = "Percent chance of a system per hex, or dense|scattered|sparse|rift|zero"
	MsgFlagMaturity   = "Starport distribution: backwater|frontier|mature|cluster"
	MsgFlagAllegiance = "Two-letter allegiance code"
	MsgFlagSector     = "Sector name, used for the default output file and the names file"
	MsgFlagNamesPath  = "Names file, or directory holding <sector>_names.txt"
	MsgFlagFormat     = "Output format 1-7 (see 'gensec formats')"
	MsgFlagOutput     = "Output file path"
	MsgFlagSeed       = "Dice seed for a reproducible sector; 0 seeds from the clock"
	MsgFlagResolved   = "Print the effective configuration instead of the defaults"
	MsgFlagWrite      = "Save to the user config file instead of printing"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrGenerate  = "failed to generate sector: %w"
)

// Long messages loaded from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
