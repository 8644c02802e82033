// Package gensec builds the gensec command tree.
package gensec

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/forthekill/GenSec4/internal/version"
	"github.com/forthekill/GenSec4/pkg/commands"
	"github.com/forthekill/GenSec4/pkg/config"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/style"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "gensec",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", MsgFlagConfig)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newFormatsCmd())
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// outputMode picks plain text unless the command writes to a color terminal.
func outputMode(cmd *cobra.Command) style.Mode {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return style.DetectMode(f)
	}
	return style.ModeText
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   MsgGenerateShort,
		Long:    MsgGenerateLong,
		Example: MsgGenerateExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.LoadOptions{
				ConfigPath: global.configPath,
				Flags:      changedFlags(cmd),
			})
			if err != nil {
				return err
			}
			params := cfg.Resolve()

			printer := style.NewPrinter(cmd.OutOrStdout(), outputMode(cmd))
			if params.OutputDerived {
				printer.Status(MsgOutputPath, params.OutputPath)
			}

			log.Info().
				Str("sector", params.SectorName).
				Str("output", params.OutputPath).
				Msg("Generating sector")

			result, err := commands.Generate(commands.GenerateOptions{Params: params})
			if err != nil {
				return fmt.Errorf(MsgErrGenerate, err)
			}

			printer.Status(MsgOutputFile, result.OutputPath)
			printer.Status(MsgSystemCount, result.Generated)

			if global.verbosity > 0 {
				printer.Status(MsgNamedCount, result.Named)
				printer.Status(MsgSeed, result.Seed)
				printer.Status(MsgRunID, result.Sector.RunID.String())
				printer.Block(style.RenderStarportSummary(result.Sector.StarportCounts(), outputMode(cmd)))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("subsector", "L", "", MsgFlagSubsector)
	flags.StringP("density", "d", "", MsgFlagDensity)
	flags.StringP("maturity", "m", "", MsgFlagMaturity)
	flags.StringP("allegiance", "a", "", MsgFlagAllegiance)
	flags.StringP("sector", "s", "", MsgFlagSector)
	flags.StringP("path", "p", "", MsgFlagNamesPath)
	flags.StringP("format", "o", "", MsgFlagFormat)
	flags.StringP("output", "u", "", MsgFlagOutput)
	flags.Uint64("seed", 0, MsgFlagSeed)

	_ = cmd.RegisterFlagCompletionFunc("maturity", cobra.FixedCompletions(
		[]string{"backwater", "frontier", "mature", "cluster"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("density", cobra.FixedCompletions(
		[]string{"dense", "scattered", "sparse", "rift", "zero"}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"1", "2", "3", "4", "5", "6", "7"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// flagKeys maps generate flags to configuration keys.
var flagKeys = map[string]string{
	"subsector":  "sector.subsector",
	"density":    "generate.density",
	"maturity":   "generate.maturity",
	"allegiance": "sector.allegiance",
	"sector":     "sector.name",
	"path":       "names.path",
	"format":     "output.format",
	"output":     "output.file",
	"seed":       "generate.seed",
}

// changedFlags collects the flags the user actually set, keyed for config.
func changedFlags(cmd *cobra.Command) map[string]interface{} {
	values := make(map[string]interface{})
	for name, key := range flagKeys {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if name == "seed" {
			seed, _ := cmd.Flags().GetUint64(name)
			values[key] = seed
			continue
		}
		value, _ := cmd.Flags().GetString(name)
		values[key] = value
	}
	return values
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		Short:   MsgFormatsShort,
		Long:    MsgFormatsLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			result := commands.ListFormats()
			fmt.Fprint(cmd.OutOrStdout(), style.RenderMarkdown(result.Markdown(), outputMode(cmd)))
			return nil
		},
	}
}

func newGenConfigCmd(global *globalOptions) *cobra.Command {
	var resolved, write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := commands.GenConfigOptions{Resolved: resolved, Write: write}
			if resolved {
				cfg, err := config.Load(config.LoadOptions{ConfigPath: global.configPath})
				if err != nil {
					return err
				}
				opts.Config = cfg
			}

			result, err := commands.GenConfig(opts)
			if err != nil {
				return err
			}

			if !write {
				fmt.Fprintln(cmd.OutOrStdout(), result.ConfigContent)
				return nil
			}

			printer := style.NewPrinter(cmd.OutOrStdout(), outputMode(cmd))
			if len(result.FilesWritten) == 0 {
				printer.Block(MsgConfigExists)
				return nil
			}
			for _, path := range result.FilesWritten {
				printer.Status(MsgConfigSaved, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&resolved, "resolved", false, MsgFlagResolved)
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
