// Package commands provides the command implementations behind the gensec
// CLI.
//
// Each command is implemented in its own subdirectory:
//   - generate/  - Generate command
//   - formats/   - ListFormats command
//   - genconfig/ - GenConfig command
//
// This file re-exports the command functions so the CLI depends on one
// package.
package commands

import (
	"github.com/forthekill/GenSec4/pkg/commands/formats"
	"github.com/forthekill/GenSec4/pkg/commands/genconfig"
	"github.com/forthekill/GenSec4/pkg/commands/generate"
)

// Generate walks the grid and writes one sector file.
type GenerateOptions = generate.GenerateOptions

// GenerateResult summarizes a finished run.
type GenerateResult = generate.Result

func Generate(opts GenerateOptions) (*GenerateResult, error) {
	return generate.Generate(opts)
}

// FormatsResult lists the output layouts.
type FormatsResult = formats.Result

func ListFormats() *FormatsResult {
	return formats.ListFormats()
}

// GenConfig outputs or writes a configuration file.
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfigResult holds the generated configuration.
type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
