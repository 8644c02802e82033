// Package genconfig implements the gen-config command.
package genconfig

import (
	"os"
	"path/filepath"

	"github.com/forthekill/GenSec4/pkg/config"
	"github.com/forthekill/GenSec4/pkg/errors"
	"github.com/forthekill/GenSec4/pkg/logging"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	// Resolved prints the effective configuration instead of the
	// commented defaults. Config is required when set.
	Resolved bool
	Config   *config.Config

	// Write saves the content to Path, or to the default user config
	// file when Path is empty. Existing files are left alone.
	Write bool
	Path  string
}

// GenConfigResult holds the generated content and any file written.
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig outputs or writes a configuration file
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	content := config.GenerateConfigContent()
	if opts.Resolved {
		if opts.Config == nil {
			return nil, errors.New(errors.ErrInvalidInput, "resolved output needs a loaded configuration")
		}
		resolved, err := config.ResolvedConfigContent(opts.Config)
		if err != nil {
			return nil, err
		}
		content = resolved
	}

	result := &GenConfigResult{
		ConfigContent: content,
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Bool("resolved", opts.Resolved).Msg("Outputting config to stdout")
		return result, nil
	}

	targetPath := opts.Path
	if targetPath == "" {
		targetPath = config.DefaultConfigPath()
	}

	dir := filepath.Dir(targetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(targetPath, []byte(content), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
