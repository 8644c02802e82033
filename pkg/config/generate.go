package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/forthekill/GenSec4/pkg/errors"
)

// GenerateConfigContent returns the default configuration with every value
// commented out, ready to be saved as a user config file.
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultsContent())
}

// ResolvedConfigContent renders the effective configuration as TOML.
func ResolvedConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(data), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines and existing comments as-is
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [sector], [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
