package style

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Mode is how much styling output may carry.
type Mode int

const (
	// ModeText renders plain text without any styling
	ModeText Mode = iota
	// ModeTerminal renders rich terminal output with colors and styling
	ModeTerminal
)

// DetectMode determines the output mode from the environment and terminal capabilities
func DetectMode(output *os.File) Mode {
	if os.Getenv("NO_COLOR") != "" {
		return ModeText
	}

	// Piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return ModeText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return ModeText
	}

	return ModeTerminal
}
