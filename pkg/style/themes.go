package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/forthekill/GenSec4/pkg/types"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#007ACC", // Blue
		Dark:  "#3D9EFF",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745", // Green
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545", // Red
		Dark:  "#FF6B7D",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#FFC107", // Amber
		Dark:  "#FFD54F",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#212529",
		Dark:  "#F8F9FA",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#ADB5BD",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEE2E6",
		Dark:  "#3B3C4F",
	}
)

// Starport class colors, best to worst.
var starportColors = map[types.Starport]lipgloss.AdaptiveColor{
	types.StarportA: {Light: "#10B981", Dark: "#34D399"},
	types.StarportB: {Light: "#0EA5E9", Dark: "#38BDF8"},
	types.StarportC: {Light: "#8B5CF6", Dark: "#A78BFA"},
	types.StarportD: {Light: "#F59E0B", Dark: "#FBBF24"},
	types.StarportE: {Light: "#6C757D", Dark: "#ADB5BD"},
	types.StarportX: {Light: "#DC3545", Dark: "#FF6B7D"},
}
