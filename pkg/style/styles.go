package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/forthekill/GenSec4/pkg/types"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// StarportStyle colors a starport class letter.
func StarportStyle(port types.Starport) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	if color, ok := starportColors[port]; ok {
		style = style.Foreground(color)
	}
	return style
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
