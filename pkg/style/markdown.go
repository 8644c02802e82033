package style

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal with glamour. In ModeText,
// or if rendering fails, the markdown is returned unchanged.
func RenderMarkdown(content string, mode Mode) string {
	if mode != ModeTerminal {
		return content
	}

	renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
