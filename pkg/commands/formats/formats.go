// Package formats implements the formats command, which lists the sector
// file layouts gensec can write.
package formats

import (
	"fmt"
	"strings"

	"github.com/forthekill/GenSec4/pkg/format"
	"github.com/forthekill/GenSec4/pkg/logging"
)

// Info describes one layout.
type Info struct {
	Selector    int
	Version     string
	Description string
	Extension   string
	Default     bool
}

// Result is the formats listing.
type Result struct {
	Formats []Info
}

// ListFormats returns every supported layout in selector order.
func ListFormats() *Result {
	logger := logging.GetLogger("commands.formats")
	logger.Debug().Msg("Executing command")

	result := &Result{Formats: make([]Info, 0, len(format.All))}
	for _, f := range format.All {
		result.Formats = append(result.Formats, Info{
			Selector:    int(f),
			Version:     f.Version(),
			Description: f.Description(),
			Extension:   f.Extension(),
			Default:     f == format.Default,
		})
	}
	return result
}

// Markdown renders the listing as a markdown table.
func (r *Result) Markdown() string {
	var b strings.Builder
	b.WriteString("# Output formats\n\n")
	b.WriteString("| Format | Version | Extension | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, info := range r.Formats {
		desc := info.Description
		if info.Default {
			desc += " (default)"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", info.Selector, info.Version, info.Extension, desc)
	}
	b.WriteString("\nSelect a format with `gensec generate --format <n>`.\n")
	return b.String()
}
