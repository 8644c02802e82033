package style

import (
	"fmt"
	"strings"

	"github.com/forthekill/GenSec4/pkg/sector"
)

const barWidth = 20

// RenderStarportSummary renders one row per starport class with its count,
// share of the total and a proportional bar.
func RenderStarportSummary(counts []sector.StarportCount, mode Mode) string {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	var b strings.Builder
	title := "Starports"
	if mode == ModeTerminal {
		title = TitleStyle.Render(title)
	}
	b.WriteString(title)

	for _, c := range counts {
		share := 0.0
		if total > 0 {
			share = float64(c.Count) / float64(total)
		}
		bar := strings.Repeat("#", int(share*barWidth+0.5))

		letter := c.Starport.String()
		if mode == ModeTerminal {
			letter = StarportStyle(c.Starport).Render(letter)
			bar = StarportStyle(c.Starport).Render(bar)
		}
		fmt.Fprintf(&b, "\n%s %5d %5.1f%% %s", letter, c.Count, share*100, bar)
	}

	if mode == ModeTerminal {
		return BoxStyle.Render(b.String())
	}
	return b.String()
}
