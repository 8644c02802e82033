package formats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFormats(t *testing.T) {
	result := ListFormats()
	require.Len(t, result.Formats, 7)

	first := result.Formats[0]
	assert.Equal(t, 1, first.Selector)
	assert.Equal(t, "1.0", first.Version)
	assert.Equal(t, ".sec", first.Extension)
	assert.False(t, first.Default)

	var defaults []int
	for _, info := range result.Formats {
		if info.Default {
			defaults = append(defaults, info.Selector)
		}
	}
	assert.Equal(t, []int{6}, defaults)
	assert.Equal(t, ".xml", result.Formats[6].Extension)
}

func TestMarkdown(t *testing.T) {
	md := ListFormats().Markdown()

	assert.True(t, strings.HasPrefix(md, "# Output formats\n"))
	assert.Contains(t, md, "| 6 | 2.5 | .sec | Extended names and trade codes (default) |")
	assert.Contains(t, md, "| 7 | 3.0 | .xml | Sector XML |")
	assert.Equal(t, 9, strings.Count(md, "\n|"))
}
