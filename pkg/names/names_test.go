package names

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthekill/GenSec4/pkg/errors"
	"github.com/forthekill/GenSec4/pkg/testutil"
	"github.com/forthekill/GenSec4/pkg/types"
)

func TestParseText(t *testing.T) {
	input := `Rhylanor 1910
# comment line

Regina 1910
Lunion Prime 2124
Solo
Bad hexagon
Ruie 0102
`
	got, err := ParseText(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []Override{
		{Name: "Rhylanor", Hex: 1910},
		{Name: "Regina", Hex: 1910},
		{Name: "Lunion Prime", Hex: 2124},
		{Name: "Ruie", Hex: 102},
	}, got)
	assert.Equal(t, types.Hex{Col: 1, Row: 2}, got[3].Coordinate())
}

func TestParseYAML(t *testing.T) {
	input := `
- name: Rhylanor
  hex: 1910
- name: Lunion Prime
  hex: 2124
`
	got, err := ParseYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Override{
		{Name: "Rhylanor", Hex: 1910},
		{Name: "Lunion Prime", Hex: 2124},
	}, got)

	empty, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseYAML(strings.NewReader("name: [unterminated"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNamesParse))
}

func TestLoad(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		got, err := Load(filepath.Join(t.TempDir(), "Spinward_names.txt"))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("text file", func(t *testing.T) {
		path := testutil.CreateFile(t, t.TempDir(), "Spinward_names.txt", "Rhylanor 1910\n")
		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []Override{{Name: "Rhylanor", Hex: 1910}}, got)
	})

	t.Run("yaml file", func(t *testing.T) {
		path := testutil.CreateFile(t, t.TempDir(), "Spinward_names.yaml", "- {name: Rhylanor, hex: 1910}\n")
		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []Override{{Name: "Rhylanor", Hex: 1910}}, got)
	})
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, filepath.Join(dir, "Spinward_names.txt"), Resolve(dir, "Spinward"))

	yamlPath := testutil.CreateFile(t, dir, "Spinward_names.yaml", "[]\n")
	assert.Equal(t, yamlPath, Resolve(dir, "Spinward"))

	txtPath := testutil.CreateFile(t, dir, "Spinward_names.txt", "")
	assert.Equal(t, txtPath, Resolve(dir, "Spinward"))

	custom := testutil.CreateFile(t, dir, "custom.txt", "")
	assert.Equal(t, custom, Resolve(custom, "Spinward"))
}

func TestLookup(t *testing.T) {
	l := NewLookup([]Override{
		{Name: "Regina", Hex: 1910},
		{Name: "Rhylanor", Hex: 1910},
		{Name: "Ruie", Hex: 102},
	})

	name, ok := l.Name(types.Hex{Col: 19, Row: 10})
	assert.True(t, ok)
	assert.Equal(t, "Regina", name, "first entry for a hex wins")

	_, ok = l.Name(types.Hex{Col: 5, Row: 5})
	assert.False(t, ok)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []types.Hex{{Col: 1, Row: 2}, {Col: 19, Row: 10}}, l.Hexes())

	var none *Lookup
	_, ok = none.Name(types.Hex{Col: 1, Row: 1})
	assert.False(t, ok)
	assert.Zero(t, none.Len())
}
