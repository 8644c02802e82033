package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forthekill/GenSec4/pkg/errors"
)

func TestSubsectorBounds(t *testing.T) {
	tests := []struct {
		letter string
		want   string
	}{
		{"", "0101-3240"},
		{"A", "0101-0810"},
		{"b", "0901-1610"},
		{"D", "2501-3210"},
		{"E", "0111-0820"},
		{"J", "0921-1630"},
		{"P", "2531-3240"},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			b, err := SubsectorBounds(tt.letter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestSubsectorBounds_Invalid(t *testing.T) {
	for _, letter := range []string{"Q", "AB", "1"} {
		b, err := SubsectorBounds(letter)
		require.Error(t, err, letter)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubsectorInvalid), letter)
		assert.Equal(t, SectorBounds(), b)
	}
}

func TestBoundsGeometry(t *testing.T) {
	s := SectorBounds()
	assert.Equal(t, 1280, s.Size())
	assert.True(t, s.Contains(Hex{Col: 32, Row: 40}))
	assert.False(t, s.Contains(Hex{Col: 33, Row: 40}))

	sub, err := SubsectorBounds("F")
	require.NoError(t, err)
	assert.Equal(t, 8, sub.Columns())
	assert.Equal(t, 10, sub.Rows())
	assert.Equal(t, 80, sub.Size())
	assert.True(t, sub.Contains(Hex{Col: 9, Row: 11}))
	assert.False(t, sub.Contains(Hex{Col: 8, Row: 11}))
}
