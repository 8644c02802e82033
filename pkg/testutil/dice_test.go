package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedRoller(t *testing.T) {
	r := NewScriptedRoller(Faces(TwoD6(9), []int{4})...)

	assert.Equal(t, 6, r.Roll(6))
	assert.Equal(t, 3, r.Roll(6))
	assert.Equal(t, 4, r.Roll(5))
	assert.Equal(t, 0, r.Remaining())
	assert.Equal(t, 1, r.Roll(100))
	assert.Equal(t, []int{6, 6, 5, 100}, r.Sides)
}

func TestTwoD6(t *testing.T) {
	for total := 2; total <= 12; total++ {
		faces := TwoD6(total)
		assert.Len(t, faces, 2)
		assert.Equal(t, total, faces[0]+faces[1])
		for _, f := range faces {
			assert.GreaterOrEqual(t, f, 1)
			assert.LessOrEqual(t, f, 6)
		}
	}
}

func TestConstantRoller(t *testing.T) {
	assert.Equal(t, 6, ConstantRoller(6).Roll(6))
	assert.Equal(t, 5, ConstantRoller(6).Roll(5))
	assert.Equal(t, 1, ConstantRoller(1).Roll(100))
}
