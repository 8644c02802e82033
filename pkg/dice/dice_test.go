package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRoller struct {
	calls int
	value int
}

func (f *fixedRoller) Roll(sides int) int {
	f.calls++
	return f.value
}

func TestRollRange(t *testing.T) {
	d := New(42)
	for _, sides := range []int{1, 5, 6, 100} {
		seen := make(map[int]bool)
		for i := 0; i < 2000; i++ {
			v := d.Roll(sides)
			assert.GreaterOrEqual(t, v, 1)
			assert.LessOrEqual(t, v, sides)
			seen[v] = true
		}
		assert.Len(t, seen, sides, "every face of a d%d should come up", sides)
	}
}

func TestRollZeroSides(t *testing.T) {
	assert.Equal(t, 0, New(1).Roll(0))
	assert.Equal(t, 0, New(1).Roll(-3))
}

func TestRollN(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		wantSum   int
		wantCalls int
	}{
		{"no dice", 0, 0, 0},
		{"negative count", -2, 0, 0},
		{"one die", 1, 4, 1},
		{"three dice", 3, 12, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fixedRoller{value: 4}
			assert.Equal(t, tt.wantSum, RollN(r, tt.count, 6))
			assert.Equal(t, tt.wantCalls, r.calls)
		})
	}
}

func TestD2Range(t *testing.T) {
	d := New(7)
	for i := 0; i < 1000; i++ {
		v := D2(d)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 12)
	}
}

func TestSeededStreamsRepeat(t *testing.T) {
	a, b := New(1910), New(1910)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Roll(100), b.Roll(100))
	}
	assert.Equal(t, uint64(1910), a.Seed())
}
