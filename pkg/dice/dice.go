// Package dice provides the uniform random rolls every generation rule is
// built from. A Dice value owns its random stream; callers pass it explicitly
// rather than sharing a package-level source.
package dice

import (
	"math/rand/v2"
	"time"
)

// Roller is the dice primitive consumed by the generator and the grid walker.
type Roller interface {
	// Roll returns a uniform integer in [1, sides].
	Roll(sides int) int
}

// Dice is a Roller backed by a PCG stream.
type Dice struct {
	rng  *rand.Rand
	seed uint64
}

// New returns Dice whose stream is fully determined by seed.
func New(seed uint64) *Dice {
	return &Dice{
		rng:  rand.New(rand.NewPCG(seed, 0)),
		seed: seed,
	}
}

// NewRandom seeds from the wall clock, so every run differs.
func NewRandom() *Dice {
	return New(uint64(time.Now().UnixNano()))
}

// Seed reports the seed the stream was created with.
func (d *Dice) Seed() uint64 {
	return d.seed
}

// Roll returns a uniform integer in [1, sides]. Dice with fewer than one side
// roll 0.
func (d *Dice) Roll(sides int) int {
	if sides < 1 {
		return 0
	}
	return d.rng.IntN(sides) + 1
}

// RollN sums count independent rolls of a sides-sided die. A count below one
// sums to 0.
func RollN(r Roller, count, sides int) int {
	total := 0
	for i := 0; i < count; i++ {
		total += r.Roll(sides)
	}
	return total
}

// D6 rolls one six-sided die.
func D6(r Roller) int {
	return r.Roll(6)
}

// D2 rolls two six-sided dice and sums them.
func D2(r Roller) int {
	return RollN(r, 2, 6)
}
