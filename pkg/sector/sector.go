// Package sector holds the ordered collection of systems produced by one
// generation run, together with the parameters that produced it.
package sector

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/forthekill/GenSec4/pkg/types"
)

// Meta describes a generation run.
type Meta struct {
	Name       string
	Allegiance string
	Maturity   types.Maturity
	Density    int
	Bounds     types.Bounds
	Seed       uint64
}

// Sector is an append-only list of systems in walk order.
type Sector struct {
	Meta
	RunID ulid.ULID

	systems []types.System
}

// New starts an empty sector and stamps it with a fresh run identifier.
func New(meta Meta) *Sector {
	return &Sector{
		Meta:  meta,
		RunID: ulid.MustNew(ulid.Timestamp(time.Now()), ulid.DefaultEntropy()),
	}
}

// Add appends a system.
func (s *Sector) Add(sys types.System) {
	s.systems = append(s.systems, sys)
}

// Systems returns the records in walk order. The slice is a copy.
func (s *Sector) Systems() []types.System {
	out := make([]types.System, len(s.systems))
	copy(out, s.systems)
	return out
}

// Len is the number of systems.
func (s *Sector) Len() int {
	return len(s.systems)
}

// StarportCount pairs a starport class with how many systems have it.
type StarportCount struct {
	Starport types.Starport
	Count    int
}

// StarportCounts tallies systems per starport class, best class first. Every
// class appears, including those with no systems.
func (s *Sector) StarportCounts() []StarportCount {
	tally := make(map[types.Starport]int)
	for _, sys := range s.systems {
		tally[sys.Starport]++
	}

	counts := make([]StarportCount, 0, len(types.Starports))
	for _, port := range types.Starports {
		counts = append(counts, StarportCount{Starport: port, Count: tally[port]})
	}
	return counts
}

// Named counts systems that carry a name other than the default.
func (s *Sector) Named() int {
	n := 0
	for _, sys := range s.systems {
		if sys.Name != types.UnnamedSystem {
			n++
		}
	}
	return n
}
