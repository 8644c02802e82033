package types

import (
	"strings"

	"github.com/forthekill/GenSec4/pkg/errors"
)

// Subsector block size. A sector is four subsectors across and four down,
// lettered A-P in reading order.
const (
	SubsectorColumns = 8
	SubsectorRows    = 10
)

// Bounds is an inclusive rectangle of hexes.
type Bounds struct {
	ColStart, ColEnd int
	RowStart, RowEnd int
}

// SectorBounds covers the full 32x40 grid.
func SectorBounds() Bounds {
	return Bounds{ColStart: 1, ColEnd: SectorColumns, RowStart: 1, RowEnd: SectorRows}
}

// SubsectorBounds returns the 8x10 block for letter A-P. An empty letter
// selects the whole sector.
func SubsectorBounds(letter string) (Bounds, error) {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if letter == "" {
		return SectorBounds(), nil
	}
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'P' {
		return SectorBounds(), errors.Newf(errors.ErrSubsectorInvalid, "subsector must be a letter A-P, got %q", letter).
			WithDetail("subsector", letter)
	}

	idx := int(letter[0] - 'A')
	colStart := (idx%4)*SubsectorColumns + 1
	rowStart := (idx/4)*SubsectorRows + 1
	return Bounds{
		ColStart: colStart,
		ColEnd:   colStart + SubsectorColumns - 1,
		RowStart: rowStart,
		RowEnd:   rowStart + SubsectorRows - 1,
	}, nil
}

// Contains reports whether h lies inside the bounds.
func (b Bounds) Contains(h Hex) bool {
	return h.Col >= b.ColStart && h.Col <= b.ColEnd && h.Row >= b.RowStart && h.Row <= b.RowEnd
}

// Columns is the bounds width in hexes.
func (b Bounds) Columns() int {
	return b.ColEnd - b.ColStart + 1
}

// Rows is the bounds height in hexes.
func (b Bounds) Rows() int {
	return b.RowEnd - b.RowStart + 1
}

// Size is the number of hexes inside the bounds.
func (b Bounds) Size() int {
	return b.Columns() * b.Rows()
}

// String renders the corner hexes, e.g. "0101-3240".
func (b Bounds) String() string {
	return Hex{Col: b.ColStart, Row: b.RowStart}.String() + "-" + Hex{Col: b.ColEnd, Row: b.RowEnd}.String()
}
