package types

import "fmt"

// Sector grid extent.
const (
	SectorColumns = 32
	SectorRows    = 40
)

// Hex is one cell of the sector grid.
type Hex struct {
	Col int
	Row int
}

// HexFromCode splits a packed column*100+row code.
func HexFromCode(code int) Hex {
	return Hex{Col: code / 100, Row: code % 100}
}

// Code packs the hex as column*100+row.
func (h Hex) Code() int {
	return h.Col*100 + h.Row
}

// String renders the packed code zero-padded to four digits ("0101").
func (h Hex) String() string {
	return fmt.Sprintf("%04d", h.Code())
}

// InSector reports whether the hex lies on the full 32x40 grid.
func (h Hex) InSector() bool {
	return h.Col >= 1 && h.Col <= SectorColumns && h.Row >= 1 && h.Row <= SectorRows
}
