package types

// Starport is the class of a world's orbital facilities.
type Starport byte

const (
	StarportA Starport = 'A'
	StarportB Starport = 'B'
	StarportC Starport = 'C'
	StarportD Starport = 'D'
	StarportE Starport = 'E'
	StarportX Starport = 'X'
)

// Starports lists every class, best first.
var Starports = []Starport{StarportA, StarportB, StarportC, StarportD, StarportE, StarportX}

// Valid reports whether s is one of A-E or X.
func (s Starport) Valid() bool {
	switch s {
	case StarportA, StarportB, StarportC, StarportD, StarportE, StarportX:
		return true
	}
	return false
}

// String returns the class letter.
func (s Starport) String() string {
	return string(rune(s))
}

// Base is the single base code a world carries.
type Base byte

const (
	BaseNone            Base = ' '
	BaseNavalScout      Base = 'A'
	BaseNavalWaystation Base = 'B'
	BaseDepot           Base = 'D'
	BaseMilitary        Base = 'M'
	BaseNaval           Base = 'N'
	BaseScout           Base = 'S'
	BaseWaystation      Base = 'W'
)

// Valid reports whether b is a known base code, blank included.
func (b Base) Valid() bool {
	switch b {
	case BaseNone, BaseNavalScout, BaseNavalWaystation, BaseDepot,
		BaseMilitary, BaseNaval, BaseScout, BaseWaystation:
		return true
	}
	return false
}

// String returns the base letter, or a single space for none.
func (b Base) String() string {
	if b == 0 {
		return string(rune(BaseNone))
	}
	return string(rune(b))
}

// Zone is a travel advisory.
type Zone byte

const (
	ZoneNone  Zone = ' '
	ZoneAmber Zone = 'A'
	ZoneRed   Zone = 'R'
)

// String returns the zone letter, or a single space for none.
func (z Zone) String() string {
	if z == 0 {
		return string(rune(ZoneNone))
	}
	return string(rune(z))
}
