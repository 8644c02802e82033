package types

// UnnamedSystem is the name given to worlds without an override.
const UnnamedSystem = "Unnamed"

// Clamp ranges for derived UWP values.
const (
	MaxAtmosphere    = 15
	MaxHydrographics = 10
	MaxGovernment    = 15
	MaxLawLevel      = 20
	MaxTechLevel     = 16
)

// System is one generated star system.
type System struct {
	Name string
	Hex  Hex

	Starport      Starport
	Size          int
	Atmosphere    int
	Hydrographics int
	Population    int
	Government    int
	LawLevel      int
	TechLevel     int

	Base       Base
	TradeCodes TradeCodes

	PopMultiplier int
	Belts         int
	GasGiants     int

	Allegiance string
	Zone       Zone

	// Reserved; generation never fills these.
	Stellar   string
	Satellite string
	GasGiant  string
}

// UWP renders the Universal World Profile, e.g. "A867974-D".
func (s System) UWP() string {
	return string([]byte{
		byte(s.Starport),
		HexChar(s.Size),
		HexChar(s.Atmosphere),
		HexChar(s.Hydrographics),
		HexChar(s.Population),
		HexChar(s.Government),
		HexChar(s.LawLevel),
		'-',
		HexChar(s.TechLevel),
	})
}

// PBG packs the population multiplier, belts and gas giants into one
// three-digit code.
func (s System) PBG() int {
	return s.PopMultiplier*100 + s.Belts*10 + s.GasGiants
}
