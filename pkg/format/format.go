// Package format serializes a generated sector to the fixed-column sector
// file layouts read by other sector tools.
package format

import (
	"strconv"
	"strings"
)

// Format selects an output layout. The numbers are the ones accepted on the
// command line.
type Format int

const (
	V10  Format = 1
	V20  Format = 2
	V21  Format = 3
	V22  Format = 4
	V23  Format = 5
	V25  Format = 6
	XML3 Format = 7
)

// Default is the layout used when no valid selector is given.
const Default = V25

// All lists every supported format in selector order.
var All = []Format{V10, V20, V21, V22, V23, V25, XML3}

var versions = map[Format]string{
	V10:  "1.0",
	V20:  "2.0",
	V21:  "2.1",
	V22:  "2.2",
	V23:  "2.3",
	V25:  "2.5",
	XML3: "3.0",
}

var descriptions = map[Format]string{
	V10:  "Original sector format",
	V20:  "Galactic 2.0 / Heaven & Earth",
	V21:  "MegaTraveller sector format",
	V22:  "SEC format used by Galactic and TravMap",
	V23:  "Travellermap sector format",
	V25:  "Extended names and trade codes",
	XML3: "Sector XML",
}

// FromInt maps a selector to a Format; anything unknown becomes Default.
func FromInt(n int) Format {
	f := Format(n)
	if _, ok := versions[f]; ok {
		return f
	}
	return Default
}

// Parse reads a selector from text. Non-numeric input yields Default.
func Parse(s string) Format {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Default
	}
	return FromInt(n)
}

// Valid reports whether f names a supported layout.
func (f Format) Valid() bool {
	_, ok := versions[f]
	return ok
}

// Version is the value written to the "#Version:" header.
func (f Format) Version() string {
	return versions[FromInt(int(f))]
}

// Description is a short human-readable label.
func (f Format) Description() string {
	return descriptions[FromInt(int(f))]
}

// Extension is the conventional output file extension, dot included.
func (f Format) Extension() string {
	if FromInt(int(f)) == XML3 {
		return ".xml"
	}
	return ".sec"
}

// Header is the first line of a text sector file.
func (f Format) Header() string {
	return "#Version: " + f.Version()
}

func (f Format) String() string {
	return strconv.Itoa(int(FromInt(int(f))))
}
