package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/forthekill/GenSec4/pkg/types"
)

type field int

const (
	fieldName field = iota
	fieldHex
	fieldUWP
	fieldBase
	fieldCodes
	fieldZone
	fieldPBG
	fieldPBGDigit
	fieldAllegiance
	fieldStellar
)

// column is one field of a line and the literal text that follows it.
type column struct {
	field field
	width int
	after string
}

var layouts = map[Format][]column{
	V10: {
		{fieldHex, 4, " "},
		{fieldUWP, 9, "  "},
		{fieldBase, 1, " "},
		{fieldCodes, 14, " "},
		{fieldAllegiance, 2, " "},
		{fieldZone, 1, " "},
		{fieldPBGDigit, 1, " "},
	},
	V20: {
		{fieldName, 13, " "},
		{fieldHex, 4, " "},
		{fieldUWP, 9, "  "},
		{fieldBase, 1, " "},
		{fieldCodes, 14, "  "},
		{fieldZone, 1, "  "},
		{fieldPBG, 3, " "},
		{fieldAllegiance, 2, ""},
		{fieldStellar, 16, ""},
	},
	V21: {
		{fieldName, 14, ""},
		{fieldHex, 4, " "},
		{fieldUWP, 9, "  "},
		{fieldBase, 1, " "},
		{fieldCodes, 14, "  "},
		{fieldZone, 1, "  "},
		{fieldPBG, 3, " "},
		{fieldAllegiance, 2, ""},
		{fieldStellar, 16, ""},
	},
	V22: {
		{fieldHex, 4, "  "},
		{fieldName, 14, "  "},
		{fieldUWP, 9, "  "},
		{fieldCodes, 12, "  "},
		{fieldPBG, 3, "  "},
		{fieldBase, 1, "  "},
		{fieldAllegiance, 2, "  "},
		{fieldZone, 1, "     "},
		{fieldStellar, 20, ""},
	},
	V23: {
		{fieldName, 18, " "},
		{fieldHex, 4, " "},
		{fieldUWP, 9, " "},
		{fieldBase, 1, " "},
		{fieldCodes, 15, " "},
		{fieldPBG, 3, " "},
		{fieldAllegiance, 2, " "},
		{fieldZone, 1, ""},
	},
	V25: {
		{fieldName, 25, " "},
		{fieldHex, 4, " "},
		{fieldUWP, 9, " "},
		{fieldBase, 1, " "},
		{fieldCodes, 25, " "},
		{fieldZone, 1, " "},
		{fieldPBG, 3, " "},
		{fieldAllegiance, 2, ""},
	},
}

// Line renders one system in a fixed-column layout. XML3 has no line form and
// renders as Default.
func Line(sys types.System, f Format) string {
	cols, ok := layouts[f]
	if !ok {
		cols = layouts[Default]
	}

	var b strings.Builder
	for _, c := range cols {
		b.WriteString(render(sys, c))
		b.WriteString(c.after)
	}
	return b.String()
}

func render(sys types.System, c column) string {
	switch c.field {
	case fieldName:
		return left(sys.Name, c.width)
	case fieldHex:
		return zero(sys.Hex.Code(), c.width)
	case fieldUWP:
		return left(sys.UWP(), c.width)
	case fieldBase:
		return left(sys.Base.String(), c.width)
	case fieldCodes:
		return left(sys.TradeCodes.String(), c.width)
	case fieldZone:
		return left(sys.Zone.String(), c.width)
	case fieldPBG:
		return zero(sys.PBG(), c.width)
	case fieldPBGDigit:
		return zero(sys.PBG()%10, c.width)
	case fieldAllegiance:
		return left(sys.Allegiance, c.width)
	case fieldStellar:
		return left(sys.Stellar, c.width)
	}
	return strings.Repeat(" ", c.width)
}

// left pads s with spaces to width bytes, truncating anything longer. A cut
// never splits a multi-byte rune; the freed bytes are padded instead.
func left(s string, width int) string {
	if len(s) > width {
		cut := width
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// zero renders n zero-padded to width.
func zero(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
