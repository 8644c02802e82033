package types

// ehexDigits is the extended-hex alphabet: 0-9 then A-Z without I and O.
const ehexDigits = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// InvalidDigit is rendered for values outside the alphabet.
const InvalidDigit = '?'

// HexChar renders a UWP value as a single extended-hex digit. Values from 0
// to 34 are accepted; 34 sits past the final symbol and renders as its last
// digit 'Z'. Anything else renders as '?'.
func HexChar(i int) byte {
	if i < 0 || i > 34 {
		return InvalidDigit
	}
	if i >= len(ehexDigits) {
		return ehexDigits[len(ehexDigits)-1]
	}
	return ehexDigits[i]
}
