package caesar

import "unicode/utf8"

const (
	// AlphabetSize is the number of letters in the Latin alphabet.
	AlphabetSize = 26
	// MinShift is the smallest shift a user may choose.
	MinShift Shift = 1
	// MaxShift is the largest shift a user may choose.
	MaxShift Shift = AlphabetSize - 1
)

// Shift is the number of alphabet positions every letter is moved by.
type Shift int

// Valid reports whether s lies in [MinShift, MaxShift].
func (s Shift) Valid() bool {
	return s >= MinShift && s <= MaxShift
}

// Direction selects whether letters move forward or backward.
type Direction int

const (
	Encoding Direction = iota
	Decoding
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Encoding:
		return "encode"
	case Decoding:
		return "decode"
	}
	return "unknown"
}

// Candidate is one row of a brute-force listing.
type Candidate struct {
	Shift Shift
	Text  string
}

// ShiftRune rotates r by amount positions in direction dir. Upper- and
// lower-case ASCII letters stay in their case; any other rune is returned
// unchanged.
func ShiftRune(r rune, amount int, dir Direction) rune {
	var base rune
	switch {
	case r >= 'A' && r <= 'Z':
		base = 'A'
	case r >= 'a' && r <= 'z':
		base = 'a'
	default:
		return r
	}

	if dir == Decoding {
		amount = -amount
	}

	return base + rune(floorMod(int(r-base)+amount, AlphabetSize))
}

// floorMod returns a mod n in [0, n). Go's % truncates toward zero, so a
// negative remainder is moved back into range.
func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// Transform applies ShiftRune to every ASCII byte of message and returns the
// result as a new string. Bytes at or above utf8.RuneSelf, which cover every
// multi-byte sequence and any invalid UTF-8, are copied unchanged.
func Transform(message string, amount int, dir Direction) string {
	buf := []byte(message)
	for i, b := range buf {
		if b < utf8.RuneSelf {
			buf[i] = byte(ShiftRune(rune(b), amount, dir))
		}
	}
	return string(buf)
}

// Encode shifts every letter of message forward by amount.
func Encode(message string, amount int) string {
	return Transform(message, amount, Encoding)
}

// Decode shifts every letter of message backward by amount. It is the exact
// inverse of Encode for the same amount.
func Decode(message string, amount int) string {
	return Transform(message, amount, Decoding)
}

// BruteForce transforms message with every shift from MinShift to MaxShift,
// in ascending order.
func BruteForce(message string, dir Direction) []Candidate {
	out := make([]Candidate, 0, MaxShift)
	for s := MinShift; s <= MaxShift; s++ {
		out = append(out, Candidate{Shift: s, Text: Transform(message, int(s), dir)})
	}
	return out
}
