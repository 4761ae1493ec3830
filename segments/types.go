package segments

import (
	"errors"
	"math/bits"
	"strings"
)

var (
	// ErrSeparator is returned for an entry line without a "|".
	ErrSeparator = errors.New("segments: missing | separator")
	// ErrWire is returned for a pattern with a character outside a–g or a repeated wire.
	ErrWire = errors.New("segments: invalid wire")
	// ErrContradiction is returned when the patterns admit no wiring.
	ErrContradiction = errors.New("segments: contradictory patterns")
	// ErrAmbiguous is returned when the patterns admit more than one wiring.
	ErrAmbiguous = errors.New("segments: ambiguous patterns")
	// ErrUnknownDigit is returned when an output pattern maps to no digit.
	ErrUnknownDigit = errors.New("segments: pattern is not a digit")
)

// NumSegments is the number of segments, and wires, in a display.
const NumSegments = 7

// Pattern is a set of lit wires (or segments); bit i stands for 'a'+i.
type Pattern uint8

// All is the pattern with every wire lit.
const All Pattern = 1<<NumSegments - 1

// ParsePattern reads a pattern such as "cfbegad".
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return 0, ErrWire
	}
	var p Pattern
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'g' {
			return 0, ErrWire
		}
		bit := Pattern(1) << (c - 'a')
		if p&bit != 0 {
			return 0, ErrWire
		}
		p |= bit
	}

	return p, nil
}

// Len returns the number of lit wires.
func (p Pattern) Len() int { return bits.OnesCount8(uint8(p)) }

// String renders the lit wires in alphabetical order.
func (p Pattern) String() string {
	var sb strings.Builder
	for i := 0; i < NumSegments; i++ {
		if p&(1<<i) != 0 {
			sb.WriteByte(byte('a' + i))
		}
	}

	return sb.String()
}

// Entry is one display: its unique signal patterns and its output patterns.
type Entry struct {
	Patterns []Pattern
	Outputs  []Pattern
}

// Wiring maps each canonical segment (index 0 = a … 6 = g) to the single
// wire that drives it.
type Wiring [NumSegments]Pattern

// digits holds the canonical segments of 0…9.
var digits = [10]Pattern{
	0b1110111, // 0: abc efg
	0b0100100, // 1: c  f
	0b1011101, // 2: a cde g
	0b1101101, // 3: a cd fg
	0b0101110, // 4: bcd f
	0b1101011, // 5: ab d fg
	0b1111011, // 6: ab defg
	0b0100101, // 7: a c  f
	0b1111111, // 8: abcdefg
	0b1101111, // 9: abcd fg
}

// digitOf maps a canonical segment set back to its digit, -1 if none.
var digitOf = func() (m [All + 1]int8) {
	for i := range m {
		m[i] = -1
	}
	for d, p := range digits {
		m[p] = int8(d)
	}

	return m
}()
