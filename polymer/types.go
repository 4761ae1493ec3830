package polymer

import (
	"errors"
	"math/bits"
)

var (
	// ErrTemplate is returned for a missing template line.
	ErrTemplate = errors.New("polymer: missing template")
	// ErrElement is returned for an element outside A–Z.
	ErrElement = errors.New("polymer: element must be A-Z")
	// ErrRule is returned for a rule not of the form "AB -> C".
	ErrRule = errors.New("polymer: malformed rule")
	// ErrConflict is returned when one pair has two different insertions.
	ErrConflict = errors.New("polymer: conflicting rules")
	// ErrOverflow is returned when a count no longer fits in a uint64.
	ErrOverflow = errors.New("polymer: count overflows uint64")
)

// Element is a single element letter, 'A' to 'Z'.
type Element byte

// ParseElement validates a single-letter element.
func ParseElement(c byte) (Element, error) {
	if c < 'A' || c > 'Z' {
		return 0, ErrElement
	}

	return Element(c), nil
}

// String returns the element letter.
func (e Element) String() string { return string(rune(e)) }

func (e Element) index() int { return int(e - 'A') }

// Pair is two adjacent elements, left then right.
type Pair [2]Element

// String renders the pair as "AB".
func (p Pair) String() string { return p[0].String() + p[1].String() }

// Tally counts elements; index 0 is 'A'.
type Tally [26]uint64

// Of returns the count of e.
func (t *Tally) Of(e Element) uint64 { return t[e.index()] }

// add sums o into t. On overflow t is left partially updated.
func (t *Tally) add(o *Tally) error {
	for i := range t {
		var carry uint64
		t[i], carry = bits.Add64(t[i], o[i], 0)
		if carry != 0 {
			return ErrOverflow
		}
	}

	return nil
}

// Total returns the number of elements counted, or ErrOverflow when the sum
// does not fit in a uint64.
func (t *Tally) Total() (uint64, error) {
	var n, carry uint64
	for _, c := range t {
		n, carry = bits.Add64(n, c, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}

	return n, nil
}

// MinMax returns the least and most common elements among those counted at
// least once. Ties go to the alphabetically first element. ok is false for an
// empty tally.
func (t *Tally) MinMax() (least, most Element, ok bool) {
	for i, c := range t {
		if c == 0 {
			continue
		}
		e := Element('A' + i)
		if !ok {
			least, most, ok = e, e, true
			continue
		}
		if c < t[least.index()] {
			least = e
		}
		if c > t[most.index()] {
			most = e
		}
	}

	return least, most, ok
}

type memoKey struct {
	pair  Pair
	steps int
}
