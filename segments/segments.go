package segments

import (
	"fmt"

	"github.com/katalvlaran/aoc2021/parse"
)

// ParseEntries reads one "<ten patterns> | <outputs>" entry per line.
func ParseEntries(s string) ([]Entry, error) {
	return parse.Records(s, func(f []string) (Entry, error) {
		sep := -1
		for i, w := range f {
			if w == "|" {
				sep = i
				break
			}
		}
		if sep < 0 {
			return Entry{}, ErrSeparator
		}
		var (
			e   Entry
			err error
		)
		if e.Patterns, err = parsePatterns(f[:sep]); err != nil {
			return Entry{}, err
		}
		if e.Outputs, err = parsePatterns(f[sep+1:]); err != nil {
			return Entry{}, err
		}

		return e, nil
	})
}

func parsePatterns(words []string) ([]Pattern, error) {
	out := make([]Pattern, len(words))
	for i, w := range words {
		p, err := ParsePattern(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, w)
		}
		out[i] = p
	}

	return out, nil
}

// CountUnique tallies, over all outputs, the digits recognisable by length
// alone: 1, 4, 7 and 8. Other indexes stay zero.
func CountUnique(entries []Entry) [10]int {
	var counts [10]int
	for _, e := range entries {
		for _, p := range e.Outputs {
			switch p.Len() {
			case 2:
				counts[1]++
			case 3:
				counts[7]++
			case 4:
				counts[4]++
			case 7:
				counts[8]++
			}
		}
	}

	return counts
}

// lengthClasses groups the canonical digits by segment count.
var lengthClasses = func() (c [NumSegments + 1][]Pattern) {
	for _, p := range digits {
		c[p.Len()] = append(c[p.Len()], p)
	}

	return c
}()

// Solve deduces the wiring of e from its patterns and outputs.
func Solve(e Entry) (Wiring, error) {
	var observed [NumSegments + 1][]Pattern
	seen := make(map[Pattern]bool, len(e.Patterns)+len(e.Outputs))
	for _, p := range append(append([]Pattern(nil), e.Patterns...), e.Outputs...) {
		if !seen[p] {
			seen[p] = true
			observed[p.Len()] = append(observed[p.Len()], p)
		}
	}

	var cand Wiring
	for s := range cand {
		cand[s] = All
	}

	for n, class := range lengthClasses {
		obs := observed[n]
		if len(obs) > len(class) {
			return Wiring{}, fmt.Errorf("%w: %d distinct patterns of length %d", ErrContradiction, len(obs), n)
		}
		if len(class) == 0 || len(obs) < len(class) {
			continue
		}
		wireAnd, wireOr := All, Pattern(0)
		segAnd, segOr := All, Pattern(0)
		for i := range class {
			wireAnd &= obs[i]
			wireOr |= obs[i]
			segAnd &= class[i]
			segOr |= class[i]
		}
		restrict(&cand, segAnd, wireAnd)
		restrict(&cand, segOr, wireOr)
	}

	if err := propagate(&cand); err != nil {
		return Wiring{}, err
	}

	return cand, nil
}

// restrict enforces "the segments in segs are driven exactly by the wires in
// wires": segments inside segs keep only those wires, the rest lose them.
func restrict(cand *Wiring, segs, wires Pattern) {
	for s := range cand {
		if segs&(1<<s) != 0 {
			cand[s] &= wires
		} else {
			cand[s] &^= wires
		}
	}
}

// propagate eliminates candidates until every segment owns one wire.
func propagate(cand *Wiring) error {
	for changed := true; changed; {
		changed = false
		for s, p := range cand {
			switch p.Len() {
			case 0:
				return fmt.Errorf("%w: no wire left for segment %c", ErrContradiction, 'a'+s)
			case 1:
				for t := range cand {
					if t != s && cand[t]&p != 0 {
						cand[t] &^= p
						changed = true
					}
				}
			}
		}
		// A wire that can drive only one segment belongs to it.
		for w := 0; w < NumSegments; w++ {
			bit := Pattern(1) << w
			owner, n := -1, 0
			for s, p := range cand {
				if p&bit != 0 {
					owner, n = s, n+1
				}
			}
			if n == 0 {
				return fmt.Errorf("%w: wire %c drives nothing", ErrContradiction, 'a'+w)
			}
			if n == 1 && cand[owner] != bit {
				cand[owner] = bit
				changed = true
			}
		}
	}

	for s, p := range cand {
		if p.Len() != 1 {
			return fmt.Errorf("%w: segment %c could be any of %s", ErrAmbiguous, 'a'+s, p)
		}
	}

	return nil
}

// Digit translates a wire pattern into the digit it shows under w.
func (w Wiring) Digit(p Pattern) (int, error) {
	var segs Pattern
	for s, wire := range w {
		if p&wire != 0 {
			segs |= 1 << s
		}
	}
	d := digitOf[segs]
	if d < 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnknownDigit, p)
	}

	return int(d), nil
}

// Decode solves e and reads its outputs as one base-10 number.
func Decode(e Entry) (int, error) {
	w, err := Solve(e)
	if err != nil {
		return 0, err
	}
	value := 0
	for _, p := range e.Outputs {
		d, err := w.Digit(p)
		if err != nil {
			return 0, err
		}
		value = value*10 + d
	}

	return value, nil
}

// DecodeAll decodes every entry and returns the sum of their values.
func DecodeAll(entries []Entry) (int, error) {
	sum := 0
	for i, e := range entries {
		v, err := Decode(e)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i+1, err)
		}
		sum += v
	}

	return sum, nil
}
