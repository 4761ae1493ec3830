// Package diagnostic decodes the submarine's binary diagnostic report.
//
// Every report line is a fixed-width binary number. Power consumption is
// derived from the most and least common bit per column (gamma and epsilon);
// the life-support rating repeatedly filters the report by those bit
// criteria until a single number remains.
package diagnostic

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/aoc2021/parse"
)

var (
	// ErrEmptyReport is returned when the report has no lines.
	ErrEmptyReport = errors.New("diagnostic: empty report")
	// ErrWidth is returned when report lines differ in width.
	ErrWidth = errors.New("diagnostic: inconsistent line width")
	// ErrNoCandidate is returned when life-support filtering eliminates every line.
	ErrNoCandidate = errors.New("diagnostic: bit criteria left no candidate")
)

// Report holds the diagnostic numbers and their common bit width.
type Report struct {
	Width   int
	Numbers []uint64
}

// ParseReport reads one binary number per line.
func ParseReport(s string) (Report, error) {
	lines := parse.Lines(s)
	if len(lines) == 0 {
		return Report{}, ErrEmptyReport
	}
	r := Report{Width: len(lines[0]), Numbers: make([]uint64, len(lines))}
	if r.Width > 64 {
		return Report{}, fmt.Errorf("%w: %d bits", ErrWidth, r.Width)
	}
	for i, line := range lines {
		if len(line) != r.Width {
			return Report{}, fmt.Errorf("%w: line %d has %d bits, want %d", ErrWidth, i+1, len(line), r.Width)
		}
		n, err := strconv.ParseUint(line, 2, 64)
		if err != nil {
			return Report{}, fmt.Errorf("%w: line %d: %w", parse.ErrMalformed, i+1, err)
		}
		r.Numbers[i] = n
	}

	return r, nil
}

// ones counts the numbers with bit set.
func ones(numbers []uint64, bit int) int {
	n := 0
	for _, v := range numbers {
		if v>>bit&1 == 1 {
			n++
		}
	}

	return n
}

// Rates returns gamma (per column: 1 when ones outnumber zeros) and epsilon
// (1 when zeros outnumber ones). A tied column contributes 0 to both.
func (r Report) Rates() (gamma, epsilon uint64) {
	for bit := 0; bit < r.Width; bit++ {
		n := ones(r.Numbers, bit)
		zeros := len(r.Numbers) - n
		switch {
		case n > zeros:
			gamma |= 1 << bit
		case n < zeros:
			epsilon |= 1 << bit
		}
	}

	return gamma, epsilon
}

// PowerConsumption is gamma × epsilon.
func (r Report) PowerConsumption() uint64 {
	g, e := r.Rates()
	return g * e
}

// LifeSupport returns the oxygen generator and CO2 scrubber ratings.
//
// Starting from the most significant bit, oxygen keeps the numbers carrying
// the column's most common bit (1 on a tie) and CO2 keeps the least common
// (0 on a tie), until one number remains.
func (r Report) LifeSupport() (oxygen, co2 uint64, err error) {
	if len(r.Numbers) == 0 {
		return 0, 0, ErrEmptyReport
	}
	oxygen, err = r.filter(func(n, zeros int) uint64 {
		if n >= zeros {
			return 1
		}
		return 0
	})
	if err != nil {
		return 0, 0, fmt.Errorf("oxygen: %w", err)
	}
	co2, err = r.filter(func(n, zeros int) uint64 {
		if n < zeros {
			return 1
		}
		return 0
	})
	if err != nil {
		return 0, 0, fmt.Errorf("co2: %w", err)
	}

	return oxygen, co2, nil
}

// filter narrows the report column by column; keep picks the bit to retain
// from the column's ones and zeros counts.
func (r Report) filter(keep func(n, zeros int) uint64) (uint64, error) {
	candidates := append([]uint64(nil), r.Numbers...)
	for bit := r.Width - 1; bit >= 0 && len(candidates) > 1; bit-- {
		n := ones(candidates, bit)
		want := keep(n, len(candidates)-n)
		next := candidates[:0]
		for _, v := range candidates {
			if v>>bit&1 == want {
				next = append(next, v)
			}
		}
		candidates = next
	}
	if len(candidates) != 1 {
		return 0, ErrNoCandidate
	}

	return candidates[0], nil
}
