// Package lanternfish models an exponentially growing school of lanternfish.
//
// Fish are never tracked individually. A School counts fish per internal
// timer value (0…8); a day rotates the buckets by one, and every fish leaving
// timer 0 resets to 6 and spawns a newborn at 8.
package lanternfish

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/aoc2021/parse"
)

const (
	// ResetTimer is a parent's timer after spawning.
	ResetTimer = 6
	// NewbornTimer is a newborn's initial timer.
	NewbornTimer = 8
)

var (
	// ErrTimer is returned for a timer outside 0…NewbornTimer.
	ErrTimer = errors.New("lanternfish: invalid timer")
	// ErrOverflow is returned when the school outgrows a uint64.
	ErrOverflow = errors.New("lanternfish: count overflows uint64")
)

// School counts fish by days until they reproduce.
type School [NewbornTimer + 1]uint64

// Total returns the number of fish, or ErrOverflow when it does not fit in
// a uint64.
func (s School) Total() (uint64, error) {
	var n, carry uint64
	for _, c := range s {
		if n, carry = bits.Add64(n, c, 0); carry != 0 {
			return 0, ErrOverflow
		}
	}

	return n, nil
}

// ParseSchool reads comma separated fish timers, possibly over several lines.
func ParseSchool(s string) (School, error) {
	var school School
	for _, line := range parse.Lines(s) {
		timers, err := parse.Numbers[int](line, ",")
		if err != nil {
			return School{}, fmt.Errorf("lanternfish: %w", err)
		}
		for _, t := range timers {
			if t < 0 || t > NewbornTimer {
				return School{}, fmt.Errorf("%w: timer=%d", ErrTimer, t)
			}
			school[t]++
		}
	}

	return school, nil
}

// Simulate advances school by days and returns the new school with its size.
// The input is not modified. ErrOverflow reports the first day a count no
// longer fits in a uint64.
func Simulate(school School, days int) (School, uint64, error) {
	var carry uint64
	for d := 1; d <= days; d++ {
		spawning := school[0]
		copy(school[:], school[1:])
		school[NewbornTimer] = spawning
		if school[ResetTimer], carry = bits.Add64(school[ResetTimer], spawning, 0); carry != 0 {
			return School{}, 0, fmt.Errorf("%w: day %d", ErrOverflow, d)
		}
	}
	n, err := school.Total()
	if err != nil {
		return School{}, 0, fmt.Errorf("%w: after %d days", err, days)
	}

	return school, n, nil
}
