// Package sonar counts how often a sonar sweep's depth measurements increase,
// either reading by reading or over a sliding window of readings.
package sonar

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc2021/parse"
)

// ErrWindow is returned for a window size below one.
var ErrWindow = errors.New("sonar: window must be at least 1")

// ParseDepths reads whitespace separated depth measurements.
func ParseDepths(s string) ([]int, error) {
	depths, err := parse.Numbers[int](s, "")
	if err != nil {
		return nil, fmt.Errorf("sonar: %w", err)
	}

	return depths, nil
}

// Increases counts the measurements larger than the one before.
func Increases[T constraints.Integer | constraints.Float](depths []T) int {
	n, _ := WindowIncreases(depths, 1)
	return n
}

// WindowIncreases counts how often the sum of a window of measurements is
// larger than the sum of the window one position earlier.
//
// Consecutive windows share window-1 readings, so the comparison reduces to
// depths[i] > depths[i-window]; no sums are formed.
func WindowIncreases[T constraints.Integer | constraints.Float](depths []T, window int) (int, error) {
	if window < 1 {
		return 0, ErrWindow
	}
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}

	return count, nil
}
