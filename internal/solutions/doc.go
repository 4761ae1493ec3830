// Package solutions adapts each day's package to registry.Solver and
// registers it in registry.Default. Import it for its side effects.
//
// Inputs go through parse.Must: a malformed input panics, and the runner
// reports the panic as that day's failure.
package solutions

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2021/internal/registry"
)

// ErrNoAnswer is returned when an input has no answer, e.g. a bingo game
// nobody wins.
var ErrNoAnswer = errors.New("solutions: input has no answer")

// ErrTooLarge is returned for an answer that does not fit in an int64.
var ErrTooLarge = errors.New("solutions: answer exceeds int64")

func answer(part string, v int64) registry.Answer { return registry.Answer{Part: part, Value: v} }

// count converts an unsigned count to an answer.
func count(part string, v uint64) (registry.Answer, error) {
	if v > math.MaxInt64 {
		return registry.Answer{}, fmt.Errorf("%w: %s = %d", ErrTooLarge, part, v)
	}

	return answer(part, int64(v)), nil
}
