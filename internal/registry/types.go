package registry

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/aoc2021/internal/config"
)

var (
	// ErrInvalidDay is returned for a day outside 1–25 or a puzzle without a solver.
	ErrInvalidDay = errors.New("registry: invalid puzzle")
	// ErrDuplicateDay is returned when a day is registered twice.
	ErrDuplicateDay = errors.New("registry: day already registered")
	// ErrUnknownDay is returned by Lookup for an unregistered day.
	ErrUnknownDay = errors.New("registry: unknown day")
	// ErrPanic wraps a panic raised by a solver.
	ErrPanic = errors.New("registry: solver panicked")
)

// Answer is one labelled puzzle answer.
type Answer struct {
	Part  string
	Value int64
}

// Solver computes the answers for one day's input.
type Solver func(ctx context.Context, input string, cfg *config.Config) ([]Answer, error)

// Puzzle is a registered day.
type Puzzle struct {
	Day   int
	Name  string // package name, e.g. "sonar"
	Title string
	Solve Solver
}

// Result is the outcome of solving one puzzle.
type Result struct {
	Day     int
	Name    string
	Answers []Answer
	Elapsed time.Duration
	Err     error
}

// Failed reports whether the puzzle did not produce answers.
func (r Result) Failed() bool { return r.Err != nil }
