package octopus

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/gridgraph"
	"github.com/katalvlaran/aoc2021/parse"
)

var (
	// ErrEnergy is returned for an energy level outside 0–9.
	ErrEnergy = errors.New("octopus: energy level out of range")
	// ErrNoSync is returned when no step within the limit flashes every octopus.
	ErrNoSync = errors.New("octopus: no synchronised flash within limit")
)

// FlashThreshold is the highest energy an octopus can hold without flashing.
const FlashThreshold = 9

// Cavern is the octopus grid together with its step and flash counters.
type Cavern struct {
	grid    *gridgraph.Grid
	steps   int
	flashes int
}

// New builds a Cavern from energy levels, one row per slice.
func New(energies [][]int) (*Cavern, error) {
	for y, row := range energies {
		for x, e := range row {
			if e < 0 || e > FlashThreshold {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrEnergy, e, x, y)
			}
		}
	}
	g, err := gridgraph.NewGrid(energies, gridgraph.Conn8)
	if err != nil {
		return nil, fmt.Errorf("octopus: %w", err)
	}

	return &Cavern{grid: g}, nil
}

// ParseCavern reads one row of digits per line.
func ParseCavern(s string) (*Cavern, error) {
	rows, err := parse.Digits(s)
	if err != nil {
		return nil, err
	}

	return New(rows)
}

// Step advances the cavern by one step and returns how many octopuses flashed.
func (c *Cavern) Step() int {
	var (
		flashed = make(map[gridgraph.Point]bool)
		queue   []gridgraph.Point
	)
	for _, p := range c.grid.Points() {
		if c.grid.Add(p, 1) > FlashThreshold {
			queue = append(queue, p)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if flashed[p] {
			continue
		}
		flashed[p] = true
		for _, n := range c.grid.Neighbors(p) {
			if c.grid.Add(n, 1) > FlashThreshold && !flashed[n] {
				queue = append(queue, n)
			}
		}
	}

	for p := range flashed {
		c.grid.Set(p, 0)
	}
	c.steps++
	c.flashes += len(flashed)

	return len(flashed)
}

// Clone returns an independent copy of c, counters included.
func (c *Cavern) Clone() *Cavern {
	return &Cavern{grid: c.grid.Clone(), steps: c.steps, flashes: c.flashes}
}

// Run performs steps steps and returns the flashes they produced.
func (c *Cavern) Run(steps int) int {
	total := 0
	for i := 0; i < steps; i++ {
		total += c.Step()
	}

	return total
}

// Synchronize steps until every octopus flashes at once and returns that
// step's number, counted from the cavern's initial state. Steps already taken
// count; limit is the last step number tried.
func (c *Cavern) Synchronize(limit int) (int, error) {
	for c.steps < limit {
		if c.Step() == c.grid.Len() {
			return c.steps, nil
		}
	}

	return 0, fmt.Errorf("%w: %d steps", ErrNoSync, limit)
}

// Steps returns the number of steps taken so far.
func (c *Cavern) Steps() int { return c.steps }

// Flashes returns the number of flashes so far.
func (c *Cavern) Flashes() int { return c.flashes }

// Size returns the number of octopuses.
func (c *Cavern) Size() int { return c.grid.Len() }

// Energy returns the energy level at (x, y).
func (c *Cavern) Energy(x, y int) int { return c.grid.At(gridgraph.Point{X: x, Y: y}) }

// String renders the current energy levels as a digit block.
func (c *Cavern) String() string { return c.grid.String() }
