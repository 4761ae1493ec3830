// Package dive pilots the submarine through a list of planned commands.
package dive

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/parse"
)

// ErrUnknownDirection is returned for a command word other than forward, down or up.
var ErrUnknownDirection = errors.New("dive: unknown direction")

// Direction of a single command.
type Direction int

const (
	// Forward moves horizontally; with aim it also changes depth.
	Forward Direction = iota
	// Down increases depth, or aim when steering by aim.
	Down
	// Up decreases depth, or aim when steering by aim.
	Up
)

var directionNames = map[string]Direction{
	"forward": Forward,
	"down":    Down,
	"up":      Up,
}

func (d Direction) String() string {
	for name, v := range directionNames {
		if v == d {
			return name
		}
	}

	return fmt.Sprintf("Direction(%d)", int(d))
}

// Command is one line of the course, e.g. "forward 5".
type Command struct {
	Direction Direction
	Units     int
}

// Position is the submarine's horizontal position and depth.
type Position struct {
	Horizontal int
	Depth      int
}

// Product multiplies horizontal position by depth.
func (p Position) Product() int { return p.Horizontal * p.Depth }

// ParseCommands reads one "<direction> <units>" command per line.
func ParseCommands(s string) ([]Command, error) {
	return parse.Records(s, func(f []string) (Command, error) {
		if len(f) != 2 {
			return Command{}, fmt.Errorf("dive: want 2 fields, got %d", len(f))
		}
		dir, ok := directionNames[f[0]]
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrUnknownDirection, f[0])
		}
		units, err := parse.Number[int](f[1])
		if err != nil {
			return Command{}, err
		}

		return Command{Direction: dir, Units: units}, nil
	})
}

// Pilot applies the commands literally: forward moves horizontally, down and
// up change depth.
func Pilot(cmds []Command) Position {
	var p Position
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			p.Horizontal += c.Units
		case Down:
			p.Depth += c.Units
		case Up:
			p.Depth -= c.Units
		}
	}

	return p
}

// PilotWithAim reads down and up as aim adjustments; forward moves
// horizontally and dives by aim × units.
func PilotWithAim(cmds []Command) Position {
	var (
		p   Position
		aim int
	)
	for _, c := range cmds {
		switch c.Direction {
		case Forward:
			p.Horizontal += c.Units
			p.Depth += aim * c.Units
		case Down:
			aim += c.Units
		case Up:
			aim -= c.Units
		}
	}

	return p
}
