package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/octopus"
	"github.com/katalvlaran/aoc2021/parse"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 11, Name: "octopus", Title: "Dumbo Octopus", Solve: solveOctopus})
}

func solveOctopus(_ context.Context, in string, cfg *config.Config) ([]registry.Answer, error) {
	c := parse.Must(octopus.ParseCavern(in))
	fresh := c.Clone()
	steps := cfg.Puzzles.Octopus.Steps
	flashes := c.Run(steps)
	sync, err := fresh.Synchronize(cfg.Puzzles.Octopus.SyncLimit)
	if err != nil {
		return nil, err
	}

	return []registry.Answer{
		answer(fmt.Sprintf("flashes after %d steps", steps), int64(flashes)),
		answer("first synchronised step", int64(sync)),
	}, nil
}
