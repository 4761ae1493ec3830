package solutions

import (
	"context"

	"github.com/katalvlaran/aoc2021/dive"
	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 2, Name: "dive", Title: "Dive!", Solve: solveDive})
}

func solveDive(_ context.Context, in string, _ *config.Config) ([]registry.Answer, error) {
	cmds := parse.Must(dive.ParseCommands(in))

	return []registry.Answer{
		answer("position", int64(dive.Pilot(cmds).Product())),
		answer("aimed position", int64(dive.PilotWithAim(cmds).Product())),
	}, nil
}
