package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/sonar"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 1, Name: "sonar", Title: "Sonar Sweep", Solve: solveSonar})
}

func solveSonar(_ context.Context, in string, cfg *config.Config) ([]registry.Answer, error) {
	depths := parse.Must(sonar.ParseDepths(in))
	window := cfg.Puzzles.Sonar.Window
	w, err := sonar.WindowIncreases(depths, window)
	if err != nil {
		return nil, err
	}

	return []registry.Answer{
		answer("increases", int64(sonar.Increases(depths))),
		answer(fmt.Sprintf("window-%d increases", window), int64(w)),
	}, nil
}
