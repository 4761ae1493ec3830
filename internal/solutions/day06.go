package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/lanternfish"
	"github.com/katalvlaran/aoc2021/parse"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 6, Name: "lanternfish", Title: "Lanternfish", Solve: solveLanternfish})
}

func solveLanternfish(_ context.Context, in string, cfg *config.Config) ([]registry.Answer, error) {
	school := parse.Must(lanternfish.ParseSchool(in))
	out := make([]registry.Answer, 0, len(cfg.Puzzles.Lanternfish.Days))
	for _, days := range cfg.Puzzles.Lanternfish.Days {
		_, n, err := lanternfish.Simulate(school, days)
		if err != nil {
			return nil, err
		}
		a, err := count(fmt.Sprintf("fish after %d days", days), n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
