package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/polymer"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 14, Name: "polymer", Title: "Extended Polymerization", Solve: solvePolymer})
}

func solvePolymer(_ context.Context, in string, cfg *config.Config) ([]registry.Answer, error) {
	p := parse.Must(polymer.ParsePolymer(in))
	out := make([]registry.Answer, 0, len(cfg.Puzzles.Polymer.Steps))
	for _, steps := range cfg.Puzzles.Polymer.Steps {
		spread, err := p.Spread(steps)
		if err != nil {
			return nil, err
		}
		a, err := count(fmt.Sprintf("spread after %d steps", steps), spread)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}
