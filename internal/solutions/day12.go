package solutions

import (
	"context"

	"github.com/katalvlaran/aoc2021/caves"
	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 12, Name: "caves", Title: "Passage Pathing", Solve: solveCaves})
}

func solveCaves(ctx context.Context, in string, cfg *config.Config) ([]registry.Answer, error) {
	sys := parse.Must(caves.ParseSystem(in))
	start, end := cfg.Puzzles.Caves.Start, cfg.Puzzles.Caves.End

	out := make([]registry.Answer, 0, 2)
	for _, p := range []caves.Policy{caves.VisitSmallOnce, caves.VisitOneSmallTwice} {
		n, err := sys.CountContext(ctx, start, end, p)
		if err != nil {
			return nil, err
		}
		out = append(out, answer("paths, "+p.String(), int64(n)))
	}

	return out, nil
}
