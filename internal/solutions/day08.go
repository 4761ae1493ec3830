package solutions

import (
	"context"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
	"github.com/katalvlaran/aoc2021/segments"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 8, Name: "segments", Title: "Seven Segment Search", Solve: solveSegments})
}

func solveSegments(_ context.Context, in string, _ *config.Config) ([]registry.Answer, error) {
	entries := parse.Must(segments.ParseEntries(in))
	counts := segments.CountUnique(entries)
	sum, err := segments.DecodeAll(entries)
	if err != nil {
		return nil, err
	}

	return []registry.Answer{
		answer("1, 4, 7, 8 in outputs", int64(counts[1]+counts[4]+counts[7]+counts[8])),
		answer("sum of outputs", int64(sum)),
	}, nil
}
