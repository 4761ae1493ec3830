package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc2021/bingo"
	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 4, Name: "bingo", Title: "Giant Squid", Solve: solveBingo})
}

func solveBingo(_ context.Context, in string, _ *config.Config) ([]registry.Answer, error) {
	game := parse.Must(bingo.ParseGame(in))
	first, ok := game.Play()
	if !ok {
		return nil, fmt.Errorf("%w: no board wins", ErrNoAnswer)
	}
	last, _ := game.LastWin()

	return []registry.Answer{
		answer("first winner score", int64(first.Score)),
		answer("last winner score", int64(last.Score)),
	}, nil
}
