package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2021/internal/config"
)

// InputFunc returns the puzzle input for a day.
type InputFunc func(day int) (string, error)

// RunOptions configures Run.
type RunOptions struct {
	// Jobs bounds how many puzzles are solved at once; values below 1 mean 1.
	Jobs int
	// FailFast cancels puzzles not yet started once one fails.
	FailFast bool
	// Input supplies puzzle inputs. Required.
	Input InputFunc
	// Config is passed to every solver; nil means config.Default().
	Config *config.Config
	// Logger receives per-puzzle progress; nil disables logging.
	Logger *zap.Logger
}

// Run solves puzzles and returns their results in the same order.
// The error is non-nil only when FailFast stopped the run or ctx ended.
func Run(ctx context.Context, puzzles []Puzzle, opts RunOptions) ([]Result, error) {
	if opts.Input == nil {
		return nil, errors.New("registry: RunOptions.Input is required")
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Jobs < 1 {
		opts.Jobs = 1
	}

	results := make([]Result, len(puzzles))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, p := range puzzles {
		g.Go(func() error {
			results[i] = solve(gctx, p, opts)
			if opts.FailFast && results[i].Failed() {
				return fmt.Errorf("day %d: %w", p.Day, results[i].Err)
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}

func solve(ctx context.Context, p Puzzle, opts RunOptions) (res Result) {
	res = Result{Day: p.Day, Name: p.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	log := opts.Logger.With(zap.Int("day", p.Day), zap.String("puzzle", p.Name))
	log.Debug("solving")
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Answers = nil
			res.Err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
		res.Elapsed = time.Since(start)
		if res.Err != nil {
			log.Warn("puzzle failed", zap.Error(res.Err), zap.Duration("elapsed", res.Elapsed))
			return
		}
		log.Info("puzzle solved", zap.Int("answers", len(res.Answers)), zap.Duration("elapsed", res.Elapsed))
	}()

	text, err := opts.Input(p.Day)
	if err != nil {
		res.Err = err
		return res
	}
	res.Answers, res.Err = p.Solve(ctx, text, opts.Config)

	return res
}
