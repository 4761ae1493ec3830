// Command aoc runs the daily puzzle solvers.
//
//	aoc list
//	aoc run            # every registered day
//	aoc run 6 14 --jobs 2 --input-dir ./inputs
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/aoc2021/internal/registry"
	_ "github.com/katalvlaran/aoc2021/internal/solutions"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(registry.Default).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
