package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/input"
	"github.com/katalvlaran/aoc2021/internal/logging"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/internal/render"
)

// errFailed is returned by run when at least one puzzle failed; the
// failures themselves are already printed.
var errFailed = errors.New("puzzles failed")

type app struct {
	reg *registry.Registry

	configPath string
	verbose    bool
	inputDir   string
	jobs       int
	failFast   bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(reg *registry.Registry) *cobra.Command {
	a := &app{reg: reg}

	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2021 puzzle runner",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "aoc.yaml", "YAML config file (missing file means defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "Directory with dayNN.txt files overriding the embedded inputs")
	root.PersistentFlags().IntVarP(&a.jobs, "jobs", "j", 0, "Puzzles solved concurrently (default from config)")

	run := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every registered day",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.run,
	}
	run.Flags().BoolVar(&a.failFast, "fail-fast", false, "Stop starting new days after the first failure")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.New(cmd.OutOrStdout()).Puzzles(a.reg.All())
		},
	}

	root.AddCommand(run, list)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("jobs") {
		cfg.Runner.Jobs = a.jobs
	}
	if flags.Changed("input-dir") {
		cfg.Input.Dir = a.inputDir
	}
	if flags.Changed("fail-fast") {
		cfg.Runner.FailFast = a.failFast
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("jobs", cfg.Runner.Jobs),
		zap.String("input_dir", cfg.Input.Dir))

	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	days := make([]int, len(args))
	for i, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("day %q: not a number", arg)
		}
		days[i] = d
	}
	puzzles, err := a.reg.Select(days)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	timeout, _ := a.cfg.Timeout()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	a.logger.Info("running puzzles", zap.Int("count", len(puzzles)), zap.Int("jobs", a.cfg.Runner.Jobs))
	results, runErr := registry.Run(ctx, puzzles, registry.RunOptions{
		Jobs:     a.cfg.Runner.Jobs,
		FailFast: a.cfg.Runner.FailFast,
		Input:    input.NewSource(a.cfg.Input.Dir).Read,
		Config:   a.cfg,
		Logger:   a.logger,
	})
	if err := render.New(cmd.OutOrStdout()).Results(results); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	for _, res := range results {
		if res.Failed() {
			return errFailed
		}
	}

	return nil
}
