// Package config loads the runner configuration from YAML with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "AOC_LOG_LEVEL"
	EnvJobs     = "AOC_JOBS"
	EnvInputDir = "AOC_INPUT_DIR"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all runner configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Runner  RunnerConfig  `yaml:"runner"`
	Input   InputConfig   `yaml:"input"`
	Puzzles PuzzlesConfig `yaml:"puzzles"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// RunnerConfig configures how days are scheduled.
type RunnerConfig struct {
	Jobs     int    `yaml:"jobs"`      // concurrent days, >= 1
	Timeout  string `yaml:"timeout"`   // overall deadline, empty for none
	FailFast bool   `yaml:"fail_fast"` // cancel remaining days after a failure
}

// InputConfig locates puzzle inputs.
type InputConfig struct {
	// Dir holds dayNN.txt files that replace the embedded inputs.
	Dir string `yaml:"dir"`
}

// PuzzlesConfig holds per-day tunables.
type PuzzlesConfig struct {
	Sonar       SonarConfig       `yaml:"sonar"`
	Lanternfish LanternfishConfig `yaml:"lanternfish"`
	Octopus     OctopusConfig     `yaml:"octopus"`
	Caves       CavesConfig       `yaml:"caves"`
	Polymer     PolymerConfig     `yaml:"polymer"`
}

// SonarConfig tunes day 1.
type SonarConfig struct {
	Window int `yaml:"window"`
}

// LanternfishConfig tunes day 6: one answer per entry.
type LanternfishConfig struct {
	Days []int `yaml:"days"`
}

// OctopusConfig tunes day 11.
type OctopusConfig struct {
	Steps     int `yaml:"steps"`
	SyncLimit int `yaml:"sync_limit"`
}

// CavesConfig tunes day 12.
type CavesConfig struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// PolymerConfig tunes day 14: one answer per entry.
type PolymerConfig struct {
	Steps []int `yaml:"steps"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Runner:  RunnerConfig{Jobs: 4},
		Puzzles: PuzzlesConfig{
			Sonar:       SonarConfig{Window: 3},
			Lanternfish: LanternfishConfig{Days: []int{80, 256}},
			Octopus:     OctopusConfig{Steps: 100, SyncLimit: 10000},
			Caves:       CavesConfig{Start: "start", End: "end"},
			Polymer:     PolymerConfig{Steps: []int{10, 40}},
		},
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if jobs := os.Getenv(EnvJobs); jobs != "" {
		n, err := strconv.Atoi(jobs)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvJobs, jobs, err)
		}
		c.Runner.Jobs = n
	}
	if dir := os.Getenv(EnvInputDir); dir != "" {
		c.Input.Dir = dir
	}

	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Runner.Jobs < 1 {
		return fmt.Errorf("%w: runner.jobs must be >= 1, got %d", ErrInvalid, c.Runner.Jobs)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	p := c.Puzzles
	if p.Sonar.Window < 1 {
		return fmt.Errorf("%w: puzzles.sonar.window must be >= 1", ErrInvalid)
	}
	for _, d := range p.Lanternfish.Days {
		if d < 0 {
			return fmt.Errorf("%w: puzzles.lanternfish.days must be >= 0", ErrInvalid)
		}
	}
	if p.Octopus.Steps < 0 || p.Octopus.SyncLimit < 1 {
		return fmt.Errorf("%w: puzzles.octopus steps/sync_limit", ErrInvalid)
	}
	if p.Caves.Start == "" || p.Caves.End == "" {
		return fmt.Errorf("%w: puzzles.caves start and end are required", ErrInvalid)
	}
	for _, s := range p.Polymer.Steps {
		if s < 0 {
			return fmt.Errorf("%w: puzzles.polymer.steps must be >= 0", ErrInvalid)
		}
	}

	return nil
}

// Timeout returns the runner deadline; zero means none.
func (c *Config) Timeout() (time.Duration, error) {
	if c.Runner.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Runner.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: runner.timeout %q", ErrInvalid, c.Runner.Timeout)
	}

	return d, nil
}
