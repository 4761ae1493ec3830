package solutions

import (
	"context"

	"github.com/katalvlaran/aoc2021/diagnostic"
	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/registry"
	"github.com/katalvlaran/aoc2021/parse"
)

func init() {
	registry.MustRegister(registry.Puzzle{Day: 3, Name: "diagnostic", Title: "Binary Diagnostic", Solve: solveDiagnostic})
}

func solveDiagnostic(_ context.Context, in string, _ *config.Config) ([]registry.Answer, error) {
	report := parse.Must(diagnostic.ParseReport(in))
	oxygen, co2, err := report.LifeSupport()
	if err != nil {
		return nil, err
	}

	return []registry.Answer{
		answer("power consumption", int64(report.PowerConsumption())),
		answer("life support", int64(oxygen*co2)),
	}, nil
}
