package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2021/internal/config"
	"github.com/katalvlaran/aoc2021/internal/logging"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.LoggingConfig
		verbose bool
		want    zapcore.Level
	}{
		{"default", config.LoggingConfig{}, false, zapcore.InfoLevel},
		{"warn json", config.LoggingConfig{Level: "warn", Format: "json"}, false, zapcore.WarnLevel},
		{"verbose wins", config.LoggingConfig{Level: "error", Format: "console"}, true, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := logging.New(tc.cfg, tc.verbose)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tc.want-1))
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(config.LoggingConfig{Level: "loud"}, false)
	assert.Error(t, err)

	_, err = logging.New(config.LoggingConfig{Format: "xml"}, false)
	assert.Error(t, err)
}
