package logs

import (
	"context"
	"log/slog"
	"testing"

	"github.com/MelissaPascal/sulten-dms-ai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, debug bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "sulten-dms"
	cfg.Env.Debug = debug
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = true

	return cfg
}

func TestNew_DebugFlagForcesDebugLevel(t *testing.T) {
	logger, err := New(Params{Config: testConfig("warn", true)})
	require.NoError(t, err)

	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_RespectsConfiguredLevel(t *testing.T) {
	logger, err := New(Params{Config: testConfig("warn", false)})
	require.NoError(t, err)

	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Params{Config: testConfig("verbose", false)})
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    slog.Level
		wantErr bool
	}{
		{level: "", want: slog.LevelInfo},
		{level: "debug", want: slog.LevelDebug},
		{level: "INFO", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
		{level: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			got, err := parseLogLevel(tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
