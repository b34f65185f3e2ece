package postgres

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/MelissaPascal/sulten-dms-ai/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newGormLoggerConfig(debug bool, slowThreshold time.Duration) *config.Config {
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: slowThreshold}}
	cfg.Env.Debug = debug

	return cfg
}

func TestNewGormSlogLogger_DebugSurfacesNotFoundQueries(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	gl, ok := newGormSlogLogger(base, newGormLoggerConfig(true, 0)).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, logger.Info, gl.level)
	assert.True(t, gl.shouldLogError(gorm.ErrRecordNotFound))
}

func TestNewGormSlogLogger_ProductionIgnoresNotFoundQueries(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	gl, ok := newGormSlogLogger(base, newGormLoggerConfig(false, 0)).(*gormSlogLogger)
	require.True(t, ok)

	assert.Equal(t, logger.Warn, gl.level)
	assert.False(t, gl.shouldLogError(gorm.ErrRecordNotFound))
	assert.Equal(t, defaultGormSlowThreshold, gl.slowThreshold)
}

func TestNewGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	gl, ok := newGormSlogLogger(base, newGormLoggerConfig(false, 50*time.Millisecond)).(*gormSlogLogger)
	require.True(t, ok)

	assert.True(t, gl.shouldLogSlow(60*time.Millisecond))
	assert.False(t, gl.shouldLogSlow(40*time.Millisecond))
}
