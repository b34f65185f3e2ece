package logs

import (
	"log/slog"
	"os"
	"strings"

	"github.com/MelissaPascal/sulten-dms-ai/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the process-wide slog.Logger. Every record carries the service
// name and environment so orders, inventory and alert logs can be filtered
// per deployment. env.debug forces debug level regardless of log.level.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	level, err := parseLogLevel(env.Log.Level)
	if err != nil {
		return nil, err
	}
	if env.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler).With(
		slog.String("service", env.ServiceName),
		slog.String("env", env.Env),
	)

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level. An empty level
// defaults to info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
