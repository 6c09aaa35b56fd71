// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/layaalk/PVI-AU/internal/config"
)

// New returns a logger writing to stderr. Format "json" selects the
// production encoder, anything else the console encoder.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ForRun tags every entry of logger with a fresh run id and the command name.
func ForRun(logger *zap.Logger, command string) *zap.Logger {
	return logger.With(
		zap.String("cmd", command),
		zap.String("run_id", uuid.NewString()),
	)
}

// ForCommand builds the logger of a command-line tool. Verbose forces the
// debug level.
func ForCommand(cfg config.LogConfig, verbose bool, command string) (*zap.Logger, error) {
	if verbose {
		cfg.Level = "debug"
	}
	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return ForRun(logger, command), nil
}
