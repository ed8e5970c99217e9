// Package logging builds the zap logger shared by every command.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Formats accepted by New.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a logger at the given level ("debug", "info", "warn",
// "error"). The json format uses the production config; console uses the
// development config. Logs always go to stderr so stdout stays free for
// command output and the MCP stdio transport.
func New(level, format string) (*zap.Logger, error) {
	if err := Check(level, format); err != nil {
		return nil, err
	}
	lvl, _ := zapcore.ParseLevel(level)

	config := zap.NewProductionConfig()
	if format == FormatConsole {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Check reports whether level and format are accepted by New.
func Check(level, format string) error {
	if _, err := zapcore.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "", FormatJSON, FormatConsole:
		return nil
	}
	return fmt.Errorf("invalid log format %q (want %s or %s)", format, FormatJSON, FormatConsole)
}
