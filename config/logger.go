package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

var logLevels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// NewLogger returns a slog logger printing through pterm at the given level.
func NewLogger(level string) (*slog.Logger, error) {
	l, ok := logLevels[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	logger := pterm.DefaultLogger.WithLevel(l)
	return slog.New(pterm.NewSlogHandler(logger)), nil
}
