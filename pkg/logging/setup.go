// Package logging builds the slog handlers used by the dashboard binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a level name (trace, debug, info, warn, warning, error) to
// a slog level. Trace is debug with caller reporting.
func ParseLevel(level string) (slog.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return slog.LevelDebug, true, nil
	case "debug":
		return slog.LevelDebug, false, nil
	case "", "info":
		return slog.LevelInfo, false, nil
	case "warn", "warning":
		return slog.LevelWarn, false, nil
	case "error":
		return slog.LevelError, false, nil
	default:
		return slog.LevelInfo, false, fmt.Errorf("unknown log level %q", level)
	}
}

// NewHandler returns a text or JSON handler writing to w. Text output goes
// through charmbracelet/log; JSON uses the standard slog JSON handler.
func NewHandler(format, level string, w io.Writer) (slog.Handler, error) {
	lvl, reportCaller, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		if w == nil {
			w = os.Stderr
		}
		return log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			ReportCaller:    reportCaller,
			Level:           log.Level(lvl),
		}), nil
	case FormatJSON:
		if w == nil {
			w = os.Stdout
		}
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     lvl,
			AddSource: reportCaller,
		}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q, expected %q or %q", format, FormatText, FormatJSON)
	}
}

// NewLogger is NewHandler wrapped in a *slog.Logger.
func NewLogger(format, level string, w io.Writer) (*slog.Logger, error) {
	h, err := NewHandler(format, level, w)
	if err != nil {
		return nil, err
	}
	return slog.New(h), nil
}
