package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel accepts the usual slog level names ("debug", "INFO", "warn"...).
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// NewHandler builds the slog handler for the given output format.
// "json" produces machine-readable records, anything else the tinted
// console format. Errors are rendered with tint.Err so they stand out.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if err, ok := a.Value.Any().(error); ok {
				aErr := tint.Err(err)
				aErr.Key = a.Key
				return aErr
			}
			return a
		},
	})
}

// New is a shortcut for NewSlogLogger(slog.New(NewHandler(...))).
func New(w io.Writer, format string, level slog.Level) *SlogLogger {
	return NewSlogLogger(slog.New(NewHandler(w, format, level)))
}
