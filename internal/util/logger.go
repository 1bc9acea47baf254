package util

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// NewLogger builds a slog.Logger writing to w. level is one of debug, info,
// warn or error; format is text or json.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", LogFormatText:
		handler = slog.NewTextHandler(w, opts)
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Errorf("unsupported log format: %q", format)
	}

	return slog.New(handler), nil
}

func ParseLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, errors.Wrapf(err, "parsing log level failed, level=%q", level)
	}
	return lvl, nil
}

// DiscardLogger drops everything. Used when no logger is configured.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
