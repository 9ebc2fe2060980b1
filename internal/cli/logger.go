package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/salesman/config"
)

// newLogger builds the stderr logger for a validated log section.
func newLogger(w io.Writer, c config.Log) *slog.Logger {
	level, err := config.ParseLevel(c.Level)
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.EqualFold(c.Format, config.FormatJSON) {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}
