// Package slog provides log/slog based logging for sitechat: logger
// construction and logging decorators for the domain interfaces.
package slog

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Option configures a logger created with NewLogger.
type Option func(*config)

type config struct {
	level  slog.Level
	json   bool
	writer io.Writer
}

// WithDebug sets the log level to Debug when true, Info otherwise.
func WithDebug(debug bool) Option {
	return func(c *config) {
		if debug {
			c.level = slog.LevelDebug
		} else {
			c.level = slog.LevelInfo
		}
	}
}

// WithJSON selects slog's JSON handler for structured service logs.
// Otherwise output goes through the charmbracelet/log handler.
func WithJSON(json bool) Option {
	return func(c *config) {
		c.json = json
	}
}

// WithWriter overrides the output writer. Defaults to os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.writer = w
	}
}

// NewLogger returns a *slog.Logger configured by opts.
func NewLogger(opts ...Option) *slog.Logger {
	c := &config{
		level:  slog.LevelInfo,
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.json {
		return slog.New(slog.NewJSONHandler(c.writer, &slog.HandlerOptions{Level: c.level}))
	}

	handler := charmlog.NewWithOptions(c.writer, charmlog.Options{
		ReportTimestamp: true,
		Level:           charmlog.Level(c.level),
	})
	return slog.New(handler)
}
