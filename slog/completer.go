package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitechat"
)

// Ensure LoggingCompleter implements sitechat.Completer.
var _ sitechat.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging of every model call.
// Prompt text is never logged, only its size.
type LoggingCompleter struct {
	next   sitechat.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next sitechat.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
func (c *LoggingCompleter) Complete(ctx context.Context, completion sitechat.Completion) (answer string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		c.logger.Log(ctx, level, "completion",
			"prompt_bytes", len(completion.Prompt),
			"answer_bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, completion)
}
