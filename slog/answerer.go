package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/askcdp/cdpdoc"
)

// Ensure LoggingAnswerer implements cdpdoc.Answerer.
var _ cdpdoc.Answerer = (*LoggingAnswerer)(nil)

// LoggingAnswerer wraps an Answerer with per-question logging. The raw
// message is logged by length only: questions may contain user data.
type LoggingAnswerer struct {
	next   cdpdoc.Answerer
	logger *slog.Logger
}

// NewLoggingAnswerer creates a new LoggingAnswerer.
func NewLoggingAnswerer(next cdpdoc.Answerer, logger *slog.Logger) *LoggingAnswerer {
	return &LoggingAnswerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the operation.
func (a *LoggingAnswerer) Answer(ctx context.Context, message string) (resp *cdpdoc.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"message_len", len(message),
			"duration", time.Since(begin),
			"err", err,
		}
		if resp != nil {
			attrs = append(attrs,
				"intent", string(resp.Intent),
				"platforms", len(resp.Platforms),
			)
		}
		a.logger.Info("answer", attrs...)
	}(time.Now())
	return a.next.Answer(ctx, message)
}
