package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/askcdp/cdpdoc"
)

// Ensure LoggingRetriever implements cdpdoc.Retriever.
var _ cdpdoc.Retriever = (*LoggingRetriever)(nil)

// LoggingRetriever wraps a Retriever with debug logging.
type LoggingRetriever struct {
	next   cdpdoc.Retriever
	logger *slog.Logger
}

// NewLoggingRetriever creates a new LoggingRetriever.
func NewLoggingRetriever(next cdpdoc.Retriever, logger *slog.Logger) *LoggingRetriever {
	return &LoggingRetriever{next: next, logger: logger}
}

// Retrieve delegates to the wrapped retriever and logs the operation.
func (r *LoggingRetriever) Retrieve(ctx context.Context, query cdpdoc.Query, opts cdpdoc.RetrieveOptions) (matches []cdpdoc.Match, err error) {
	defer func(begin time.Time) {
		r.logger.Info("retrieve",
			"intent", string(query.Intent),
			"tokens", len(query.Tokens),
			"platform", string(opts.Platform),
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Retrieve(ctx, query, opts)
}
