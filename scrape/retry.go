package scrape

import (
	"context"
	"time"
)

// FetchFunc fetches a documentation page and returns its HTML.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives printf-style progress messages during retries.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff schedule for page fetches.
// Documentation CDNs throttle bursts, so transient failures usually
// clear within a few seconds.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a page, retrying on failure with the default
// backoff schedule. The logger, if non-nil, is told about each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays is FetchWithRetry with an explicit backoff
// schedule; an empty schedule means a single attempt. Tests pass zero
// delays to avoid real waiting.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			break
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
