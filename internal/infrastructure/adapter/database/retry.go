package database

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	Attempts    int
	Interval    time.Duration
	MaxInterval time.Duration
}

// retryWithBackoff runs operation until it succeeds, attempts run out or ctx is done.
// The wait doubles after every failure and is capped at MaxInterval.
func retryWithBackoff(ctx context.Context, cfg RetryConfig, logger coreport.Logger, name string, operation func() error) error {
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		if attempt == attempts-1 {
			break
		}

		backoff := backoffFor(attempt, cfg)
		logger.Warn("Operation failed, retrying", coreport.ErrorFields(err, map[string]any{
			"operation":   name,
			"attempt":     attempt + 1,
			"of":          attempts,
			"retry_after": backoff.String(),
		}))

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func backoffFor(attempt int, cfg RetryConfig) time.Duration {
	backoff := cfg.Interval << uint(attempt)
	if cfg.MaxInterval > 0 && backoff > cfg.MaxInterval {
		backoff = cfg.MaxInterval
	}
	return backoff
}
