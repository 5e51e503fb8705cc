// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mattn/go-sqlite3"
)

// retryBaseDelay controls the base duration for exponential backoff on
// busy storage. Tests override this to avoid real sleeps.
var retryBaseDelay = 50 * time.Millisecond

const maxBusyRetries = 3

// withRetry runs fn and retries on SQLite busy/locked errors with
// exponential backoff: 50 ms, 100 ms, 200 ms. Any other error returns
// immediately. After exhausting retries the error is wrapped with
// ErrStorageBusy so callers can classify it. If the context is
// cancelled during a backoff wait, ctx.Err() is returned.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt <= maxBusyRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * retryBaseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
	}
	return fmt.Errorf("%w after %d retries: %v", ErrStorageBusy, maxBusyRetries, err)
}

// isBusy reports whether err is a transient SQLite contention error.
func isBusy(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrBusy || serr.Code == sqlite3.ErrLocked
	}
	return false
}
