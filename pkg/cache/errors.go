package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable marks a transient backend failure, such as a dropped
// connection or a timeout.
var ErrUnavailable = errors.New("cache backend unavailable")

// RetryableError marks an error that [RetryWithBackoff] should retry.
type RetryableError struct{ Err error }

// Retryable wraps err as retryable. It returns nil for a nil err.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string { return e.Err.Error() }

func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err was wrapped with [Retryable].
func IsRetryable(err error) bool {
	var re *RetryableError
	return errors.As(err, &re)
}

// retryDelay is the first backoff interval of RetryWithBackoff.
var retryDelay = 100 * time.Millisecond

// RetryWithBackoff calls fn up to three times, doubling the delay between
// attempts. Only retryable errors are retried.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := retryDelay
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}
