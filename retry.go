package usecase

import (
	"context"
	"errors"

	"github.com/sethvargo/go-retry"
)

// RetryOnce runs fn, and if it fails with an error matching target
// (errors.Is), runs it exactly one more time. A second matching failure, or
// any non-matching failure, propagates unchanged; it is never converted into
// a use case failure.
func RetryOnce[T any](ctx context.Context, target error, fn func(ctx context.Context) (T, error)) (T, error) {
	var (
		out     T
		lastErr error
	)
	backoff := retry.WithMaxRetries(1, retry.NewConstant(1))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := fn(ctx)
		if err != nil {
			lastErr = err
			if errors.Is(err, target) {
				return retry.RetryableError(err)
			}
			return err
		}
		out = v
		lastErr = nil
		return nil
	})
	if err != nil && lastErr != nil {
		// Strip the retryable marker so the caller sees fn's error as-is.
		return out, lastErr
	}
	return out, err
}
