// Package retry wraps data-layer calls with bounded exponential backoff.
// Domain errors (validation, conflict, not-found, invalid state) are never
// retried; only transient connection failures are.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Marwanegoudani/nextgenfut/internal/errs"
)

const (
	// maxRetries bounds the extra attempts after the first call.
	maxRetries = 2
	// baseDelay is the initial backoff interval.
	baseDelay = 200 * time.Millisecond
)

// Do runs op with bounded exponential backoff. When every attempt fails with
// a transient error the last failure is surfaced as a timeout. Re-running a
// write after a failed-but-committed attempt can duplicate records, so ops
// passed here must tolerate at-least-once execution at the data layer.
func Do[T any](ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = baseDelay

	out, err := backoff.RetryWithData(func() (T, error) {
		v, err := op(ctx)
		if err != nil && !errs.IsTransient(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))

	if err != nil && errs.IsTransient(err) {
		return out, errs.Timeout("operation failed after retries", err)
	}
	return out, err
}
