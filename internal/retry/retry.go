// Package retry implements a bounded exponential-backoff retry policy.
//
// The policy is deliberately simple: every failure is treated as transient,
// there is no jitter, and the delay doubles between attempts (1s, 2s, 4s by
// default). The sleep function is injectable so tests can drive the policy
// without wall-clock delays.
package retry

import (
	"context"
	"time"
)

// Default policy values.
const (
	// DefaultAttempts is the total number of tries (not re-tries).
	DefaultAttempts = 3

	// DefaultBaseDelay is the delay before the second attempt.
	DefaultBaseDelay = 1 * time.Second
)

// Policy describes a bounded exponential-backoff schedule.
type Policy struct {
	// Attempts is the total number of tries. Values below 1 behave as 1.
	Attempts int

	// BaseDelay is the delay before the first retry; each subsequent
	// delay doubles.
	BaseDelay time.Duration

	// Sleep is the sleep function. Defaults to time.Sleep when nil.
	Sleep func(time.Duration)
}

// DefaultPolicy returns the standard 3-attempt, 1s-base schedule.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:  DefaultAttempts,
		BaseDelay: DefaultBaseDelay,
	}
}

// Do runs fn until it succeeds or the attempt budget is exhausted.
// The last error is returned unwrapped; there is no sleep after the final
// attempt. A cancelled context stops the schedule between attempts.
func (p Policy) Do(ctx context.Context, fn func(context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	delay := p.BaseDelay

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if i < attempts-1 {
			sleep(delay)
			delay *= 2
		}
	}

	return lastErr
}
