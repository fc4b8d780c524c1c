package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_Do_SucceedsFirstTry(t *testing.T) {
	var slept []time.Duration
	p := Policy{
		Attempts:  3,
		BaseDelay: time.Second,
		Sleep:     func(d time.Duration) { slept = append(slept, d) },
	}

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, slept, "no sleep when the first attempt succeeds")
}

func TestPolicy_Do_FailsTwiceThenSucceeds(t *testing.T) {
	var slept []time.Duration
	p := Policy{
		Attempts:  3,
		BaseDelay: time.Second,
		Sleep:     func(d time.Duration) { slept = append(slept, d) },
	}

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
}

func TestPolicy_Do_ExhaustsAttempts(t *testing.T) {
	var slept []time.Duration
	p := Policy{
		Attempts:  3,
		BaseDelay: time.Second,
		Sleep:     func(d time.Duration) { slept = append(slept, d) },
	}

	wantErr := errors.New("persistent failure")
	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return wantErr
	})

	assert.Equal(t, wantErr, err, "last error propagates unwrapped")
	assert.Equal(t, 3, calls)
	// No sleep after the final attempt.
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, slept)
}

func TestPolicy_Do_ZeroAttemptsBehavesAsOne(t *testing.T) {
	p := Policy{Sleep: func(time.Duration) {}}

	calls := 0
	err := p.Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("boom")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestPolicy_Do_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := Policy{Attempts: 3, Sleep: func(time.Duration) {}}

	calls := 0
	err := p.Do(ctx, func(context.Context) error {
		calls++
		return errors.New("should not run")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestPolicy_Do_CancelBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	wantErr := errors.New("transient")
	p := Policy{
		Attempts:  5,
		BaseDelay: time.Second,
		Sleep:     func(time.Duration) { cancel() },
	}

	calls := 0
	err := p.Do(ctx, func(context.Context) error {
		calls++
		return wantErr
	})

	assert.Equal(t, wantErr, err, "last attempt error wins over ctx error")
	assert.Equal(t, 1, calls)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.Attempts)
	assert.Equal(t, time.Second, p.BaseDelay)
}
