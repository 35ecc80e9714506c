package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fast() []Option {
	return []Option{WithInitialDelay(time.Millisecond), WithMaxDelay(time.Millisecond), WithJitter(0)}
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	calls := 0
	retried := 0
	opts := append(fast(), WithMaxAttempts(3), WithOnRetry(func(int, error, time.Duration) { retried++ }))

	err := Do(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, opts...)

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, retried)
}

func TestDo_ReturnsLastError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return errors.New("still down")
	}, append(fast(), WithMaxAttempts(2))...)

	assert.EqualError(t, err, "still down")
	assert.Equal(t, 2, calls)
}

func TestDo_PermanentStops(t *testing.T) {
	bad := errors.New("bad url")
	calls := 0
	err := Do(context.Background(), func(context.Context) error {
		calls++
		return Permanent(bad)
	}, fast()...)

	assert.Same(t, bad, err)
	assert.Equal(t, 1, calls)
}

func TestDo_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValue(t *testing.T) {
	got, err := Value(context.Background(), func(context.Context) (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestPolicy_DelayIsCapped(t *testing.T) {
	p := Policy{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}
	assert.Equal(t, 100*time.Millisecond, p.delay(1))
	assert.Equal(t, 200*time.Millisecond, p.delay(2))
	assert.Equal(t, 300*time.Millisecond, p.delay(3))
}
