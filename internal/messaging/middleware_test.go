package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     2 * time.Millisecond,
	}
}

func TestWithRetry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("should pass through on first success", func(t *testing.T) {
		calls := 0
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls++
			return nil
		}, fastRetryConfig(3))

		err := handler(ctx, []byte("k"), []byte("v"))

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("should retry until success", func(t *testing.T) {
		calls := 0
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, fastRetryConfig(3))

		err := handler(ctx, []byte("k"), []byte("v"))

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should give up after max attempts", func(t *testing.T) {
		calls := 0
		cause := errors.New("still broken")
		handler := WithRetry(func(context.Context, []byte, []byte) error {
			calls++
			return cause
		}, fastRetryConfig(3))

		err := handler(ctx, []byte("k"), []byte("v"))

		assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 3, calls)
	})

	t.Run("should stop when the context is cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		handler := WithRetry(func(context.Context, []byte, []byte) error {
			return errors.New("transient")
		}, fastRetryConfig(3))

		err := handler(cancelled, []byte("k"), []byte("v"))

		assert.ErrorIs(t, err, context.Canceled)
	})
}

type captureDLQ struct {
	key, value []byte
	err        error
	calls      int
}

func (d *captureDLQ) PublishToDLQ(_ context.Context, key, value []byte, err error) error {
	d.calls++
	d.key, d.value, d.err = key, value, err
	return nil
}

func TestWithDLQ(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful messages never reach the DLQ", func(t *testing.T) {
		dlq := &captureDLQ{}
		handler := WithDLQ(func(context.Context, []byte, []byte) error { return nil }, dlq)

		err := handler(ctx, []byte("k"), []byte("v"))

		require.NoError(t, err)
		assert.Zero(t, dlq.calls)
	})

	t.Run("failed messages go to the DLQ and the offset commits", func(t *testing.T) {
		dlq := &captureDLQ{}
		cause := errors.New("poison message")
		handler := WithDLQ(func(context.Context, []byte, []byte) error { return cause }, dlq)

		err := handler(ctx, []byte("k"), []byte("v"))

		require.NoError(t, err, "handler must swallow the error once the message is parked")
		assert.Equal(t, 1, dlq.calls)
		assert.Equal(t, []byte("v"), dlq.value)
		assert.ErrorIs(t, dlq.err, cause)
	})
}
