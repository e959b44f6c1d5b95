package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func fastConfig() Config {
	return Config{
		MaxRetries:   3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestWithBackoffSucceedsAfterRetries(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), zaptest.NewLogger(t), "test_op", func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithBackoffExhaustsRetries(t *testing.T) {
	attempts := 0
	err := WithBackoff(context.Background(), fastConfig(), zaptest.NewLogger(t), "test_op", func() error {
		attempts++
		return errors.New("permanent")
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestWithBackoffRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithBackoff(ctx, fastConfig(), zaptest.NewLogger(t), "test_op", func() error {
		return errors.New("never succeeds")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoff(t *testing.T) {
	cfg := Config{
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, time.Second, calculateBackoff(cfg, 1))
	assert.Equal(t, 2*time.Second, calculateBackoff(cfg, 2))
	assert.Equal(t, 4*time.Second, calculateBackoff(cfg, 3))
	assert.Equal(t, 10*time.Second, calculateBackoff(cfg, 10), "capped at max")

	// Jitter stays within the +-15% band.
	cfg.JitterEnabled = true
	for i := 0; i < 20; i++ {
		delay := calculateBackoff(cfg, 2)
		assert.GreaterOrEqual(t, delay, 1700*time.Millisecond)
		assert.LessOrEqual(t, delay, 2300*time.Millisecond)
	}
}
