package patterns

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkheadRejectsWhenFull(t *testing.T) {
	b := NewBulkhead(1, "submit", "test").WithAcquireTimeout(20 * time.Millisecond)

	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = b.Execute(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started
	assert.Equal(t, 1, b.InFlight())

	err := b.Execute(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBulkheadFull)

	close(release)
}

func TestBulkheadHonoursContext(t *testing.T) {
	b := NewBulkhead(1, "submit", "test")
	b.semaphore <- struct{}{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := b.Execute(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBulkheadPassesErrorThrough(t *testing.T) {
	boom := errors.New("boom")
	err := NewBulkhead(2, "submit", "test").Execute(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestCircuitBreakerTrips(t *testing.T) {
	cb := NewCircuitBreakerWithSettings("storefront", "test", BreakerSettings{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  2,
		FailureRatio: 0.5,
	})
	fail := func() (interface{}, error) { return nil, errors.New("down") }

	for i := 0; i < 2; i++ {
		_, err := cb.Execute(fail)
		require.Error(t, err)
	}
	assert.Equal(t, "open", cb.GetState())
	assert.Equal(t, 1, cb.GetStateValue())

	_, err := cb.Execute(fail)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.ErrorIs(t, FormatError("storefront", err), ErrCircuitOpen)
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
