package patterns

import (
	"context"
	"time"
)

// DefaultTimeout is the default timeout for HTTP requests
const DefaultTimeout = 3 * time.Second

// SubmitTimeout covers calls that wait out a simulated submission delay
const SubmitTimeout = 10 * time.Second

// ShutdownTimeout bounds graceful server shutdown
const ShutdownTimeout = 5 * time.Second

// WithTimeout derives a context that fails fast after duration
func WithTimeout(parent context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, duration)
}

// Sleep waits for d or until ctx ends, whichever is first
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
