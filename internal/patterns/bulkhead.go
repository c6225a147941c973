package patterns

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ashendes/storefront-demo/internal/metrics"
)

// ErrBulkheadFull is returned when no slot frees up within the acquire timeout
var ErrBulkheadFull = errors.New("bulkhead full")

// DefaultAcquireTimeout bounds how long Execute waits for a slot
const DefaultAcquireTimeout = 1 * time.Second

// Bulkhead implements the bulkhead pattern for resource isolation
type Bulkhead struct {
	semaphore      chan struct{}
	name           string
	service        string
	acquireTimeout time.Duration
}

// NewBulkhead creates a new bulkhead with specified capacity
func NewBulkhead(size int, name, service string) *Bulkhead {
	if size < 1 {
		size = 1
	}
	return &Bulkhead{
		semaphore:      make(chan struct{}, size),
		name:           name,
		service:        service,
		acquireTimeout: DefaultAcquireTimeout,
	}
}

// WithAcquireTimeout changes how long Execute waits for a free slot
func (b *Bulkhead) WithAcquireTimeout(d time.Duration) *Bulkhead {
	b.acquireTimeout = d
	return b
}

// Execute runs fn once a slot is free. It gives up when ctx ends or the
// acquire timeout passes first.
func (b *Bulkhead) Execute(ctx context.Context, fn func(context.Context) error) error {
	timer := time.NewTimer(b.acquireTimeout)
	defer timer.Stop()

	select {
	case b.semaphore <- struct{}{}:
		metrics.BulkheadActiveRequests.WithLabelValues(b.service, b.name).Inc()

		defer func() {
			<-b.semaphore
			metrics.BulkheadActiveRequests.WithLabelValues(b.service, b.name).Dec()
		}()

		return fn(ctx)

	case <-timer.C:
		metrics.BulkheadRejectedRequests.WithLabelValues(b.service, b.name).Inc()
		return fmt.Errorf("bulkhead %s: %w", b.name, ErrBulkheadFull)

	case <-ctx.Done():
		return ctx.Err()
	}
}

// InFlight is the number of occupied slots
func (b *Bulkhead) InFlight() int {
	return len(b.semaphore)
}

// GetName returns the bulkhead name
func (b *Bulkhead) GetName() string {
	return b.name
}
