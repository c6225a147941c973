package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ashendes/storefront-demo/internal/models"
)

var ErrSuperseded = errors.New("search superseded by a newer query")

// MinQueryLength is the shortest query that produces results
const MinQueryLength = 2

// DefaultDebounce is the delay before a query resolves
const DefaultDebounce = 300 * time.Millisecond

// Search matches q case-insensitively against name, category and material
func (c *Catalog) Search(q string) []models.SearchResult {
	q = strings.ToLower(strings.TrimSpace(q))
	if len([]rune(q)) < MinQueryLength {
		return []models.SearchResult{}
	}

	results := []models.SearchResult{}
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Material), q) {
			results = append(results, models.SearchResult{
				ID:       p.ID,
				Name:     p.Name,
				Category: p.Category,
				Price:    p.Price.Dollars(),
				Image:    p.Image,
				Path:     "/product-detail?id=" + p.ID,
			})
		}
	}
	return results
}

// Debouncer holds at most one pending wait. Starting a new wait releases the
// previous one with ErrSuperseded.
type Debouncer struct {
	delay   time.Duration
	pending chan struct{}
	mutex   sync.Mutex
}

// NewDebouncer creates a debouncer with the given delay
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Wait blocks for the debounce delay. It returns ErrSuperseded if another
// Wait starts (or Stop is called) first, or ctx's error if ctx ends first.
func (d *Debouncer) Wait(ctx context.Context) error {
	d.mutex.Lock()
	if d.pending != nil {
		close(d.pending)
	}
	mine := make(chan struct{})
	d.pending = mine
	d.mutex.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		if !d.release(mine) {
			return ErrSuperseded
		}
		return nil
	case <-mine:
		return ErrSuperseded
	case <-ctx.Done():
		d.release(mine)
		return ctx.Err()
	}
}

// Stop supersedes the pending wait, if any
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.pending != nil {
		close(d.pending)
		d.pending = nil
	}
}

// release clears ch if it is still the pending wait, reporting whether it was
func (d *Debouncer) release(ch chan struct{}) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.pending != ch {
		return false
	}
	d.pending = nil
	return true
}

// DebouncedSearch waits out d before running the search. Only the most recent
// call on d produces results.
func (c *Catalog) DebouncedSearch(ctx context.Context, d *Debouncer, q string) ([]models.SearchResult, error) {
	if err := d.Wait(ctx); err != nil {
		return nil, err
	}
	return c.Search(q), nil
}
