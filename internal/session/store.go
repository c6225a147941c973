package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ashendes/storefront-demo/internal/cart"
	"github.com/ashendes/storefront-demo/internal/catalog"
	"github.com/ashendes/storefront-demo/internal/checkout"
	"github.com/ashendes/storefront-demo/internal/metrics"
	"github.com/ashendes/storefront-demo/internal/patterns"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session lives
const DefaultTTL = 30 * time.Minute

// Options configures the sessions a Store creates
type Options struct {
	TTL             time.Duration
	SeedCart        bool
	Table           *pricing.Table
	Validator       *validation.Validator
	ProcessingDelay time.Duration
	SearchDebounce  time.Duration
	// Bulkhead bounds concurrent payment processing across sessions
	Bulkhead *patterns.Bulkhead
	Now      func() time.Time
}

// Store holds the live sessions. Safe for concurrent use.
type Store struct {
	opts     Options
	sessions map[string]*Session
	mutex    sync.RWMutex
}

// NewStore creates an empty store
func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Table == nil {
		opts.Table = pricing.DefaultTable()
	}
	if opts.Validator == nil {
		opts.Validator = validation.New()
	}
	if opts.SearchDebounce <= 0 {
		opts.SearchDebounce = catalog.DefaultDebounce
	}
	if opts.Bulkhead == nil {
		opts.Bulkhead = patterns.NewBulkhead(10, "payment", "storefront")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		opts:     opts,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session
func (st *Store) Create() *Session {
	now := st.opts.Now()

	c := cart.New()
	if st.opts.SeedCart {
		c = cart.NewSeeded()
	}

	s := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Cart:      c,
		Scheduler: NewScheduler(),
		Search:    catalog.NewDebouncer(st.opts.SearchDebounce),
		lastSeen:  now,
		wishlist:  make(map[string]bool),
	}
	s.Checkout = checkout.New(checkout.Config{
		SessionID:       s.ID,
		Table:           st.opts.Table,
		Validator:       st.opts.Validator,
		Cart:            c,
		Promo:           s.Promo,
		ProcessingDelay: st.opts.ProcessingDelay,
		Bulkhead:        st.opts.Bulkhead,
		Now:             st.opts.Now,
	})

	st.mutex.Lock()
	st.sessions[s.ID] = s
	st.mutex.Unlock()

	metrics.SessionsActive.Inc()
	log.WithField("session_id", s.ID).Info("Session created")
	return s
}

// Get returns a live session and marks it as used
func (st *Store) Get(id string) (*Session, error) {
	st.mutex.RLock()
	s, ok := st.sessions[id]
	st.mutex.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(st.opts.Now())
	return s, nil
}

// Delete tears a session down, cancelling its pending tasks
func (st *Store) Delete(id string) error {
	st.mutex.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mutex.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	st.teardown(s, "deleted")
	return nil
}

// Len is the number of live sessions
func (st *Store) Len() int {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return len(st.sessions)
}

// Sweep tears down every session idle for longer than the TTL and returns
// how many it removed.
func (st *Store) Sweep() int {
	cutoff := st.opts.Now().Add(-st.opts.TTL)

	var expired []*Session
	st.mutex.Lock()
	for id, s := range st.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(st.sessions, id)
		}
	}
	st.mutex.Unlock()

	for _, s := range expired {
		st.teardown(s, "expired")
	}
	return len(expired)
}

// Run sweeps every interval until ctx ends, then tears down all sessions
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			st.CloseAll()
			return
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.WithField("expired", n).Info("Expired idle sessions")
			}
		}
	}
}

// CloseAll tears down every session
func (st *Store) CloseAll() {
	st.mutex.Lock()
	all := st.sessions
	st.sessions = make(map[string]*Session)
	st.mutex.Unlock()

	for _, s := range all {
		st.teardown(s, "shutdown")
	}
}

func (st *Store) teardown(s *Session, reason string) {
	cancelled := s.close()
	metrics.SessionsActive.Dec()
	metrics.SessionsClosed.WithLabelValues(reason).Inc()

	log.WithFields(log.Fields{
		"session_id": s.ID,
		"reason":     reason,
		"cancelled":  len(cancelled),
	}).Info("Session closed")
}
