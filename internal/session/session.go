// Package session scopes storefront state to a visitor. Every session owns its
// cart, wishlist, promo, checkout flow and pending delayed tasks; deleting or
// expiring the session cancels those tasks.
package session

import (
	"sort"
	"sync"
	"time"

	"github.com/ashendes/storefront-demo/internal/cart"
	"github.com/ashendes/storefront-demo/internal/catalog"
	"github.com/ashendes/storefront-demo/internal/checkout"
	"github.com/ashendes/storefront-demo/internal/pricing"
)

// Session is one visitor's storefront state
type Session struct {
	ID        string
	CreatedAt time.Time

	Cart      *cart.Cart
	Checkout  *checkout.Flow
	Scheduler *Scheduler
	Search    *catalog.Debouncer

	mutex    sync.RWMutex
	lastSeen time.Time
	wishlist map[string]bool
	promo    *pricing.Promo
	estimate *pricing.Cents
}

// ToggleWishlist adds or removes a product, reporting whether it is now saved
func (s *Session) ToggleWishlist(productID string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.wishlist[productID] {
		delete(s.wishlist, productID)
		return false
	}
	s.wishlist[productID] = true
	return true
}

// InWishlist reports whether a product is saved
func (s *Session) InWishlist(productID string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.wishlist[productID]
}

// Wishlist returns the saved product ids, sorted
func (s *Session) Wishlist() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	ids := make([]string, 0, len(s.wishlist))
	for id := range s.wishlist {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ApplyPromo looks code up in table and makes it the session's promo. An
// unknown code returns pricing.ErrUnknownPromo and keeps the current promo.
func (s *Session) ApplyPromo(table *pricing.Table, code string) (pricing.Promo, error) {
	p, err := table.LookupPromo(code)
	if err != nil {
		return pricing.Promo{}, err
	}

	s.mutex.Lock()
	s.promo = &p
	s.mutex.Unlock()
	return p, nil
}

// Promo returns the applied promo, nil if none
func (s *Session) Promo() *pricing.Promo {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.promo == nil {
		return nil
	}
	p := *s.promo
	return &p
}

// SetShippingEstimate records the cart page's shipping estimate
func (s *Session) SetShippingEstimate(c pricing.Cents) {
	s.mutex.Lock()
	s.estimate = &c
	s.mutex.Unlock()
}

// ShippingEstimate returns the recorded estimate, if one was requested
func (s *Session) ShippingEstimate() (pricing.Cents, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.estimate == nil {
		return 0, false
	}
	return *s.estimate, true
}

// CartPricing is the cart page breakdown: estimated shipping (if requested),
// tax and the session promo. Gift wrap is only chosen at checkout.
func (s *Session) CartPricing(table *pricing.Table) pricing.Breakdown {
	shipping, _ := s.ShippingEstimate()
	return table.Compute(pricing.Input{
		Lines:    s.Cart.Lines(),
		Shipping: shipping,
		Promo:    s.Promo(),
	})
}

// LastSeen is when the session was last used
func (s *Session) LastSeen() time.Time {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mutex.Lock()
	s.lastSeen = now
	s.mutex.Unlock()
}

// close cancels everything the session has pending
func (s *Session) close() []string {
	s.Checkout.Close()
	s.Search.Stop()
	return s.Scheduler.Close()
}
