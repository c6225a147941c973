// Package cart holds a session's shopping cart line items.
package cart

import (
	"errors"
	"sync"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/google/uuid"
)

var (
	ErrItemNotFound       = errors.New("cart item not found")
	ErrQuantityOutOfRange = errors.New("quantity out of range")
)

// DefaultMaxQuantity applies to products that don't set their own limit
const DefaultMaxQuantity = 10

// Cart is an ordered list of line items, safe for concurrent use
type Cart struct {
	items []*models.CartItem
	mutex sync.RWMutex
}

// New returns an empty cart
func New() *Cart {
	return &Cart{}
}

// NewSeeded returns a cart holding the demo line items
func NewSeeded() *Cart {
	c := New()
	for _, item := range seedItems() {
		item := item
		c.items = append(c.items, &item)
	}
	return c
}

// Add puts quantity of product in the cart. A line with the same product and
// options is merged into; the result is clamped to [1, max quantity].
func (c *Cart) Add(p models.Product, quantity int, opts models.SelectedOptions) models.CartItem {
	limit := p.MaxQuantity
	if limit <= 0 {
		limit = DefaultMaxQuantity
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, item := range c.items {
		if item.ProductID == p.ID && sameOptions(item.SelectedOptions, opts) {
			item.Quantity = clamp(item.Quantity+quantity, 1, item.MaxQuantity)
			return *item
		}
	}

	item := &models.CartItem{
		ID:          uuid.New().String(),
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    clamp(quantity, 1, limit),
		MaxQuantity: limit,
		Image:       p.Image,
		Alt:         p.Alt,
		Category:    p.Category,
	}
	if !opts.IsZero() {
		item.SelectedOptions = &opts
	}
	c.items = append(c.items, item)
	return *item
}

// Increment raises a line's quantity by one, up to its max
func (c *Cart) Increment(id string) (models.CartItem, error) {
	return c.update(id, func(item *models.CartItem) error {
		item.Quantity = clamp(item.Quantity+1, 1, item.MaxQuantity)
		return nil
	})
}

// Decrement lowers a line's quantity by one, never below one
func (c *Cart) Decrement(id string) (models.CartItem, error) {
	return c.update(id, func(item *models.CartItem) error {
		item.Quantity = clamp(item.Quantity-1, 1, item.MaxQuantity)
		return nil
	})
}

// SetQuantity sets a line's quantity; out-of-range values leave it unchanged
func (c *Cart) SetQuantity(id string, quantity int) (models.CartItem, error) {
	return c.update(id, func(item *models.CartItem) error {
		if quantity < 1 || quantity > item.MaxQuantity {
			return ErrQuantityOutOfRange
		}
		item.Quantity = quantity
		return nil
	})
}

// Remove deletes a line
func (c *Cart) Remove(id string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mutex.Lock()
	c.items = nil
	c.mutex.Unlock()
}

// Items returns a copy of the line items in insertion order
func (c *Cart) Items() []models.CartItem {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	out := make([]models.CartItem, 0, len(c.items))
	for _, item := range c.items {
		copied := *item
		if item.SelectedOptions != nil {
			opts := *item.SelectedOptions
			copied.SelectedOptions = &opts
		}
		out = append(out, copied)
	}
	return out
}

// Lines returns the cart as pricing input
func (c *Cart) Lines() []pricing.Line {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	lines := make([]pricing.Line, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, pricing.Line{UnitPrice: item.Price, Quantity: item.Quantity})
	}
	return lines
}

// Subtotal sums price times quantity over every line
func (c *Cart) Subtotal() pricing.Cents {
	return pricing.Subtotal(c.Lines())
}

// Count is the total quantity across lines
func (c *Cart) Count() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Empty reports whether the cart has no lines
func (c *Cart) Empty() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.items) == 0
}

func (c *Cart) update(id string, fn func(*models.CartItem) error) (models.CartItem, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	for _, item := range c.items {
		if item.ID == id {
			if err := fn(item); err != nil {
				return *item, err
			}
			return *item, nil
		}
	}
	return models.CartItem{}, ErrItemNotFound
}

func sameOptions(a *models.SelectedOptions, b models.SelectedOptions) bool {
	if a == nil {
		return b.IsZero()
	}
	return *a == b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
