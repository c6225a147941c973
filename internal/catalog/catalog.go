// Package catalog serves the storefront's product listing: filtering, sorting,
// facet counts, product detail and search.
package catalog

import (
	"errors"
	"sort"

	"github.com/ashendes/storefront-demo/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// DefaultMaxQuantity is the per-line cap for catalog products
const DefaultMaxQuantity = 10

// Catalog is an immutable product set; safe for concurrent reads
type Catalog struct {
	products []models.Product
	byID     map[string]int
	details  map[string]models.ProductDetail
}

// New builds a catalog from products. details supplies full records for
// some products; the rest get a derived one.
func New(products []models.Product, details map[string]models.ProductDetail) *Catalog {
	c := &Catalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]int, len(products)),
		details:  make(map[string]models.ProductDetail, len(products)),
	}
	for i, p := range products {
		if p.MaxQuantity <= 0 {
			p.MaxQuantity = DefaultMaxQuantity
		}
		c.products[i] = p
		c.byID[p.ID] = i

		if d, ok := details[p.ID]; ok {
			d.Product = p
			c.details[p.ID] = d
		} else {
			c.details[p.ID] = derivedDetail(p)
		}
	}
	return c
}

// NewSeeded returns the demo catalog
func NewSeeded() *Catalog {
	products := seedProducts()
	return New(products, map[string]models.ProductDetail{
		"1": flagshipDetail(products[0]),
	})
}

// All returns every product in catalog order
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Product looks up a listing entry
func (c *Catalog) Product(id string) (models.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// Detail looks up a product's full record
func (c *Catalog) Detail(id string) (models.ProductDetail, error) {
	d, ok := c.details[id]
	if !ok {
		return models.ProductDetail{}, ErrProductNotFound
	}
	return d, nil
}

// Related returns up to limit other products, those sharing the category or
// color first, each group by popularity.
func (c *Catalog) Related(id string, limit int) []models.Product {
	p, err := c.Product(id)
	if err != nil {
		return nil
	}

	var near, far []models.Product
	for _, other := range c.products {
		if other.ID == p.ID {
			continue
		}
		if other.Category == p.Category || other.Color == p.Color {
			near = append(near, other)
		} else {
			far = append(far, other)
		}
	}
	sortProducts(near, SortPopularity)
	sortProducts(far, SortPopularity)

	out := append(near, far...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Bestsellers returns the limit most reviewed products
func (c *Catalog) Bestsellers(limit int) []models.Product {
	out := c.All()
	sortProducts(out, SortPopularity)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// NewArrivals returns the new-flagged products in catalog order
func (c *Catalog) NewArrivals() []models.Product {
	var out []models.Product
	for _, p := range c.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// Collections lists the distinct categories in catalog order
func (c *Catalog) Collections() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func sortProducts(products []models.Product, order string) {
	var less func(a, b models.Product) bool
	switch order {
	case SortPriceLow:
		less = func(a, b models.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b models.Product) bool { return a.Price > b.Price }
	case SortRating:
		less = func(a, b models.Product) bool { return a.Rating > b.Rating }
	case SortNewest:
		less = func(a, b models.Product) bool { return a.IsNew && !b.IsNew }
	default:
		less = func(a, b models.Product) bool { return a.ReviewCount > b.ReviewCount }
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
}
