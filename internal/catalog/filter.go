package catalog

import (
	"strconv"
	"strings"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
)

// Sort orders
const (
	SortPopularity = "popularity"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortRating     = "rating"
	SortNewest     = "newest"
)

// SortOptions in dropdown order
var SortOptions = []models.SortOption{
	{ID: SortPopularity, Label: "Most Popular"},
	{ID: SortPriceLow, Label: "Price: Low to High"},
	{ID: SortPriceHigh, Label: "Price: High to Low"},
	{ID: SortNewest, Label: "Newest First"},
	{ID: SortRating, Label: "Highest Rated"},
}

// DefaultPriceRange is the unfiltered price window
var DefaultPriceRange = models.PriceRange{Min: 0, Max: 500}

var (
	categoryOptions = []models.FilterOption{
		{ID: "necklaces", Label: "Necklaces"},
		{ID: "earrings", Label: "Earrings"},
		{ID: "bracelets", Label: "Bracelets"},
		{ID: "rings", Label: "Rings"},
	}
	materialOptions = []models.FilterOption{
		{ID: "gold", Label: "Gold Plated"},
		{ID: "silver", Label: "Silver Plated"},
		{ID: "rose-gold", Label: "Rose Gold Plated"},
		{ID: "mixed", Label: "Mixed Metals"},
	}
	colorOptions = []models.FilterOption{
		{ID: "gold", Label: "Gold"},
		{ID: "silver", Label: "Silver"},
		{ID: "rose-gold", Label: "Rose Gold"},
		{ID: "multi", Label: "Multi"},
	}
)

// Query is a listing request. The zero value matches nothing on price; use NewQuery.
type Query struct {
	Categories []string
	Materials  []string
	Colors     []string
	MinPrice   pricing.Cents
	MaxPrice   pricing.Cents
	Sort       string
}

// NewQuery returns a query with the default price window and sort
func NewQuery() Query {
	return Query{
		MinPrice: pricing.FromDollars(DefaultPriceRange.Min),
		MaxPrice: pricing.FromDollars(DefaultPriceRange.Max),
		Sort:     SortPopularity,
	}
}

// NormalizeID maps a filter id to the form compared against product
// attributes: "Rose-Gold" -> "rose gold".
func NormalizeID(id string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "-", " ")
}

// Matches reports whether p passes every filter of q
func (q Query) Matches(p models.Product) bool {
	if len(q.Categories) > 0 && !anyOf(q.Categories, func(id string) bool {
		return strings.ToLower(p.Category) == NormalizeID(id)
	}) {
		return false
	}
	if len(q.Materials) > 0 && !anyOf(q.Materials, func(id string) bool {
		return strings.Contains(strings.ToLower(p.Material), NormalizeID(id))
	}) {
		return false
	}
	if len(q.Colors) > 0 && !anyOf(q.Colors, func(id string) bool {
		return strings.ToLower(p.Color) == NormalizeID(id)
	}) {
		return false
	}
	return p.Price >= q.MinPrice && p.Price <= q.MaxPrice
}

// Filter returns the matching products in q's sort order. Unknown sorts fall
// back to popularity.
func (c *Catalog) Filter(q Query) []models.Product {
	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	sortProducts(out, q.Sort)
	return out
}

// Facets returns the category, material and color options with counts. Each
// count is the result size of that option selected alone.
func (c *Catalog) Facets() (categories, materials, colors []models.FilterOption) {
	count := func(opts []models.FilterOption, set func(*Query, string)) []models.FilterOption {
		out := make([]models.FilterOption, len(opts))
		for i, opt := range opts {
			q := NewQuery()
			set(&q, opt.ID)
			opt.Count = len(c.Filter(q))
			out[i] = opt
		}
		return out
	}

	categories = count(categoryOptions, func(q *Query, id string) { q.Categories = []string{id} })
	materials = count(materialOptions, func(q *Query, id string) { q.Materials = []string{id} })
	colors = count(colorOptions, func(q *Query, id string) { q.Colors = []string{id} })
	return categories, materials, colors
}

// ActiveFilters returns a removable chip per selected known option, plus a
// price chip when the window differs from the default.
func ActiveFilters(q Query) []models.ActiveFilter {
	filters := []models.ActiveFilter{}

	chips := func(ids []string, opts []models.FilterOption, kind string) {
		for _, id := range ids {
			for _, opt := range opts {
				if opt.ID == id {
					filters = append(filters, models.ActiveFilter{ID: id, Type: kind, Label: opt.Label})
					break
				}
			}
		}
	}
	chips(q.Categories, categoryOptions, "category")
	chips(q.Materials, materialOptions, "material")
	chips(q.Colors, colorOptions, "color")

	def := NewQuery()
	if q.MinPrice != def.MinPrice || q.MaxPrice != def.MaxPrice {
		filters = append(filters, models.ActiveFilter{
			ID:    "price",
			Type:  "price",
			Label: "$" + dollars(q.MinPrice) + " - $" + dollars(q.MaxPrice),
		})
	}
	return filters
}

// List runs q and assembles the listing page
func (c *Catalog) List(q Query) models.ProductListResponse {
	products := c.Filter(q)
	categories, materials, colors := c.Facets()

	sortID := q.Sort
	if !validSort(sortID) {
		sortID = SortPopularity
	}

	return models.ProductListResponse{
		Products:      products,
		ResultCount:   len(products),
		Sort:          sortID,
		SortOptions:   SortOptions,
		Categories:    categories,
		Materials:     materials,
		Colors:        colors,
		PriceRange:    DefaultPriceRange,
		ActiveFilters: ActiveFilters(q),
	}
}

func validSort(id string) bool {
	for _, opt := range SortOptions {
		if opt.ID == id {
			return true
		}
	}
	return false
}

func dollars(c pricing.Cents) string {
	return strconv.FormatFloat(c.Dollars(), 'f', -1, 64)
}

func anyOf(ids []string, fn func(string) bool) bool {
	for _, id := range ids {
		if fn(id) {
			return true
		}
	}
	return false
}
