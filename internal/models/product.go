package models

import (
	"math"

	"github.com/ashendes/storefront-demo/internal/pricing"
)

// Product is a catalog listing entry
type Product struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Price         pricing.Cents `json:"price"`
	OriginalPrice pricing.Cents `json:"original_price,omitempty"`
	Image         string        `json:"image"`
	Alt           string        `json:"alt"`
	Rating        float64       `json:"rating"`
	ReviewCount   int           `json:"review_count"`
	Category      string        `json:"category"`
	Material      string        `json:"material"`
	Color         string        `json:"color"`
	IsNew         bool          `json:"is_new"`
	RequiresSize  bool          `json:"requires_size"`
	MaxQuantity   int           `json:"max_quantity"`
}

// DiscountPercent is the sale markdown relative to the original price, 0 when not on sale
func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round(float64(p.OriginalPrice-p.Price) / float64(p.OriginalPrice) * 100))
}

// ProductImage is one gallery image
type ProductImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// SizeOption is a selectable size on the detail page
type SizeOption struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// Review is a customer review
type Review struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Rating   int    `json:"rating"`
	Date     string `json:"date"`
	Comment  string `json:"comment"`
	Verified bool   `json:"verified"`
}

// ProductDetail is everything the product detail page shows
type ProductDetail struct {
	Product
	SKU              string         `json:"sku"`
	Availability     string         `json:"availability"`
	MaterialDetail   string         `json:"material_detail"`
	Images           []ProductImage `json:"images"`
	Sizes            []SizeOption   `json:"sizes,omitempty"`
	Description      string         `json:"description"`
	CareInstructions []string       `json:"care_instructions"`
	Reviews          []Review       `json:"reviews"`
	ShippingInfo     string         `json:"shipping_info"`
}

// AverageRating averages the review ratings, 0 without reviews
func (d ProductDetail) AverageRating() float64 {
	if len(d.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range d.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(d.Reviews))
}

// ProductDetailResponse is returned by the product detail endpoint
type ProductDetailResponse struct {
	ProductDetail
	DiscountPercent int       `json:"discount_percent"`
	AverageRating   float64   `json:"average_rating"`
	Related         []Product `json:"related"`
	InWishlist      bool      `json:"in_wishlist"`
}
