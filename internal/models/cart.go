package models

import "github.com/ashendes/storefront-demo/internal/pricing"

// SelectedOptions are the variant attributes chosen for a line item
type SelectedOptions struct {
	Size  string `json:"size,omitempty"`
	Color string `json:"color,omitempty"`
}

// IsZero reports whether no option was chosen
func (o SelectedOptions) IsZero() bool {
	return o.Size == "" && o.Color == ""
}

// CartItem represents one line item in the cart
type CartItem struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	Name            string           `json:"name"`
	Price           pricing.Cents    `json:"price"`
	Quantity        int              `json:"quantity"`
	MaxQuantity     int              `json:"max_quantity"`
	Image           string           `json:"image"`
	Alt             string           `json:"alt"`
	Category        string           `json:"category"`
	SelectedOptions *SelectedOptions `json:"selected_options,omitempty"`
}

// LineTotal is price times quantity
func (i CartItem) LineTotal() pricing.Cents {
	return i.Price.Times(i.Quantity)
}

// AddItemRequest represents a request to add a product to the cart
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// UpdateQuantityRequest sets a line item's quantity directly
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PromoRequest applies a promo code
type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// ShippingEstimateRequest asks for the cart page's shipping estimate
type ShippingEstimateRequest struct {
	Country string `json:"country" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zip_code" binding:"required"`
}

// CartResponse is the cart page payload
type CartResponse struct {
	Items       []CartItem        `json:"items"`
	ItemCount   int               `json:"item_count"`
	Pricing     pricing.Breakdown `json:"pricing"`
	Recommended []Product         `json:"recommended,omitempty"`
}
