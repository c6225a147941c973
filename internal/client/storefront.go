package client

import (
	"context"
	"net/http"

	"github.com/ashendes/storefront-demo/internal/models"
)

// CreateSession starts a visitor session and returns its id
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/sessions", "", nil, &resp); err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

// EndSession deletes a session
func (c *Client) EndSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodDelete, "/sessions/"+sessionID, "", nil, nil)
}

// Products lists the catalog with the given query parameters already encoded
func (c *Client) Products(ctx context.Context, rawQuery string) (models.ProductListResponse, error) {
	var resp models.ProductListResponse
	path := "/products"
	if rawQuery != "" {
		path += "?" + rawQuery
	}
	err := c.do(ctx, http.MethodGet, path, "", nil, &resp)
	return resp, err
}

// Product fetches one product's detail page
func (c *Client) Product(ctx context.Context, productID string) (models.ProductDetailResponse, error) {
	var resp models.ProductDetailResponse
	err := c.do(ctx, http.MethodGet, "/products/"+productID, "", nil, &resp)
	return resp, err
}

// AddItem puts a product in the session cart
func (c *Client) AddItem(ctx context.Context, sessionID string, req models.AddItemRequest) (models.CartItem, error) {
	var resp struct {
		Item models.CartItem `json:"item"`
	}
	err := c.do(ctx, http.MethodPost, "/cart/items", sessionID, req, &resp)
	return resp.Item, err
}

// Cart returns the session cart
func (c *Client) Cart(ctx context.Context, sessionID string) (models.CartResponse, error) {
	var resp models.CartResponse
	err := c.do(ctx, http.MethodGet, "/cart", sessionID, nil, &resp)
	return resp, err
}

// ApplyPromo applies a promo code to the session
func (c *Client) ApplyPromo(ctx context.Context, sessionID, code string) (models.CartResponse, error) {
	var resp models.CartResponse
	err := c.do(ctx, http.MethodPost, "/cart/promo", sessionID, models.PromoRequest{Code: code}, &resp)
	return resp, err
}

// Checkout returns the checkout summary
func (c *Client) Checkout(ctx context.Context, sessionID string) (models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	err := c.do(ctx, http.MethodGet, "/checkout", sessionID, nil, &resp)
	return resp, err
}

// SubmitShipping submits the shipping form
func (c *Client) SubmitShipping(ctx context.Context, sessionID string, d models.ShippingDetails) (models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	err := c.do(ctx, http.MethodPost, "/checkout/shipping", sessionID, d, &resp)
	return resp, err
}

// SubmitPayment submits the payment form and places the order
func (c *Client) SubmitPayment(ctx context.Context, sessionID string, d models.PaymentDetails) (models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	err := c.do(ctx, http.MethodPost, "/checkout/payment", sessionID, d, &resp)
	return resp, err
}

// Contact submits the contact form
func (c *Client) Contact(ctx context.Context, sessionID string, msg models.ContactMessage) (models.ContactTicket, error) {
	var resp models.ContactTicket
	err := c.do(ctx, http.MethodPost, "/contact", sessionID, msg, &resp)
	return resp, err
}
