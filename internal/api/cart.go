package api

import (
	"net/http"

	"github.com/ashendes/storefront-demo/internal/metrics"
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/session"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const recommendedLimit = 4

func (h *Handler) cartResponse(s *session.Session) models.CartResponse {
	resp := models.CartResponse{
		Items:     s.Cart.Items(),
		ItemCount: s.Cart.Count(),
		Pricing:   s.CartPricing(h.table),
	}
	if s.Cart.Empty() {
		resp.Recommended = h.catalog.Bestsellers(recommendedLimit)
	}
	return resp
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse(currentSession(c)))
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	p, err := h.catalog.Product(req.ProductID)
	if err != nil {
		metrics.CartOperations.WithLabelValues("add", "not_found").Inc()
		respondFailure(c, err)
		return
	}
	if p.RequiresSize && req.Size == "" {
		metrics.CartOperations.WithLabelValues("add", "invalid").Inc()
		respondFailure(c, &validation.Error{Fields: validation.FieldErrors{
			"size": {Kind: validation.MissingField, Message: "Please select a size"},
		}})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	s := currentSession(c)
	item := s.Cart.Add(p, req.Quantity, models.SelectedOptions{Size: req.Size, Color: req.Color})
	metrics.CartOperations.WithLabelValues("add", "success").Inc()

	log.WithFields(log.Fields{
		"session_id": s.ID,
		"product_id": p.ID,
		"item_id":    item.ID,
		"quantity":   item.Quantity,
	}).Info("Item added to cart")

	c.JSON(http.StatusCreated, gin.H{"item": item, "cart": h.cartResponse(s)})
}

func (h *Handler) incrementCartItem(c *gin.Context) {
	s := currentSession(c)
	h.respondCartUpdate(c, "increment", func() (models.CartItem, error) {
		return s.Cart.Increment(c.Param("itemId"))
	})
}

func (h *Handler) decrementCartItem(c *gin.Context) {
	s := currentSession(c)
	h.respondCartUpdate(c, "decrement", func() (models.CartItem, error) {
		return s.Cart.Decrement(c.Param("itemId"))
	})
}

func (h *Handler) setCartItemQuantity(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	s := currentSession(c)
	h.respondCartUpdate(c, "set_quantity", func() (models.CartItem, error) {
		return s.Cart.SetQuantity(c.Param("itemId"), req.Quantity)
	})
}

func (h *Handler) respondCartUpdate(c *gin.Context, op string, fn func() (models.CartItem, error)) {
	item, err := fn()
	if err != nil {
		metrics.CartOperations.WithLabelValues(op, "failure").Inc()
		respondFailure(c, err)
		return
	}
	metrics.CartOperations.WithLabelValues(op, "success").Inc()
	c.JSON(http.StatusOK, gin.H{"item": item, "cart": h.cartResponse(currentSession(c))})
}

func (h *Handler) removeCartItem(c *gin.Context) {
	s := currentSession(c)
	if err := s.Cart.Remove(c.Param("itemId")); err != nil {
		metrics.CartOperations.WithLabelValues("remove", "failure").Inc()
		respondFailure(c, err)
		return
	}
	metrics.CartOperations.WithLabelValues("remove", "success").Inc()
	c.JSON(http.StatusOK, h.cartResponse(s))
}

func (h *Handler) applyCartPromo(c *gin.Context) {
	if !h.applyPromo(c) {
		return
	}
	c.JSON(http.StatusOK, h.cartResponse(currentSession(c)))
}

// applyPromo binds and applies a promo code, writing the error response on
// failure. The cart page and checkout share the session's promo.
func (h *Handler) applyPromo(c *gin.Context) bool {
	var req models.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}

	s := currentSession(c)
	promo, err := s.ApplyPromo(h.table, req.Code)
	if err != nil {
		metrics.PromoApplications.WithLabelValues("rejected").Inc()
		respondFailure(c, err)
		return false
	}
	metrics.PromoApplications.WithLabelValues("applied").Inc()
	log.WithFields(log.Fields{
		"session_id": s.ID,
		"code":       promo.Code,
	}).Info("Promo code applied")
	return true
}

func (h *Handler) estimateShipping(c *gin.Context) {
	var req models.ShippingEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if !validation.IsZipCode(req.ZipCode) {
		respondFailure(c, &validation.Error{Fields: validation.FieldErrors{
			"zip_code": {Kind: validation.PatternMismatch, Message: "Invalid ZIP code format"},
		}})
		return
	}

	s := currentSession(c)
	estimate := h.table.ShippingEstimate(s.Cart.Subtotal())
	s.SetShippingEstimate(estimate)
	c.JSON(http.StatusOK, gin.H{"shipping": estimate, "cart": h.cartResponse(s)})
}
