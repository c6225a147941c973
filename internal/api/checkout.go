package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/patterns"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/gin-gonic/gin"
)

func (h *Handler) getCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Checkout.Summary())
}

// bindDraft decodes the body over draft so omitted fields keep their current
// values. An empty body leaves draft untouched.
func bindDraft(c *gin.Context, draft any) bool {
	if err := c.ShouldBindJSON(draft); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}

// formatPayment applies the card number and expiry input masks
func formatPayment(d *models.PaymentDetails) {
	d.CardNumber = validation.FormatCardNumber(d.CardNumber)
	d.ExpiryDate = validation.FormatExpiry(d.ExpiryDate)
}

func (h *Handler) updateShipping(c *gin.Context) {
	flow := currentSession(c).Checkout
	draft := flow.Shipping()
	if !bindDraft(c, &draft) {
		return
	}
	if err := flow.UpdateShipping(draft); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, flow.Summary())
}

func (h *Handler) submitShipping(c *gin.Context) {
	flow := currentSession(c).Checkout
	draft := flow.Shipping()
	if !bindDraft(c, &draft) {
		return
	}
	if err := flow.SubmitShipping(draft); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, flow.Summary())
}

func (h *Handler) updatePayment(c *gin.Context) {
	flow := currentSession(c).Checkout
	draft := flow.Payment()
	if !bindDraft(c, &draft) {
		return
	}
	formatPayment(&draft)
	if err := flow.UpdatePayment(draft); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, flow.Summary())
}

func (h *Handler) submitPayment(c *gin.Context) {
	flow := currentSession(c).Checkout
	draft := flow.Payment()
	if !bindDraft(c, &draft) {
		return
	}
	formatPayment(&draft)

	ctx, cancel := patterns.WithTimeout(c.Request.Context(), patterns.SubmitTimeout)
	defer cancel()

	if _, err := flow.SubmitPayment(ctx, draft); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, flow.Summary())
}

func (h *Handler) checkoutBack(c *gin.Context) {
	flow := currentSession(c).Checkout
	if err := flow.Back(); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, flow.Summary())
}

func (h *Handler) applyCheckoutPromo(c *gin.Context) {
	if !h.applyPromo(c) {
		return
	}
	c.JSON(http.StatusOK, currentSession(c).Checkout.Summary())
}
