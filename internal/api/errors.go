package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ashendes/storefront-demo/internal/cart"
	"github.com/ashendes/storefront-demo/internal/catalog"
	"github.com/ashendes/storefront-demo/internal/checkout"
	"github.com/ashendes/storefront-demo/internal/patterns"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/ashendes/storefront-demo/internal/session"
	"github.com/ashendes/storefront-demo/internal/support"
)

var errorCodes = []struct {
	err    error
	status int
	code   string
}{
	{session.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
	{catalog.ErrProductNotFound, http.StatusNotFound, "product_not_found"},
	{cart.ErrItemNotFound, http.StatusNotFound, "item_not_found"},
	{support.ErrTicketNotFound, http.StatusNotFound, "ticket_not_found"},
	{cart.ErrQuantityOutOfRange, http.StatusBadRequest, "quantity_out_of_range"},
	{pricing.ErrUnknownPromo, http.StatusBadRequest, "invalid_promo"},
	{checkout.ErrIllegalTransition, http.StatusConflict, "illegal_transition"},
	{checkout.ErrEmptyCart, http.StatusConflict, "empty_cart"},
	{checkout.ErrSubmitInProgress, http.StatusConflict, "submit_in_progress"},
	{catalog.ErrSuperseded, http.StatusConflict, "superseded"},
	{session.ErrSchedulerClosed, http.StatusGone, "session_closed"},
	{checkout.ErrClosed, http.StatusGone, "session_closed"},
	{patterns.ErrBulkheadFull, http.StatusServiceUnavailable, "busy"},
	{context.DeadlineExceeded, http.StatusServiceUnavailable, "processing_interrupted"},
	{context.Canceled, http.StatusServiceUnavailable, "processing_interrupted"},
}

func classify(err error) (int, string) {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.status, e.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}
