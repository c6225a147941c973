// Package api exposes the storefront over HTTP with gin.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ashendes/storefront-demo/internal/catalog"
	"github.com/ashendes/storefront-demo/internal/metrics"
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/ashendes/storefront-demo/internal/session"
	"github.com/ashendes/storefront-demo/internal/support"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionHeader carries the session id on every session-scoped request
const SessionHeader = "X-Session-ID"

const sessionKey = "session"

// Options wires a Handler
type Options struct {
	Catalog   *catalog.Catalog
	Sessions  *session.Store
	Table     *pricing.Table
	Desk      *support.Desk
	Validator *validation.Validator
	BasePath  string
	Now       func() time.Time
}

// Handler serves the storefront API
type Handler struct {
	catalog   *catalog.Catalog
	sessions  *session.Store
	table     *pricing.Table
	desk      *support.Desk
	validator *validation.Validator
	basePath  string
	now       func() time.Time
}

// New creates a Handler
func New(opts Options) *Handler {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Handler{
		catalog:   opts.Catalog,
		sessions:  opts.Sessions,
		table:     opts.Table,
		desk:      opts.Desk,
		validator: opts.Validator,
		basePath:  opts.BasePath,
		now:       opts.Now,
	}
}

// NewRouter builds the gin engine with every route mounted under the base path
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), metrics.PrometheusMiddleware(serviceName))
	h.Register(router.Group(h.basePath))
	return router
}

// Register mounts the routes on r
func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/routes", h.getRoutes)

	r.POST("/sessions", h.createSession)
	r.DELETE("/sessions/:sessionId", h.deleteSession)

	r.GET("/home", h.getHome)
	r.GET("/products", h.listProducts)
	r.GET("/products/:productId", h.getProduct)
	r.GET("/faq", h.getFAQ)
	r.GET("/contact/info", h.getContactInfo)
	r.POST("/newsletter", h.subscribe)

	s := r.Group("", h.requireSession)
	s.GET("/search", h.search)

	s.GET("/cart", h.getCart)
	s.POST("/cart/items", h.addCartItem)
	s.POST("/cart/items/:itemId/increment", h.incrementCartItem)
	s.POST("/cart/items/:itemId/decrement", h.decrementCartItem)
	s.PUT("/cart/items/:itemId", h.setCartItemQuantity)
	s.DELETE("/cart/items/:itemId", h.removeCartItem)
	s.POST("/cart/promo", h.applyCartPromo)
	s.POST("/cart/shipping-estimate", h.estimateShipping)

	s.GET("/wishlist", h.getWishlist)
	s.POST("/wishlist/:productId", h.toggleWishlist)

	s.GET("/checkout", h.getCheckout)
	s.PATCH("/checkout/shipping", h.updateShipping)
	s.POST("/checkout/shipping", h.submitShipping)
	s.PATCH("/checkout/payment", h.updatePayment)
	s.POST("/checkout/payment", h.submitPayment)
	s.POST("/checkout/back", h.checkoutBack)
	s.POST("/checkout/promo", h.applyCheckoutPromo)

	s.POST("/contact", h.submitContact)
	s.GET("/contact/tickets/:ticketId", h.getTicket)
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Fields  map[string]models.FieldError `json:"fields,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: code, Message: message})
}

// respondFailure maps a domain error to its response; validation failures
// become 422 with per-field details.
func respondFailure(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation_failed",
			Message: "Please correct the highlighted fields",
			Fields:  verr.Fields.Wire(),
		})
		return
	}

	status, code := classify(err)
	respondError(c, status, code, err.Error())
}

func (h *Handler) requireSession(c *gin.Context) {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		respondError(c, http.StatusBadRequest, "missing_session", SessionHeader+" header is required")
		return
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.Set(sessionKey, s)
	c.Next()
}

// optionalSession returns the caller's session when the header names a live one
func (h *Handler) optionalSession(c *gin.Context) *session.Session {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		return nil
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		return nil
	}
	return s
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func (h *Handler) getRoutes(c *gin.Context) {
	screens := []models.Route{
		{Name: "home", Path: "/homepage"},
		{Name: "catalog", Path: "/product-listing"},
		{Name: "product-detail", Path: "/product-detail"},
		{Name: "cart", Path: "/shopping-cart"},
		{Name: "checkout", Path: "/checkout-process"},
		{Name: "contact", Path: "/contact-support"},
	}
	for i := range screens {
		screens[i].Path = h.basePath + screens[i].Path
	}
	c.JSON(http.StatusOK, gin.H{"base_path": h.basePath, "routes": screens})
}

func (h *Handler) createSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"cart_count": s.Cart.Count(),
	})
}

func (h *Handler) deleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("sessionId")); err != nil {
		respondFailure(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
