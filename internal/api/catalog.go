package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ashendes/storefront-demo/internal/catalog"
	"github.com/ashendes/storefront-demo/internal/metrics"
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/gin-gonic/gin"
)

const (
	homeBestsellers = 4
	relatedLimit    = 4
)

func (h *Handler) getHome(c *gin.Context) {
	c.JSON(http.StatusOK, models.HomeResponse{
		Bestsellers: h.catalog.Bestsellers(homeBestsellers),
		NewArrivals: h.catalog.NewArrivals(),
		Collections: h.catalog.Collections(),
	})
}

func (h *Handler) listProducts(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	resp := h.catalog.List(q)
	if s := h.optionalSession(c); s != nil {
		resp.Wishlist = s.Wishlist()
	}
	c.JSON(http.StatusOK, resp)
}

// parseQuery reads repeated category, material and color parameters (comma
// separated lists are also accepted) plus min_price, max_price and sort.
func parseQuery(c *gin.Context) (catalog.Query, error) {
	q := catalog.NewQuery()
	q.Categories = splitValues(c.QueryArray("category"))
	q.Materials = splitValues(c.QueryArray("material"))
	q.Colors = splitValues(c.QueryArray("color"))

	if v := c.Query("min_price"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 {
			return q, errors.New("min_price must be a non-negative number")
		}
		q.MinPrice = pricing.FromDollars(d)
	}
	if v := c.Query("max_price"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil || d < 0 {
			return q, errors.New("max_price must be a non-negative number")
		}
		q.MaxPrice = pricing.FromDollars(d)
	}
	if q.MinPrice > q.MaxPrice {
		return q, errors.New("min_price exceeds max_price")
	}
	if v := c.Query("sort"); v != "" {
		q.Sort = v
	}
	return q, nil
}

func splitValues(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (h *Handler) getProduct(c *gin.Context) {
	id := c.Param("productId")
	detail, err := h.catalog.Detail(id)
	if err != nil {
		respondFailure(c, err)
		return
	}

	resp := models.ProductDetailResponse{
		ProductDetail:   detail,
		DiscountPercent: detail.DiscountPercent(),
		AverageRating:   detail.AverageRating(),
		Related:         h.catalog.Related(id, relatedLimit),
	}
	if s := h.optionalSession(c); s != nil {
		resp.InWishlist = s.InWishlist(id)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) search(c *gin.Context) {
	s := currentSession(c)
	q := c.Query("q")

	results, err := h.catalog.DebouncedSearch(c.Request.Context(), s.Search, q)
	if err != nil {
		metrics.SearchQueries.WithLabelValues("superseded").Inc()
		respondFailure(c, err)
		return
	}

	result := "hit"
	if len(results) == 0 {
		result = "miss"
	}
	metrics.SearchQueries.WithLabelValues(result).Inc()
	c.JSON(http.StatusOK, gin.H{"query": q, "results": results})
}

func (h *Handler) getWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"product_ids": currentSession(c).Wishlist()})
}

func (h *Handler) toggleWishlist(c *gin.Context) {
	id := c.Param("productId")
	if _, err := h.catalog.Product(id); err != nil {
		respondFailure(c, err)
		return
	}
	saved := currentSession(c).ToggleWishlist(id)
	c.JSON(http.StatusOK, gin.H{"product_id": id, "in_wishlist": saved})
}
