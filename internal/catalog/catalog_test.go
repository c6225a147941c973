package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterCategoryMatchesBadge(t *testing.T) {
	c := NewSeeded()

	q := NewQuery()
	q.Categories = []string{"earrings"}
	got := c.Filter(q)

	for _, p := range got {
		assert.Equal(t, "Earrings", p.Category)
	}

	categories, _, _ := c.Facets()
	var badge int
	for _, opt := range categories {
		if opt.ID == "earrings" {
			badge = opt.Count
		}
	}
	assert.Equal(t, 3, len(got))
	assert.Equal(t, len(got), badge)
}

func TestFacetCountsAgreeWithFilter(t *testing.T) {
	c := NewSeeded()
	categories, materials, colors := c.Facets()

	for _, opt := range categories {
		q := NewQuery()
		q.Categories = []string{opt.ID}
		assert.Len(t, c.Filter(q), opt.Count, opt.ID)
	}
	for _, opt := range materials {
		q := NewQuery()
		q.Materials = []string{opt.ID}
		assert.Len(t, c.Filter(q), opt.Count, opt.ID)
	}
	for _, opt := range colors {
		q := NewQuery()
		q.Colors = []string{opt.ID}
		assert.Len(t, c.Filter(q), opt.Count, opt.ID)
	}
}

func TestHyphenatedFilterIDs(t *testing.T) {
	c := NewSeeded()

	q := NewQuery()
	q.Colors = []string{"rose-gold"}
	assert.Equal(t, []string{"1", "7"}, ids(c.Filter(q)))

	q = NewQuery()
	q.Materials = []string{"rose-gold"}
	q.Sort = SortNewest
	assert.ElementsMatch(t, []string{"1", "7"}, ids(c.Filter(q)))
}

func TestMaterialIsSubstringMatch(t *testing.T) {
	q := NewQuery()
	q.Materials = []string{"gold"}
	assert.ElementsMatch(t, []string{"1", "2", "4", "6", "7"}, ids(NewSeeded().Filter(q)))
}

func TestFiltersCombine(t *testing.T) {
	q := NewQuery()
	q.Categories = []string{"earrings", "necklaces"}
	q.Colors = []string{"gold"}
	assert.ElementsMatch(t, []string{"2", "6"}, ids(NewSeeded().Filter(q)))
}

func TestPriceRangeInclusive(t *testing.T) {
	q := NewQuery()
	q.MinPrice = pricing.FromDollars(34.99)
	q.MaxPrice = pricing.FromDollars(45.99)
	q.Sort = SortPriceLow
	assert.Equal(t, []string{"3", "8", "2"}, ids(NewSeeded().Filter(q)))
}

func TestSortOrders(t *testing.T) {
	c := NewSeeded()
	cases := map[string][]string{
		SortPopularity: {"4", "6", "3", "8", "1", "7", "2", "5"},
		SortPriceLow:   {"7", "3", "8", "2", "5", "4", "6", "1"},
		SortPriceHigh:  {"1", "6", "4", "5", "2", "8", "3", "7"},
		SortRating:     {"4", "1", "6", "3", "2", "8", "5", "7"},
		SortNewest:     {"1", "4", "7", "2", "3", "5", "6", "8"},
		"bogus":        {"4", "6", "3", "8", "1", "7", "2", "5"},
	}
	for order, want := range cases {
		q := NewQuery()
		q.Sort = order
		assert.Equal(t, want, ids(c.Filter(q)), order)
	}
}

func TestActiveFilters(t *testing.T) {
	q := NewQuery()
	q.Categories = []string{"earrings"}
	q.Materials = []string{"unobtainium"}
	q.MinPrice = pricing.FromDollars(20)
	q.MaxPrice = pricing.FromDollars(100)

	assert.Equal(t, []models.ActiveFilter{
		{ID: "earrings", Type: "category", Label: "Earrings"},
		{ID: "price", Type: "price", Label: "$20 - $100"},
	}, ActiveFilters(q))

	assert.Empty(t, ActiveFilters(NewQuery()))
}

func TestListFallsBackToPopularity(t *testing.T) {
	q := NewQuery()
	q.Sort = "random"
	resp := NewSeeded().List(q)
	assert.Equal(t, SortPopularity, resp.Sort)
	assert.Equal(t, 8, resp.ResultCount)
	assert.Len(t, resp.SortOptions, 5)
}

func TestDetail(t *testing.T) {
	c := NewSeeded()

	d, err := c.Detail("1")
	require.NoError(t, err)
	assert.Equal(t, "JC-RGN-2024-001", d.SKU)
	assert.Len(t, d.Images, 5)
	assert.Len(t, d.Reviews, 5)
	assert.InDelta(t, 4.8, d.AverageRating(), 0.001)
	assert.Equal(t, 31, d.DiscountPercent())

	ring, err := c.Detail("4")
	require.NoError(t, err)
	assert.Equal(t, "JC-RNG-2024-004", ring.SKU)
	assert.NotEmpty(t, ring.Sizes)
	assert.Equal(t, DefaultMaxQuantity, ring.MaxQuantity)

	_, err = c.Detail("404")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRelated(t *testing.T) {
	assert.Equal(t, []string{"6", "7", "4", "3"}, ids(NewSeeded().Related("1", 4)))
	assert.Nil(t, NewSeeded().Related("nope", 4))
}

func TestHomeFeed(t *testing.T) {
	c := NewSeeded()
	assert.Equal(t, []string{"4", "6", "3", "8"}, ids(c.Bestsellers(4)))
	assert.Equal(t, []string{"1", "4", "7"}, ids(c.NewArrivals()))
	assert.Equal(t, []string{"Necklaces", "Earrings", "Bracelets", "Rings"}, c.Collections())
}

func TestSearch(t *testing.T) {
	c := NewSeeded()

	assert.Empty(t, c.Search("a"))
	assert.Empty(t, c.Search("  "))

	results := c.Search("BRACELET")
	require.Len(t, results, 2)
	assert.Equal(t, "3", results[0].ID)
	assert.Equal(t, "/product-detail?id=3", results[0].Path)

	silver := c.Search("silver")
	assert.Len(t, silver, 2)
}

func TestDebouncerSupersedes(t *testing.T) {
	c := NewSeeded()
	d := NewDebouncer(50 * time.Millisecond)

	firstErr := make(chan error, 1)
	go func() {
		_, err := c.DebouncedSearch(context.Background(), d, "pearl")
		firstErr <- err
	}()

	// let the first query register before the second arrives
	time.Sleep(10 * time.Millisecond)
	results, err := c.DebouncedSearch(context.Background(), d, "ring")
	require.NoError(t, err)
	assert.NotEmpty(t, results)

	assert.ErrorIs(t, <-firstErr, ErrSuperseded)
}

func TestDebouncerContextAndStop(t *testing.T) {
	d := NewDebouncer(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, d.Wait(ctx), context.Canceled)

	done := make(chan error, 1)
	go func() { done <- d.Wait(context.Background()) }()
	time.Sleep(10 * time.Millisecond)
	d.Stop()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("wait did not return after Stop")
	}
}

func TestDebouncerExpiredWaitLosesToNewerWait(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	// hold the lock so the first wait's timer fires before it can claim the result
	d.mutex.Lock()
	first := make(chan error, 1)
	go func() { first <- d.Wait(context.Background()) }()
	d.mutex.Unlock()

	require.Eventually(t, func() bool {
		d.mutex.Lock()
		defer d.mutex.Unlock()
		return d.pending != nil
	}, time.Second, time.Millisecond)

	d.mutex.Lock()
	time.Sleep(30 * time.Millisecond)
	// a newer wait takes over while the first is blocked on the lock
	close(d.pending)
	d.pending = make(chan struct{})
	d.mutex.Unlock()

	select {
	case err := <-first:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(time.Second):
		t.Fatal("first wait did not return")
	}
}
