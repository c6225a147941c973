package cart

import (
	"testing"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCart(t *testing.T) {
	c := NewSeeded()

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 4, c.Count())
	assert.Equal(t, pricing.FromDollars(45.99+65.00+28.75), c.Subtotal())
	assert.Equal(t, "18 inches", items[0].SelectedOptions.Size)
}

func TestIncrementClampsAtMax(t *testing.T) {
	c := NewSeeded()

	for i := 0; i < 20; i++ {
		_, err := c.Increment("1")
		require.NoError(t, err)
	}
	item, err := c.Increment("1")
	require.NoError(t, err)
	assert.Equal(t, 10, item.Quantity)
}

func TestDecrementClampsAtOne(t *testing.T) {
	c := NewSeeded()

	item, err := c.Decrement("2")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	item, err = c.Decrement("2")
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestIncrementDecrementProperty(t *testing.T) {
	c := New()
	p := models.Product{ID: "p", Name: "Ring", Price: pricing.FromDollars(10), MaxQuantity: 3}
	line := c.Add(p, 1, models.SelectedOptions{})

	for start := 1; start <= 3; start++ {
		_, err := c.SetQuantity(line.ID, start)
		require.NoError(t, err)
		up, err := c.Increment(line.ID)
		require.NoError(t, err)
		assert.Equal(t, min(start+1, 3), up.Quantity)

		_, err = c.SetQuantity(line.ID, start)
		require.NoError(t, err)
		down, err := c.Decrement(line.ID)
		require.NoError(t, err)
		assert.Equal(t, max(start-1, 1), down.Quantity)
	}
}

func TestSetQuantityOutOfRange(t *testing.T) {
	c := NewSeeded()

	_, err := c.SetQuantity("3", 13)
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)
	_, err = c.SetQuantity("3", 0)
	assert.ErrorIs(t, err, ErrQuantityOutOfRange)

	assert.Equal(t, 1, c.Items()[2].Quantity)
}

func TestUnknownItem(t *testing.T) {
	c := NewSeeded()

	_, err := c.Increment("nope")
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.ErrorIs(t, c.Remove("nope"), ErrItemNotFound)
}

func TestAddMergesSameProductAndOptions(t *testing.T) {
	c := New()
	p := models.Product{ID: "4", Name: "Cocktail Ring", Price: pricing.FromDollars(67.99), MaxQuantity: 5}

	first := c.Add(p, 2, models.SelectedOptions{Size: "7"})
	second := c.Add(p, 2, models.SelectedOptions{Size: "7"})
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.Quantity)

	clamped := c.Add(p, 9, models.SelectedOptions{Size: "7"})
	assert.Equal(t, 5, clamped.Quantity)

	other := c.Add(p, 1, models.SelectedOptions{Size: "8"})
	assert.NotEqual(t, first.ID, other.ID)
	assert.Len(t, c.Items(), 2)
}

func TestAddDefaultsMaxQuantity(t *testing.T) {
	c := New()
	item := c.Add(models.Product{ID: "x", Price: pricing.FromDollars(1)}, 0, models.SelectedOptions{})
	assert.Equal(t, DefaultMaxQuantity, item.MaxQuantity)
	assert.Equal(t, 1, item.Quantity)
	assert.Nil(t, item.SelectedOptions)
}

func TestRemoveAndEmpty(t *testing.T) {
	c := NewSeeded()
	for _, item := range c.Items() {
		require.NoError(t, c.Remove(item.ID))
	}
	assert.True(t, c.Empty())
	assert.Equal(t, pricing.Cents(0), c.Subtotal())
}

func TestItemsAreCopies(t *testing.T) {
	c := NewSeeded()
	items := c.Items()
	items[0].Quantity = 99
	items[0].SelectedOptions.Size = "changed"

	fresh := c.Items()
	assert.Equal(t, 1, fresh[0].Quantity)
	assert.Equal(t, "18 inches", fresh[0].SelectedOptions.Size)
}
