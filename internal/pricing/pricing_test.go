package pricing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryOptionPrices(t *testing.T) {
	table := DefaultTable()

	cases := map[string]float64{
		DeliveryStandard:  5.99,
		DeliveryExpress:   12.99,
		DeliveryOvernight: 24.99,
	}
	for id, want := range cases {
		opt, err := table.DeliveryOption(id)
		require.NoError(t, err, id)
		assert.Equal(t, FromDollars(want), opt.Price, id)
	}

	_, err := table.DeliveryOption("drone")
	assert.ErrorIs(t, err, ErrUnknownDelivery)
}

func TestDeliveryOptionsKeepDisplayOrder(t *testing.T) {
	opts := DefaultTable().DeliveryOptions()
	require.Len(t, opts, 3)
	assert.Equal(t, DeliveryStandard, opts[0].ID)
	assert.Equal(t, DeliveryExpress, opts[1].ID)
	assert.Equal(t, DeliveryOvernight, opts[2].ID)
	assert.Equal(t, 1, opts[2].LeadDays)
}

func TestComputeTotalIsSumOfComponents(t *testing.T) {
	table := DefaultTable()
	promo, err := table.LookupPromo("SAVE10")
	require.NoError(t, err)

	b := table.Compute(Input{
		Lines: []Line{
			{UnitPrice: FromDollars(89.99), Quantity: 1},
			{UnitPrice: FromDollars(49.99), Quantity: 2},
		},
		Shipping: FromDollars(12.99),
		GiftWrap: true,
		Promo:    &promo,
	})

	assert.Equal(t, FromDollars(189.97), b.Subtotal)
	assert.Equal(t, FromDollars(4.99), b.GiftWrap)
	assert.Equal(t, FromDollars(15.20), b.Tax)
	assert.Equal(t, FromDollars(19.00), b.Discount)
	assert.Equal(t, b.Subtotal+b.Shipping+b.GiftWrap+b.Tax-b.Discount, b.Total)
	assert.Equal(t, "SAVE10", b.PromoCode)
}

func TestComputeIgnoresLineOrder(t *testing.T) {
	table := DefaultTable()
	lines := []Line{
		{UnitPrice: FromDollars(45.99), Quantity: 1},
		{UnitPrice: FromDollars(32.50), Quantity: 2},
		{UnitPrice: FromDollars(28.75), Quantity: 1},
	}
	reversed := []Line{lines[2], lines[1], lines[0]}

	a := table.Compute(Input{Lines: lines, Shipping: FromDollars(5.99)})
	b := table.Compute(Input{Lines: reversed, Shipping: FromDollars(5.99)})
	assert.Equal(t, a, b)
}

func TestPromoCodes(t *testing.T) {
	table := DefaultTable()
	subtotal := FromDollars(100)

	save20, err := table.LookupPromo("SAVE20")
	require.NoError(t, err)
	assert.Equal(t, FromDollars(20), save20.Discount(subtotal))

	save10, err := table.LookupPromo("  save10 ")
	require.NoError(t, err)
	assert.Equal(t, FromDollars(10), save10.Discount(subtotal))
	assert.Equal(t, FromDollars(5), save10.Discount(FromDollars(50)))

	_, err = table.LookupPromo("BOGUS")
	assert.ErrorIs(t, err, ErrUnknownPromo)
}

func TestComputeWithoutPromoHasNoDiscount(t *testing.T) {
	b := DefaultTable().Compute(Input{Lines: []Line{{UnitPrice: FromDollars(100), Quantity: 1}}})
	assert.Equal(t, Cents(0), b.Discount)
	assert.Empty(t, b.PromoCode)
	assert.Equal(t, FromDollars(108), b.Total)
}

func TestFlatDiscountIsNotClamped(t *testing.T) {
	table := DefaultTable()
	promo, err := table.LookupPromo("SAVE20")
	require.NoError(t, err)

	b := table.Compute(Input{Lines: []Line{{UnitPrice: FromDollars(5), Quantity: 1}}, Promo: &promo})
	assert.Equal(t, FromDollars(5+0.40-20), b.Total)
}

func TestShippingEstimate(t *testing.T) {
	table := DefaultTable()
	assert.Equal(t, Cents(0), table.ShippingEstimate(FromDollars(50)))
	assert.Equal(t, FromDollars(5.99), table.ShippingEstimate(FromDollars(49.99)))
}

func TestCentsFormatting(t *testing.T) {
	assert.Equal(t, "$5.99", FromDollars(5.99).String())
	assert.Equal(t, "$1,234.05", FromDollars(1234.05).String())
	assert.Equal(t, "-$20.00", FromDollars(-20).String())
	assert.Equal(t, "$0.00", Cents(0).String())
}

func TestCentsJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Total Cents `json:"total"`
	}{FromDollars(24.99)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":24.99}`, string(data))

	var out struct {
		Total Cents `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"total":12.5}`), &out))
	assert.Equal(t, Cents(1250), out.Total)
}

func TestLoadTableOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	content := `
tax_rate: 0.1
gift_wrap_fee: 3.5
delivery:
  - id: express
    name: Express Delivery
    price: 14.99
    duration: 2-3 business days
    lead_days: 2
  - id: pickup
    name: Store Pickup
    price: 0
    duration: Same day
    lead_days: 0
promos:
  - code: spring25
    kind: percent
    value: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 0.1, table.TaxRate)
	assert.Equal(t, FromDollars(3.5), table.GiftWrapFee)

	express, err := table.DeliveryOption(DeliveryExpress)
	require.NoError(t, err)
	assert.Equal(t, FromDollars(14.99), express.Price)
	assert.Equal(t, 2, express.LeadDays)

	opts := table.DeliveryOptions()
	require.Len(t, opts, 4)
	assert.Equal(t, "pickup", opts[3].ID)

	promo, err := table.LookupPromo("SPRING25")
	require.NoError(t, err)
	assert.Equal(t, FromDollars(25), promo.Discount(FromDollars(100)))

	// untouched defaults survive
	_, err = table.LookupPromo("SAVE20")
	assert.NoError(t, err)
}

func TestLoadTableRejectsBadPromoKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("promos:\n  - code: X\n    kind: bogus\n    value: 1\n"), 0o600))

	_, err := LoadTable(path)
	assert.Error(t, err)
}

func TestLoadTableEmptyPath(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, 0.08, table.TaxRate)
}
