// Package pricing computes order totals for the storefront: delivery tiers,
// gift wrap, tax and promo code discounts. Everything here is a pure function
// of its inputs; callers recompute on every change.
package pricing

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownPromo    = errors.New("unknown promo code")
	ErrUnknownDelivery = errors.New("unknown delivery option")
)

// Delivery option identifiers.
const (
	DeliveryStandard  = "standard"
	DeliveryExpress   = "express"
	DeliveryOvernight = "overnight"
)

// DeliveryOption is a named shipping tier with a fixed price and lead time.
type DeliveryOption struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Price    Cents  `json:"price" yaml:"-"`
	Duration string `json:"duration" yaml:"duration"`
	LeadDays int    `json:"lead_days" yaml:"lead_days"`
}

// PromoKind says how a promo value is applied.
type PromoKind string

const (
	PromoPercent PromoKind = "percent"
	PromoFlat    PromoKind = "flat"
)

// Promo is one entry of the promo code table. Value is a percentage for
// PromoPercent and a dollar amount for PromoFlat.
type Promo struct {
	Code  string    `json:"code"`
	Kind  PromoKind `json:"kind"`
	Value float64   `json:"value"`
}

// Discount returns the reduction this promo gives on subtotal.
func (p Promo) Discount(subtotal Cents) Cents {
	switch p.Kind {
	case PromoPercent:
		return Cents(math.Round(float64(subtotal) * p.Value / 100))
	case PromoFlat:
		return FromDollars(p.Value)
	default:
		return 0
	}
}

// Table holds every constant the pricing computation depends on.
type Table struct {
	TaxRate               float64
	GiftWrapFee           Cents
	FreeShippingThreshold Cents
	EstimateFee           Cents

	deliveryOrder []string
	delivery      map[string]DeliveryOption
	promos        map[string]Promo
}

// DefaultTable returns the storefront's built-in pricing constants.
func DefaultTable() *Table {
	t := &Table{
		TaxRate:               0.08,
		GiftWrapFee:           FromDollars(4.99),
		FreeShippingThreshold: FromDollars(50),
		EstimateFee:           FromDollars(5.99),
		delivery:              make(map[string]DeliveryOption),
		promos:                make(map[string]Promo),
	}

	t.SetDeliveryOption(DeliveryOption{ID: DeliveryStandard, Name: "Standard Delivery", Price: FromDollars(5.99), Duration: "5-7 business days", LeadDays: 7})
	t.SetDeliveryOption(DeliveryOption{ID: DeliveryExpress, Name: "Express Delivery", Price: FromDollars(12.99), Duration: "2-3 business days", LeadDays: 3})
	t.SetDeliveryOption(DeliveryOption{ID: DeliveryOvernight, Name: "Overnight Delivery", Price: FromDollars(24.99), Duration: "Next business day", LeadDays: 1})

	t.SetPromo(Promo{Code: "SAVE10", Kind: PromoPercent, Value: 10})
	t.SetPromo(Promo{Code: "WELCOME10", Kind: PromoFlat, Value: 10})
	t.SetPromo(Promo{Code: "SAVE20", Kind: PromoFlat, Value: 20})
	t.SetPromo(Promo{Code: "FIRST15", Kind: PromoFlat, Value: 15})

	return t
}

// SetDeliveryOption adds or replaces a delivery tier.
func (t *Table) SetDeliveryOption(opt DeliveryOption) {
	if _, exists := t.delivery[opt.ID]; !exists {
		t.deliveryOrder = append(t.deliveryOrder, opt.ID)
	}
	t.delivery[opt.ID] = opt
}

// SetPromo adds or replaces a promo code. Codes are stored upper-cased.
func (t *Table) SetPromo(p Promo) {
	p.Code = NormalizeCode(p.Code)
	t.promos[p.Code] = p
}

// DeliveryOptions lists the tiers in display order.
func (t *Table) DeliveryOptions() []DeliveryOption {
	opts := make([]DeliveryOption, 0, len(t.deliveryOrder))
	for _, id := range t.deliveryOrder {
		opts = append(opts, t.delivery[id])
	}
	return opts
}

// DeliveryOption looks up a tier by id.
func (t *Table) DeliveryOption(id string) (DeliveryOption, error) {
	opt, ok := t.delivery[id]
	if !ok {
		return DeliveryOption{}, ErrUnknownDelivery
	}
	return opt, nil
}

// LookupPromo finds a promo code, ignoring case and surrounding whitespace.
func (t *Table) LookupPromo(code string) (Promo, error) {
	p, ok := t.promos[NormalizeCode(code)]
	if !ok {
		return Promo{}, ErrUnknownPromo
	}
	return p, nil
}

// Tax returns the flat-rate tax on subtotal.
func (t *Table) Tax(subtotal Cents) Cents {
	return Cents(math.Round(float64(subtotal) * t.TaxRate))
}

// ShippingEstimate is the cart page's destination-independent estimate:
// free at or above the threshold, otherwise the estimate fee.
func (t *Table) ShippingEstimate(subtotal Cents) Cents {
	if subtotal >= t.FreeShippingThreshold {
		return 0
	}
	return t.EstimateFee
}

// NormalizeCode canonicalises user-entered promo codes.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Line is one priced cart entry.
type Line struct {
	UnitPrice Cents
	Quantity  int
}

// Input is everything a breakdown depends on.
type Input struct {
	Lines    []Line
	Shipping Cents
	GiftWrap bool
	Promo    *Promo
}

// Breakdown is the derived pricing of a cart or checkout.
type Breakdown struct {
	Subtotal  Cents  `json:"subtotal"`
	Shipping  Cents  `json:"shipping"`
	GiftWrap  Cents  `json:"gift_wrap"`
	Tax       Cents  `json:"tax"`
	Discount  Cents  `json:"discount"`
	Total     Cents  `json:"total"`
	PromoCode string `json:"promo_code,omitempty"`
}

// Subtotal sums price times quantity over lines.
func Subtotal(lines []Line) Cents {
	var sum Cents
	for _, l := range lines {
		sum += l.UnitPrice.Times(l.Quantity)
	}
	return sum
}

// Compute derives the full breakdown. The total is not clamped at zero.
func (t *Table) Compute(in Input) Breakdown {
	b := Breakdown{
		Subtotal: Subtotal(in.Lines),
		Shipping: in.Shipping,
	}
	if in.GiftWrap {
		b.GiftWrap = t.GiftWrapFee
	}
	b.Tax = t.Tax(b.Subtotal)
	if in.Promo != nil {
		b.Discount = in.Promo.Discount(b.Subtotal)
		b.PromoCode = in.Promo.Code
	}
	b.Total = b.Subtotal + b.Shipping + b.GiftWrap + b.Tax - b.Discount
	return b
}
