package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the on-disk shape of a pricing override file. Every field is
// optional; anything left out keeps the built-in default.
//
//	tax_rate: 0.0825
//	gift_wrap_fee: 3.99
//	free_shipping_threshold: 75
//	delivery:
//	  - id: express
//	    name: Express Delivery
//	    price: 14.99
//	    duration: 2-3 business days
//	    lead_days: 3
//	promos:
//	  - code: SPRING25
//	    kind: percent
//	    value: 25
type tableFile struct {
	TaxRate               *float64 `yaml:"tax_rate"`
	GiftWrapFee           *float64 `yaml:"gift_wrap_fee"`
	FreeShippingThreshold *float64 `yaml:"free_shipping_threshold"`
	EstimateFee           *float64 `yaml:"estimate_fee"`

	Delivery []struct {
		DeliveryOption `yaml:",inline"`
		Price          float64 `yaml:"price"`
	} `yaml:"delivery"`

	Promos []struct {
		Code  string    `yaml:"code"`
		Kind  PromoKind `yaml:"kind"`
		Value float64   `yaml:"value"`
	} `yaml:"promos"`
}

// LoadTable returns DefaultTable with the overrides from the YAML file at path applied.
// An empty path returns the defaults unchanged.
func LoadTable(path string) (*Table, error) {
	t := DefaultTable()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pricing file: %w", err)
	}
	if err := t.applyYAML(data); err != nil {
		return nil, fmt.Errorf("parsing pricing file %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) applyYAML(data []byte) error {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	if f.TaxRate != nil {
		if *f.TaxRate < 0 || *f.TaxRate >= 1 {
			return fmt.Errorf("tax_rate %v out of range [0, 1)", *f.TaxRate)
		}
		t.TaxRate = *f.TaxRate
	}
	if f.GiftWrapFee != nil {
		t.GiftWrapFee = FromDollars(*f.GiftWrapFee)
	}
	if f.FreeShippingThreshold != nil {
		t.FreeShippingThreshold = FromDollars(*f.FreeShippingThreshold)
	}
	if f.EstimateFee != nil {
		t.EstimateFee = FromDollars(*f.EstimateFee)
	}

	for _, d := range f.Delivery {
		if d.ID == "" {
			return fmt.Errorf("delivery option without id")
		}
		opt := d.DeliveryOption
		opt.Price = FromDollars(d.Price)
		t.SetDeliveryOption(opt)
	}

	for _, p := range f.Promos {
		if p.Kind != PromoPercent && p.Kind != PromoFlat {
			return fmt.Errorf("promo %s: unknown kind %q", p.Code, p.Kind)
		}
		t.SetPromo(Promo{Code: p.Code, Kind: p.Kind, Value: p.Value})
	}

	return nil
}
