package models

import (
	"time"

	"github.com/ashendes/storefront-demo/internal/pricing"
)

// ShippingDetails is the first checkout stage's form
type ShippingDetails struct {
	FirstName      string `json:"first_name" label:"First name" validate:"filled"`
	LastName       string `json:"last_name" label:"Last name" validate:"filled"`
	Email          string `json:"email" label:"Email" validate:"filled,emailshape"`
	Phone          string `json:"phone" label:"Phone number" validate:"filled,phone10"`
	Address        string `json:"address" label:"Address" validate:"filled"`
	Apartment      string `json:"apartment,omitempty"`
	City           string `json:"city" label:"City" validate:"filled"`
	State          string `json:"state" label:"State" validate:"filled"`
	ZipCode        string `json:"zip_code" label:"ZIP code" validate:"filled,zipcode"`
	Country        string `json:"country"`
	DeliveryOption string `json:"delivery_option" label:"Delivery option"`
	GiftWrapping   bool   `json:"gift_wrapping"`
	GiftMessage    string `json:"gift_message,omitempty" label:"Gift message" validate:"max=200"`
}

// NewShippingDetails returns the form with every default filled in
func NewShippingDetails() ShippingDetails {
	return ShippingDetails{
		Country:        "United States",
		DeliveryOption: pricing.DeliveryStandard,
	}
}

// PaymentDetails is the second checkout stage's form. Billing fields are
// only checked when BillingAddressSame is false.
type PaymentDetails struct {
	CardNumber         string `json:"card_number" label:"Card number" validate:"filled,card16"`
	CardName           string `json:"card_name" label:"Cardholder name" validate:"filled"`
	ExpiryDate         string `json:"expiry_date" label:"Expiry date" validate:"filled,expiry"`
	CVV                string `json:"cvv" label:"CVV" validate:"filled,cvv"`
	SaveCard           bool   `json:"save_card"`
	BillingAddressSame bool   `json:"billing_address_same"`
	BillingAddress     string `json:"billing_address,omitempty" label:"Billing address"`
	BillingCity        string `json:"billing_city,omitempty" label:"City"`
	BillingState       string `json:"billing_state,omitempty" label:"State"`
	BillingZipCode     string `json:"billing_zip_code,omitempty" label:"ZIP code"`
}

// NewPaymentDetails returns the form with every default filled in
func NewPaymentDetails() PaymentDetails {
	return PaymentDetails{BillingAddressSame: true}
}

// PaymentSummary is the card-safe view of PaymentDetails
type PaymentSummary struct {
	CardLast4          string `json:"card_last4"`
	CardName           string `json:"card_name"`
	ExpiryDate         string `json:"expiry_date"`
	BillingAddressSame bool   `json:"billing_address_same"`
	BillingAddress     string `json:"billing_address,omitempty"`
	BillingCity        string `json:"billing_city,omitempty"`
	BillingState       string `json:"billing_state,omitempty"`
	BillingZipCode     string `json:"billing_zip_code,omitempty"`
}

// Order is produced when payment is accepted; it only lives in its session
type Order struct {
	ID                string                 `json:"id"`
	Email             string                 `json:"email"`
	Items             []CartItem             `json:"items"`
	Shipping          ShippingDetails        `json:"shipping"`
	Payment           PaymentSummary         `json:"payment"`
	Delivery          pricing.DeliveryOption `json:"delivery"`
	Pricing           pricing.Breakdown      `json:"pricing"`
	PlacedAt          time.Time              `json:"placed_at"`
	EstimatedDelivery time.Time              `json:"estimated_delivery"`
}

// CheckoutStep is one entry of the progress indicator
type CheckoutStep struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// CheckoutResponse is the checkout page payload
type CheckoutResponse struct {
	Stage           string                   `json:"stage"`
	Steps           []CheckoutStep           `json:"steps"`
	Items           []CartItem               `json:"items"`
	Pricing         pricing.Breakdown        `json:"pricing"`
	DeliveryOptions []pricing.DeliveryOption `json:"delivery_options"`
	Shipping        ShippingDetails          `json:"shipping"`
	Payment         PaymentSummary           `json:"payment"`
	Errors          map[string]FieldError    `json:"errors,omitempty"`
	Order           *Order                   `json:"order,omitempty"`
}

// FieldError is the wire form of a single validation failure
type FieldError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}
