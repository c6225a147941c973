package validation

import (
	"strings"
	"testing"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShipping() models.ShippingDetails {
	d := models.NewShippingDetails()
	d.FirstName = "Ada"
	d.LastName = "Lovelace"
	d.Email = "ada@example.com"
	d.Phone = "(555) 123-4567"
	d.Address = "1 Main St"
	d.City = "Springfield"
	d.State = "IL"
	d.ZipCode = "62704"
	return d
}

func validPayment() models.PaymentDetails {
	p := models.NewPaymentDetails()
	p.CardNumber = "4111 1111 1111 1111"
	p.CardName = "Ada Lovelace"
	p.ExpiryDate = "12/28"
	p.CVV = "123"
	return p
}

func TestShippingValid(t *testing.T) {
	assert.Empty(t, New().Shipping(validShipping()))
}

func TestShippingEmptyEmailOnlyFlagsEmail(t *testing.T) {
	d := validShipping()
	d.Email = "   "

	errs := New().Shipping(d)
	require.Len(t, errs, 1)
	assert.Equal(t, MissingField, errs["email"].Kind)
	assert.Equal(t, "Email is required", errs["email"].Message)
}

func TestShippingPatterns(t *testing.T) {
	d := validShipping()
	d.Email = "ada@example"
	d.Phone = "555-1234"
	d.ZipCode = "1234"

	errs := New().Shipping(d)
	assert.ElementsMatch(t, []string{"email", "phone", "zip_code"}, errs.Fields())
	for _, e := range errs {
		assert.Equal(t, PatternMismatch, e.Kind)
	}
}

func TestShippingZipPlusFour(t *testing.T) {
	d := validShipping()
	d.ZipCode = "62704-1234"
	assert.Empty(t, New().Shipping(d))
}

func TestGiftMessageCappedRegardlessOfGiftWrap(t *testing.T) {
	d := validShipping()
	d.GiftWrapping = false
	d.GiftMessage = strings.Repeat("x", 201)

	errs := New().Shipping(d)
	require.True(t, errs.Has("gift_message"))
	assert.Equal(t, PatternMismatch, errs["gift_message"].Kind)

	d.GiftMessage = strings.Repeat("x", 200)
	assert.Empty(t, New().Shipping(d))
}

func TestCardNumber(t *testing.T) {
	v := New()

	p := validPayment()
	assert.Empty(t, v.Payment(p))

	p.CardNumber = "4111 1111 1111"
	errs := v.Payment(p)
	require.Len(t, errs, 1)
	assert.Equal(t, PatternMismatch, errs["card_number"].Kind)
	assert.Equal(t, "Invalid card number", errs["card_number"].Message)
}

func TestExpiryAndCVV(t *testing.T) {
	p := validPayment()
	p.ExpiryDate = "1228"
	p.CVV = "12"

	errs := New().Payment(p)
	assert.ElementsMatch(t, []string{"expiry_date", "cvv"}, errs.Fields())

	p.ExpiryDate = "12/28"
	p.CVV = "1234"
	assert.Empty(t, New().Payment(p))
}

func TestBillingOnlyRequiredWhenDifferent(t *testing.T) {
	v := New()

	p := validPayment()
	assert.Empty(t, v.Payment(p))

	p.BillingAddressSame = false
	errs := v.Payment(p)
	assert.ElementsMatch(t,
		[]string{"billing_address", "billing_city", "billing_state", "billing_zip_code"},
		errs.Fields())
	for _, e := range errs {
		assert.Equal(t, ConditionalRequirement, e.Kind)
	}
	assert.Equal(t, "Billing address is required", errs["billing_address"].Message)

	p.BillingAddress = "2 Side St"
	p.BillingCity = "Shelbyville"
	p.BillingState = "IL"
	p.BillingZipCode = "abc"
	errs = v.Payment(p)
	require.Len(t, errs, 1)
	assert.Equal(t, PatternMismatch, errs["billing_zip_code"].Kind)
}

func TestContactRules(t *testing.T) {
	v := New()

	msg := models.ContactMessage{
		Name:        "Jo",
		Email:       "jo@example.com",
		InquiryType: "returns",
		Message:     "Where is my order?",
	}
	assert.Empty(t, v.Contact(msg))

	msg.Name = " J "
	msg.InquiryType = "complaint"
	msg.Message = "too short"
	errs := v.Contact(msg)
	assert.ElementsMatch(t, []string{"name", "inquiry_type", "message"}, errs.Fields())
	assert.Equal(t, "Name must be at least 2 characters", errs["name"].Message)
	assert.Equal(t, "Message must be at least 10 characters", errs["message"].Message)

	msg = models.ContactMessage{}
	errs = v.Contact(msg)
	assert.Equal(t, "Please select an inquiry type", errs["inquiry_type"].Message)
	assert.Equal(t, MissingField, errs["message"].Kind)

	msg = models.ContactMessage{Name: "Jo", Email: "jo@example.com", InquiryType: "other", Message: strings.Repeat("m", 501)}
	errs = v.Contact(msg)
	require.Len(t, errs, 1)
	assert.True(t, errs.Has("message"))
}

func TestClearDropsOnlyThatField(t *testing.T) {
	d := validShipping()
	d.Email = ""
	d.City = ""

	errs := New().Shipping(d)
	require.Len(t, errs, 2)

	errs.Clear("email")
	assert.False(t, errs.Has("email"))
	assert.True(t, errs.Has("city"))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Fields: FieldErrors{
		"zip_code": {Kind: PatternMismatch},
		"email":    {Kind: MissingField},
	}}
	assert.Equal(t, "validation failed: email, zip_code", err.Error())
}

func TestWire(t *testing.T) {
	assert.Nil(t, FieldErrors{}.Wire())

	wire := FieldErrors{"cvv": {Kind: PatternMismatch, Message: "Invalid CVV"}}.Wire()
	assert.Equal(t, models.FieldError{Kind: "PatternMismatch", Message: "Invalid CVV"}, wire["cvv"])
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 1111 1111 1111", FormatCardNumber("41 11 1111 11111111"))
	assert.Equal(t, "4111 11", FormatCardNumber("411111"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/", FormatExpiry("12"))
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12/28", FormatExpiry("12/28"))
}

func TestFormattingKeepsInvalidInput(t *testing.T) {
	for _, v := range []string{
		"4111 1111 1111 1111 9999",
		"4111111111111111999",
		"4111-1111-1111-1111",
		"4111a1111b1111c1111",
	} {
		assert.Equal(t, v, FormatCardNumber(v), v)
		assert.False(t, IsCardNumber(FormatCardNumber(v)), v)
	}
	assert.Equal(t, "12/289", FormatExpiry("12/289"))
	assert.Equal(t, "12345", FormatExpiry("12345"))
	assert.Equal(t, "1a/26", FormatExpiry("1a/26"))
	assert.Equal(t, "**** **** **** 1111", MaskCard("4111 1111 1111 1111"))
	assert.Equal(t, "1111", LastFour("4111 1111 1111 1111"))
}

func TestClearChanged(t *testing.T) {
	before := validShipping()
	before.Email = ""
	before.ZipCode = "bad"

	errs := New().Shipping(before)
	require.Len(t, errs, 2)

	after := before
	after.Email = "x"
	assert.Equal(t, []string{"email"}, Changed(before, after))

	errs.ClearChanged(before, after)
	assert.Equal(t, []string{"zip_code"}, errs.Fields())
}
