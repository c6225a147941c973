package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipPattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	nonDigits     = regexp.MustCompile(`\D`)
	bareExpiry    = regexp.MustCompile(`^\d{1,4}$`)
)

// Pattern rules pass on empty input; emptiness is the job of "filled".

func filled(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func emailShape(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || emailPattern.MatchString(v)
}

// IsPhone reports whether v holds exactly 10 digits once formatting is stripped
func IsPhone(v string) bool {
	return len(nonDigits.ReplaceAllString(v, "")) == 10
}

func phone10(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || IsPhone(v)
}

// IsZipCode accepts 12345 and 12345-6789
func IsZipCode(v string) bool {
	return zipPattern.MatchString(v)
}

func zipCode(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || IsZipCode(v)
}

// IsCardNumber reports whether v holds exactly 16 digits once spaces are stripped
func IsCardNumber(v string) bool {
	digits := strings.ReplaceAll(v, " ", "")
	if len(digits) != 16 {
		return false
	}
	return !nonDigits.MatchString(digits)
}

func card16(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || IsCardNumber(v)
}

func expiry(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || expiryPattern.MatchString(v)
}

func cvv(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || cvvPattern.MatchString(v)
}

// trimmin is min= on the trimmed value
func trimMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	v := strings.TrimSpace(fl.Field().String())
	return v == "" || utf8.RuneCountInString(v) >= n
}

// billingRules requires the separate billing address only when it differs
// from shipping.
func billingRules(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.PaymentDetails)
	if p.BillingAddressSame {
		return
	}

	required := []struct {
		value, json, name string
	}{
		{p.BillingAddress, "billing_address", "BillingAddress"},
		{p.BillingCity, "billing_city", "BillingCity"},
		{p.BillingState, "billing_state", "BillingState"},
		{p.BillingZipCode, "billing_zip_code", "BillingZipCode"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			sl.ReportError(f.value, f.json, f.name, tagBilling, "")
		}
	}

	if z := p.BillingZipCode; strings.TrimSpace(z) != "" && !IsZipCode(z) {
		sl.ReportError(z, "billing_zip_code", "BillingZipCode", "zipcode", "")
	}
}
