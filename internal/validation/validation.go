// Package validation checks the storefront's forms. Rules are declared as
// `validate` struct tags on the models; a failing form yields FieldErrors
// keyed by JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/go-playground/validator/v10"
)

const tagBilling = "billing"

// Validator checks forms against their tag rules
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the storefront's custom rules registered
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"filled":     filled,
		"emailshape": emailShape,
		"phone10":    phone10,
		"zipcode":    zipCode,
		"card16":     card16,
		"expiry":     expiry,
		"cvv":        cvv,
		"trimmin":    trimMin,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("registering %s: %v", tag, err))
		}
	}
	v.RegisterStructValidation(billingRules, models.PaymentDetails{})

	return &Validator{validate: v}
}

// Check validates form, which must be a struct or pointer to one. It returns
// nil when every rule passes.
func (v *Validator) Check(form interface{}) FieldErrors {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: programming error, not user input
		panic(err)
	}

	t := reflect.TypeOf(form)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = FieldError{
			Kind:    kindOf(fe.Tag()),
			Message: message(fe, labelOf(t, fe.StructField())),
		}
	}
	return out
}

// Shipping validates the shipping stage form
func (v *Validator) Shipping(d models.ShippingDetails) FieldErrors {
	return v.Check(d)
}

// Payment validates the payment stage form
func (v *Validator) Payment(d models.PaymentDetails) FieldErrors {
	return v.Check(d)
}

// Contact validates the contact form
func (v *Validator) Contact(m models.ContactMessage) FieldErrors {
	return v.Check(m)
}

func kindOf(tag string) Kind {
	switch tag {
	case "filled":
		return MissingField
	case tagBilling:
		return ConditionalRequirement
	default:
		return PatternMismatch
	}
}

func labelOf(t reflect.Type, structField string) string {
	if t.Kind() == reflect.Struct {
		if f, ok := t.FieldByName(structField); ok {
			if label := f.Tag.Get("label"); label != "" {
				return label
			}
		}
	}
	return structField
}

func message(fe validator.FieldError, label string) string {
	switch fe.Tag() {
	case "filled", tagBilling:
		if fe.Field() == "inquiry_type" {
			return "Please select an inquiry type"
		}
		return label + " is required"
	case "emailshape":
		return "Please enter a valid email address"
	case "phone10":
		return "Invalid phone number"
	case "zipcode":
		return "Invalid ZIP code"
	case "card16":
		return "Invalid card number"
	case "expiry":
		return "Invalid expiry date"
	case "cvv":
		return "Invalid CVV"
	case "trimmin", "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be %s characters or fewer", label, fe.Param())
	case "oneof":
		return "Please select an inquiry type"
	default:
		return label + " is invalid"
	}
}
