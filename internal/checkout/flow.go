// Package checkout runs the three-stage checkout: shipping, payment and
// confirmation. Forward moves require the stage's form to validate.
package checkout

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ashendes/storefront-demo/internal/metrics"
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/patterns"
	"github.com/ashendes/storefront-demo/internal/pricing"
	"github.com/ashendes/storefront-demo/internal/validation"
	log "github.com/sirupsen/logrus"
)

// DefaultProcessingDelay is the simulated payment processing time
const DefaultProcessingDelay = 1500 * time.Millisecond

// Cart is the part of the session cart the flow reads
type Cart interface {
	Items() []models.CartItem
	Lines() []pricing.Line
}

// Config wires a Flow to its session
type Config struct {
	SessionID       string
	Table           *pricing.Table
	Validator       *validation.Validator
	Cart            Cart
	Promo           func() *pricing.Promo
	ProcessingDelay time.Duration
	Bulkhead        *patterns.Bulkhead
	Now             func() time.Time
}

// Flow is one session's checkout. Safe for concurrent use.
type Flow struct {
	cfg Config

	// life ends when the owning session is torn down
	life  context.Context
	close context.CancelFunc

	mutex          sync.RWMutex
	stage          Stage
	shipping       models.ShippingDetails
	payment        models.PaymentDetails
	shippingErrors validation.FieldErrors
	paymentErrors  validation.FieldErrors
	shippingDone   bool
	processing     bool
	order          *models.Order
}

// New starts a flow in the shipping stage with default form values
func New(cfg Config) *Flow {
	if cfg.Table == nil {
		cfg.Table = pricing.DefaultTable()
	}
	if cfg.Validator == nil {
		cfg.Validator = validation.New()
	}
	if cfg.Promo == nil {
		cfg.Promo = func() *pricing.Promo { return nil }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Bulkhead == nil {
		cfg.Bulkhead = patterns.NewBulkhead(1, "payment", "checkout")
	}

	life, closeFn := context.WithCancel(context.Background())
	return &Flow{
		cfg:            cfg,
		life:           life,
		close:          closeFn,
		stage:          StageShipping,
		shipping:       models.NewShippingDetails(),
		payment:        models.NewPaymentDetails(),
		shippingErrors: validation.FieldErrors{},
		paymentErrors:  validation.FieldErrors{},
	}
}

// Close ends the flow. Payment processing in progress is interrupted and no
// order is placed; later submits fail with ErrClosed.
func (f *Flow) Close() {
	f.close()
}

// Stage returns the current stage
func (f *Flow) Stage() Stage {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.stage
}

// Shipping returns the shipping form as last entered
func (f *Flow) Shipping() models.ShippingDetails {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.shipping
}

// Payment returns the payment form as last entered. It holds the full card
// number; never serialize it.
func (f *Flow) Payment() models.PaymentDetails {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.payment
}

// Order returns the placed order, nil before confirmation
func (f *Flow) Order() *models.Order {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	if f.order == nil {
		return nil
	}
	o := *f.order
	return &o
}

// UpdateShipping saves a shipping draft. Errors on every changed field are
// cleared without re-validating.
func (f *Flow) UpdateShipping(d models.ShippingDetails) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.stage != StageShipping {
		return fmt.Errorf("editing shipping in %s stage: %w", f.stage, ErrIllegalTransition)
	}
	f.shippingErrors.ClearChanged(f.shipping, d)
	f.shipping = d
	return nil
}

// SubmitShipping validates d and moves to the payment stage. A failing form
// returns a *validation.Error and leaves the stage unchanged.
func (f *Flow) SubmitShipping(d models.ShippingDetails) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.stage != StageShipping {
		return fmt.Errorf("submitting shipping in %s stage: %w", f.stage, ErrIllegalTransition)
	}

	errs := f.cfg.Validator.Shipping(d)
	if _, err := f.cfg.Table.DeliveryOption(d.DeliveryOption); err != nil {
		if errs == nil {
			errs = validation.FieldErrors{}
		}
		errs["delivery_option"] = validation.FieldError{
			Kind:    validation.PatternMismatch,
			Message: "Please select a delivery option",
		}
	}

	f.shipping = d
	if len(errs) > 0 {
		f.shippingErrors = errs
		recordValidation("shipping", errs)
		return &validation.Error{Fields: errs}
	}

	f.shippingErrors = validation.FieldErrors{}
	f.shippingDone = true
	f.transition(StagePayment)
	return nil
}

// Back returns from payment to shipping; the shipping form keeps its data
func (f *Flow) Back() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.stage != StagePayment {
		return fmt.Errorf("back from %s stage: %w", f.stage, ErrIllegalTransition)
	}
	if f.processing {
		return ErrSubmitInProgress
	}
	f.transition(StageShipping)
	return nil
}

// UpdatePayment saves a payment draft, clearing errors on changed fields
func (f *Flow) UpdatePayment(d models.PaymentDetails) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.stage != StagePayment {
		return fmt.Errorf("editing payment in %s stage: %w", f.stage, ErrIllegalTransition)
	}
	if f.processing {
		return ErrSubmitInProgress
	}
	f.paymentErrors.ClearChanged(f.payment, d)
	f.payment = d
	return nil
}

// SubmitPayment validates d, waits out the processing delay and places the
// order. If ctx ends or the flow is closed during processing, no order is
// placed and the flow stays in the payment stage.
func (f *Flow) SubmitPayment(ctx context.Context, d models.PaymentDetails) (*models.Order, error) {
	f.mutex.Lock()
	if f.life.Err() != nil {
		f.mutex.Unlock()
		return nil, ErrClosed
	}
	if f.stage != StagePayment {
		stage := f.stage
		f.mutex.Unlock()
		return nil, fmt.Errorf("submitting payment in %s stage: %w", stage, ErrIllegalTransition)
	}
	if f.processing {
		f.mutex.Unlock()
		return nil, ErrSubmitInProgress
	}

	f.payment = d
	if errs := f.cfg.Validator.Payment(d); len(errs) > 0 {
		f.paymentErrors = errs
		f.mutex.Unlock()
		recordValidation("payment", errs)
		return nil, &validation.Error{Fields: errs}
	}
	f.paymentErrors = validation.FieldErrors{}

	items := f.cfg.Cart.Items()
	if len(items) == 0 {
		f.mutex.Unlock()
		return nil, ErrEmptyCart
	}
	f.processing = true
	f.mutex.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(f.life, cancel)
	defer stop()

	err := f.cfg.Bulkhead.Execute(ctx, func(ctx context.Context) error {
		return patterns.Sleep(ctx, f.cfg.ProcessingDelay)
	})

	f.mutex.Lock()
	defer f.mutex.Unlock()
	f.processing = false

	if f.life.Err() != nil {
		err = ErrClosed
	}
	if err != nil {
		metrics.OrdersTotal.WithLabelValues("abandoned").Inc()
		log.WithFields(log.Fields{
			"session_id": f.cfg.SessionID,
			"error":      err,
		}).Warn("Payment processing interrupted")
		return nil, fmt.Errorf("processing payment: %w", err)
	}

	f.payment = d
	order := f.buildOrder(items, d)
	f.order = order
	f.transition(StageConfirmation)

	metrics.OrdersTotal.WithLabelValues("placed").Inc()
	metrics.OrderAmount.Observe(order.Pricing.Total.Dollars())
	log.WithFields(log.Fields{
		"session_id": f.cfg.SessionID,
		"order_id":   order.ID,
		"items":      len(order.Items),
		"total":      order.Pricing.Total.String(),
		"card":       validation.MaskCard(d.CardNumber),
	}).Info("Order placed")

	o := *order
	return &o, nil
}

// Pricing is the current breakdown. Delivery and gift wrap count only once
// the shipping form has been submitted; until then standard delivery applies.
func (f *Flow) Pricing() pricing.Breakdown {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.pricing(f.cfg.Cart.Lines())
}

// Summary assembles the checkout page
func (f *Flow) Summary() models.CheckoutResponse {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	resp := models.CheckoutResponse{
		Stage:           f.stage.String(),
		Steps:           f.steps(),
		Items:           f.cfg.Cart.Items(),
		Pricing:         f.pricing(f.cfg.Cart.Lines()),
		DeliveryOptions: f.cfg.Table.DeliveryOptions(),
		Shipping:        f.shipping,
		Payment:         summarize(f.payment),
	}

	switch f.stage {
	case StageShipping:
		resp.Errors = f.shippingErrors.Wire()
	case StagePayment:
		resp.Errors = f.paymentErrors.Wire()
	case StageConfirmation:
		o := *f.order
		resp.Order = &o
		resp.Items = o.Items
		resp.Pricing = o.Pricing
	}
	return resp
}

// Errors returns the current stage's outstanding field errors
func (f *Flow) Errors() validation.FieldErrors {
	f.mutex.RLock()
	defer f.mutex.RUnlock()

	src := f.shippingErrors
	if f.stage == StagePayment {
		src = f.paymentErrors
	}
	out := make(validation.FieldErrors, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func (f *Flow) pricing(lines []pricing.Line) pricing.Breakdown {
	in := pricing.Input{Lines: lines, Promo: f.cfg.Promo()}

	deliveryID := pricing.DeliveryStandard
	if f.shippingDone {
		deliveryID = f.shipping.DeliveryOption
		in.GiftWrap = f.shipping.GiftWrapping
	}
	opt, err := f.cfg.Table.DeliveryOption(deliveryID)
	if err != nil {
		opt, _ = f.cfg.Table.DeliveryOption(pricing.DeliveryStandard)
	}
	in.Shipping = opt.Price
	return f.cfg.Table.Compute(in)
}

func (f *Flow) buildOrder(items []models.CartItem, payment models.PaymentDetails) *models.Order {
	placed := f.cfg.Now()
	delivery, _ := f.cfg.Table.DeliveryOption(f.shipping.DeliveryOption)

	lines := make([]pricing.Line, len(items))
	for i, item := range items {
		lines[i] = pricing.Line{UnitPrice: item.Price, Quantity: item.Quantity}
	}

	return &models.Order{
		ID:                OrderID(placed),
		Email:             f.shipping.Email,
		Items:             items,
		Shipping:          f.shipping,
		Payment:           summarize(payment),
		Delivery:          delivery,
		Pricing:           f.pricing(lines),
		PlacedAt:          placed,
		EstimatedDelivery: placed.AddDate(0, 0, delivery.LeadDays),
	}
}

func (f *Flow) transition(to Stage) {
	from := f.stage
	f.stage = to
	metrics.CheckoutTransitions.WithLabelValues(from.String(), to.String()).Inc()
	log.WithFields(log.Fields{
		"session_id": f.cfg.SessionID,
		"from":       from,
		"to":         to,
	}).Debug("Checkout stage changed")
}

func (f *Flow) steps() []models.CheckoutStep {
	current := f.stage.Number()
	steps := make([]models.CheckoutStep, len(stageLabels))
	for i, l := range stageLabels {
		n := i + 1
		steps[i] = models.CheckoutStep{
			Number:    n,
			Label:     l.label,
			Completed: n < current || (n == current && f.stage.IsTerminal()),
			Current:   n == current,
		}
	}
	return steps
}

// OrderID is "JC" followed by the last 8 digits of the Unix millisecond time
func OrderID(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "JC" + ms
}

func summarize(p models.PaymentDetails) models.PaymentSummary {
	s := models.PaymentSummary{
		CardName:           p.CardName,
		ExpiryDate:         p.ExpiryDate,
		BillingAddressSame: p.BillingAddressSame,
	}
	if p.CardNumber != "" {
		s.CardLast4 = validation.LastFour(p.CardNumber)
	}
	if !p.BillingAddressSame {
		s.BillingAddress = p.BillingAddress
		s.BillingCity = p.BillingCity
		s.BillingState = p.BillingState
		s.BillingZipCode = p.BillingZipCode
	}
	return s
}

func recordValidation(form string, errs validation.FieldErrors) {
	for field, e := range errs {
		metrics.ValidationFailures.WithLabelValues(form, field, string(e.Kind)).Inc()
	}
}
