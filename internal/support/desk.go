// Package support runs the contact centre: contact form tickets, the FAQ,
// contact details and newsletter sign-up.
package support

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/ashendes/storefront-demo/internal/metrics"
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrTicketNotFound = errors.New("ticket not found")

// DefaultSendDelay is the simulated time to send a contact message
const DefaultSendDelay = 1500 * time.Millisecond

// Scheduler runs delayed work tied to a session's lifetime
type Scheduler interface {
	After(id string, d time.Duration, run, cancel func()) error
}

// Desk tracks contact tickets and newsletter subscribers. Safe for concurrent use.
type Desk struct {
	validator *validation.Validator
	delay     time.Duration
	now       func() time.Time

	mutex       sync.RWMutex
	tickets     map[string]*models.ContactTicket
	subscribers map[string]time.Time
}

// NewDesk creates a desk that sends messages after delay
func NewDesk(v *validation.Validator, delay time.Duration) *Desk {
	if v == nil {
		v = validation.New()
	}
	return &Desk{
		validator:   v,
		delay:       delay,
		now:         time.Now,
		tickets:     make(map[string]*models.ContactTicket),
		subscribers: make(map[string]time.Time),
	}
}

// Submit validates msg and opens a ticket in the submitting state. The ticket
// becomes sent after the send delay, or cancelled if sched drops the task
// first. A failing form returns a *validation.Error.
func (d *Desk) Submit(sessionID string, sched Scheduler, msg models.ContactMessage) (models.ContactTicket, error) {
	if errs := d.validator.Contact(msg); len(errs) > 0 {
		for field, e := range errs {
			metrics.ValidationFailures.WithLabelValues("contact", field, string(e.Kind)).Inc()
		}
		return models.ContactTicket{}, &validation.Error{Fields: errs}
	}

	ticket := &models.ContactTicket{
		ID:          uuid.New().String(),
		SessionID:   sessionID,
		Status:      models.TicketStatusSubmitting,
		InquiryType: msg.InquiryType,
		Email:       strings.TrimSpace(msg.Email),
		SubmittedAt: d.now(),
	}

	d.mutex.Lock()
	d.tickets[ticket.ID] = ticket
	d.mutex.Unlock()

	err := sched.After(ticket.ID, d.delay,
		func() { d.finish(ticket.ID, msg) },
		func() { d.cancel(ticket.ID) },
	)
	if err != nil {
		d.cancel(ticket.ID)
		return models.ContactTicket{}, err
	}

	return d.snapshot(ticket.ID), nil
}

// Ticket returns a ticket owned by sessionID
func (d *Desk) Ticket(sessionID, id string) (models.ContactTicket, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	t, ok := d.tickets[id]
	if !ok || t.SessionID != sessionID {
		return models.ContactTicket{}, ErrTicketNotFound
	}
	return *t, nil
}

// Subscribe adds email to the newsletter. It reports false if the address
// was already subscribed.
func (d *Desk) Subscribe(req models.NewsletterRequest) (bool, error) {
	if errs := d.validator.Check(req); len(errs) > 0 {
		return false, &validation.Error{Fields: errs}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	d.mutex.Lock()
	defer d.mutex.Unlock()
	if _, ok := d.subscribers[email]; ok {
		return false, nil
	}
	d.subscribers[email] = d.now()

	log.WithField("email", email).Info("Newsletter subscription added")
	return true, nil
}

func (d *Desk) finish(id string, msg models.ContactMessage) {
	d.mutex.Lock()
	t, ok := d.tickets[id]
	if !ok || t.Status != models.TicketStatusSubmitting {
		d.mutex.Unlock()
		return
	}
	sent := d.now()
	t.Status = models.TicketStatusSent
	t.SentAt = &sent
	d.mutex.Unlock()

	metrics.ContactSubmissions.WithLabelValues(msg.InquiryType, models.TicketStatusSent).Inc()
	log.WithFields(log.Fields{
		"ticket_id":    id,
		"session_id":   t.SessionID,
		"inquiry_type": msg.InquiryType,
		"order_number": msg.OrderNumber,
		"name":         strings.TrimSpace(msg.Name),
	}).Info("Contact message sent")
}

func (d *Desk) cancel(id string) {
	d.mutex.Lock()
	t, ok := d.tickets[id]
	if !ok || t.Status != models.TicketStatusSubmitting {
		d.mutex.Unlock()
		return
	}
	t.Status = models.TicketStatusCancelled
	inquiry := t.InquiryType
	d.mutex.Unlock()

	metrics.ContactSubmissions.WithLabelValues(inquiry, models.TicketStatusCancelled).Inc()
	log.WithField("ticket_id", id).Warn("Contact message cancelled")
}

func (d *Desk) snapshot(id string) models.ContactTicket {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	return *d.tickets[id]
}
