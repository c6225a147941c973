package support

import (
	"errors"
	"testing"
	"time"

	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler holds tasks until the test fires or cancels them
type manualScheduler struct {
	run    map[string]func()
	cancel map[string]func()
	err    error
}

func newManualScheduler() *manualScheduler {
	return &manualScheduler{run: map[string]func(){}, cancel: map[string]func(){}}
}

func (m *manualScheduler) After(id string, _ time.Duration, run, cancel func()) error {
	if m.err != nil {
		return m.err
	}
	m.run[id] = run
	m.cancel[id] = cancel
	return nil
}

func validMessage() models.ContactMessage {
	return models.ContactMessage{
		Name:        "Jordan",
		Email:       "jordan@example.com",
		OrderNumber: "JC12345678",
		InquiryType: "shipping",
		Message:     "When will my order arrive?",
	}
}

func TestSubmitThenSend(t *testing.T) {
	desk := NewDesk(validation.New(), DefaultSendDelay)
	sched := newManualScheduler()

	ticket, err := desk.Submit("s1", sched, validMessage())
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusSubmitting, ticket.Status)

	sched.run[ticket.ID]()

	got, err := desk.Ticket("s1", ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusSent, got.Status)
	assert.NotNil(t, got.SentAt)

	// a late cancel does not undo a sent ticket
	sched.cancel[ticket.ID]()
	got, _ = desk.Ticket("s1", ticket.ID)
	assert.Equal(t, models.TicketStatusSent, got.Status)
}

func TestSubmitCancelled(t *testing.T) {
	desk := NewDesk(nil, DefaultSendDelay)
	sched := newManualScheduler()

	ticket, err := desk.Submit("s1", sched, validMessage())
	require.NoError(t, err)

	sched.cancel[ticket.ID]()
	got, err := desk.Ticket("s1", ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusCancelled, got.Status)
}

func TestSubmitInvalid(t *testing.T) {
	desk := NewDesk(nil, DefaultSendDelay)

	msg := validMessage()
	msg.Message = "short"
	_, err := desk.Submit("s1", newManualScheduler(), msg)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"message"}, verr.Fields.Fields())
}

func TestSubmitOnClosedScheduler(t *testing.T) {
	desk := NewDesk(nil, DefaultSendDelay)
	sched := newManualScheduler()
	sched.err = errors.New("closed")

	_, err := desk.Submit("s1", sched, validMessage())
	assert.Error(t, err)
}

func TestTicketScopedToSession(t *testing.T) {
	desk := NewDesk(nil, DefaultSendDelay)
	ticket, err := desk.Submit("s1", newManualScheduler(), validMessage())
	require.NoError(t, err)

	_, err = desk.Ticket("s2", ticket.ID)
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestFAQFilter(t *testing.T) {
	assert.Len(t, FAQ("", ""), 12)
	assert.Len(t, FAQ(FAQCategoryAll, ""), 12)
	assert.Len(t, FAQ("returns", ""), 3)
	assert.Len(t, FAQ("Sizing", ""), 2)

	tarnish := FAQ("all", "TARNISH")
	require.Len(t, tarnish, 1)
	assert.Equal(t, "care", tarnish[0].Category)

	assert.Empty(t, FAQ("payment", "ring size"))
	assert.Len(t, FAQCategories(), 6)
}

func TestChatAvailability(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2026, 5, 4, h, 30, 0, 0, time.UTC) }

	assert.False(t, ChatAvailable(day(8)))
	assert.True(t, ChatAvailable(day(9)))
	assert.True(t, ChatAvailable(day(17)))
	assert.False(t, ChatAvailable(day(18)))

	info := ContactInfo(day(10))
	assert.True(t, info.ChatAvailable)
	require.Len(t, info.Details, 4)
	assert.Equal(t, "+1 (555) 123-4567", info.Details[0].Content)
}

func TestNewsletterIdempotent(t *testing.T) {
	desk := NewDesk(nil, DefaultSendDelay)

	added, err := desk.Subscribe(models.NewsletterRequest{Email: "Fan@Example.com"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = desk.Subscribe(models.NewsletterRequest{Email: "FAN@example.com"})
	require.NoError(t, err)
	assert.False(t, added)

	_, err = desk.Subscribe(models.NewsletterRequest{Email: "nope"})
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
}
