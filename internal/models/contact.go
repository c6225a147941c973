package models

import "time"

// Inquiry types accepted by the contact form
var InquiryTypes = []string{"order", "product", "shipping", "returns", "payment", "technical", "other"}

// ContactMessage is the contact form
type ContactMessage struct {
	Name        string `json:"name" label:"Name" validate:"filled,trimmin=2"`
	Email       string `json:"email" label:"Email" validate:"filled,emailshape"`
	OrderNumber string `json:"order_number,omitempty"`
	InquiryType string `json:"inquiry_type" label:"Inquiry type" validate:"filled,oneof=order product shipping returns payment technical other"`
	Message     string `json:"message" label:"Message" validate:"filled,trimmin=10,max=500"`
}

// Ticket statuses
const (
	TicketStatusSubmitting = "submitting"
	TicketStatusSent       = "sent"
	TicketStatusCancelled  = "cancelled"
)

// ContactTicket tracks a simulated contact submission
type ContactTicket struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"-"`
	Status      string     `json:"status"`
	InquiryType string     `json:"inquiry_type"`
	Email       string     `json:"email"`
	SubmittedAt time.Time  `json:"submitted_at"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
}

// FAQItem is one frequently asked question
type FAQItem struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQCategory is a filter tab on the FAQ section
type FAQCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ContactInfoItem is one block of the contact details panel
type ContactInfoItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Action  string `json:"action,omitempty"`
	Href    string `json:"href,omitempty"`
}

// ContactInfoResponse is the contact details panel
type ContactInfoResponse struct {
	Details       []ContactInfoItem `json:"details"`
	ChatAvailable bool              `json:"chat_available"`
}

// NewsletterRequest subscribes an address to the newsletter
type NewsletterRequest struct {
	Email string `json:"email" label:"Email" validate:"filled,emailshape"`
}
