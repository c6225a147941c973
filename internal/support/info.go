package support

import (
	"time"

	"github.com/ashendes/storefront-demo/internal/models"
)

// Live chat is staffed from ChatOpensHour up to (not including) ChatClosesHour
const (
	ChatOpensHour  = 9
	ChatClosesHour = 18
)

var contactDetails = []models.ContactInfoItem{
	{Title: "Customer Service", Content: "+1 (555) 123-4567", Action: "Call us", Href: "tel:+15551234567"},
	{Title: "Email Support", Content: "support@jewelcraft.com", Action: "Send email", Href: "mailto:support@jewelcraft.com"},
	{Title: "Business Hours", Content: "Monday - Friday: 9:00 AM - 6:00 PM EST\nSaturday: 10:00 AM - 4:00 PM EST\nSunday: Closed"},
	{Title: "Visit Us", Content: "123 Jewelry Lane, Suite 456\nNew York, NY 10001", Action: "Get directions", Href: "https://maps.google.com/?q=40.7589,-73.9851"},
}

// ChatAvailable reports whether live chat is staffed at now
func ChatAvailable(now time.Time) bool {
	h := now.Hour()
	return h >= ChatOpensHour && h < ChatClosesHour
}

// ContactInfo assembles the contact details panel for now
func ContactInfo(now time.Time) models.ContactInfoResponse {
	details := make([]models.ContactInfoItem, len(contactDetails))
	copy(details, contactDetails)
	return models.ContactInfoResponse{
		Details:       details,
		ChatAvailable: ChatAvailable(now),
	}
}
