package support

import (
	"strings"

	"github.com/ashendes/storefront-demo/internal/models"
)

// FAQCategoryAll selects every category
const FAQCategoryAll = "all"

var faqCategories = []models.FAQCategory{
	{ID: FAQCategoryAll, Label: "All Questions"},
	{ID: "shipping", Label: "Shipping"},
	{ID: "returns", Label: "Returns"},
	{ID: "sizing", Label: "Sizing"},
	{ID: "care", Label: "Care"},
	{ID: "payment", Label: "Payment"},
}

var faqs = []models.FAQItem{
	{Category: "shipping", Question: "What are your shipping options and delivery times?",
		Answer: "We offer Standard Shipping (5-7 business days, $5.99), Express Shipping (2-3 business days, $12.99), and Next Day Delivery (1 business day, $24.99). All orders are processed within 1-2 business days."},
	{Category: "shipping", Question: "Do you ship internationally?",
		Answer: "Yes, we ship to over 50 countries worldwide. International shipping rates and delivery times vary by destination. Customs duties and taxes may apply and are the responsibility of the recipient."},
	{Category: "shipping", Question: "How can I track my order?",
		Answer: "Once your order ships, you'll receive a tracking number via email. You can also track your order from the Order History section of your account."},
	{Category: "returns", Question: "What is your return policy?",
		Answer: "We offer a 30-day return policy for unworn items in original condition with tags attached. Returns are free for US customers. Refunds are processed within 5-7 business days of receiving your return."},
	{Category: "returns", Question: "Can I exchange an item?",
		Answer: "Yes! We offer free exchanges within 30 days. Simply initiate a return and place a new order for the item you want. We'll refund your original purchase once we receive the return."},
	{Category: "returns", Question: "What items cannot be returned?",
		Answer: "Earrings (for hygiene reasons), personalized items, and sale items marked as final sale cannot be returned. Gift cards are also non-refundable."},
	{Category: "sizing", Question: "How do I find my ring size?",
		Answer: "Use our printable ring sizer available on product pages, or visit a local jeweler for professional sizing. Our rings are available in sizes 5-10, including half sizes."},
	{Category: "sizing", Question: "Are your necklaces adjustable?",
		Answer: "Most of our necklaces feature adjustable chains with 2-inch extenders, allowing you to customize the length. Specific measurements are listed on each product page."},
	{Category: "care", Question: "How should I care for my artificial jewelry?",
		Answer: "Store pieces separately in a cool, dry place. Avoid contact with water, perfumes, and lotions. Clean gently with a soft cloth. Remove jewelry before swimming, exercising, or sleeping."},
	{Category: "care", Question: "Will the jewelry tarnish?",
		Answer: "Our jewelry is made with high-quality materials and protective coatings to resist tarnishing. With proper care, your pieces will maintain their beauty for years. We also offer a 6-month warranty against manufacturing defects."},
	{Category: "payment", Question: "What payment methods do you accept?",
		Answer: "We accept all major credit cards (Visa, Mastercard, American Express, Discover), PayPal, Apple Pay, Google Pay, and Shop Pay. All transactions are secured with SSL encryption."},
	{Category: "payment", Question: "Do you offer payment plans?",
		Answer: "Yes! We partner with Afterpay and Klarna to offer interest-free payment plans. Split your purchase into 4 installments with no hidden fees. Available on orders $35-$1,000."},
}

// FAQCategories lists the FAQ filter tabs
func FAQCategories() []models.FAQCategory {
	out := make([]models.FAQCategory, len(faqCategories))
	copy(out, faqCategories)
	return out
}

// FAQ returns the questions in category (or all) whose question or answer
// contains query, case-insensitively.
func FAQ(category, query string) []models.FAQItem {
	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))

	out := []models.FAQItem{}
	for _, item := range faqs {
		if category != "" && category != FAQCategoryAll && item.Category != category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Question), query) &&
			!strings.Contains(strings.ToLower(item.Answer), query) {
			continue
		}
		out = append(out, item)
	}
	return out
}
