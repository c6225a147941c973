package catalog

import (
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
)

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Elegant Rose Gold Necklace with Crystal Pendant",
			Price:         pricing.FromDollars(89.99),
			OriginalPrice: pricing.FromDollars(129.99),
			Image:         "https://images.pexels.com/photos/1191531/pexels-photo-1191531.jpeg",
			Alt:           "Elegant rose gold necklace with teardrop crystal pendant on white display stand",
			Rating:        4.8,
			ReviewCount:   124,
			Category:      "Necklaces",
			Material:      "Rose Gold Plated",
			Color:         "Rose Gold",
			IsNew:         true,
		},
		{
			ID:          "2",
			Name:        "Classic Pearl Drop Earrings",
			Price:       pricing.FromDollars(45.99),
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908",
			Alt:         "Classic white pearl drop earrings with gold hooks on marble surface",
			Rating:      4.6,
			ReviewCount: 89,
			Category:    "Earrings",
			Material:    "Gold Plated",
			Color:       "Gold",
		},
		{
			ID:            "3",
			Name:          "Delicate Chain Bracelet with Heart Charm",
			Price:         pricing.FromDollars(34.99),
			OriginalPrice: pricing.FromDollars(49.99),
			Image:         "https://images.pixabay.com/photo/2017/08/01/11/48/jewelry-2564394_1280.jpg",
			Alt:           "Delicate silver chain bracelet with heart charm on velvet cushion",
			Rating:        4.7,
			ReviewCount:   156,
			Category:      "Bracelets",
			Material:      "Silver Plated",
			Color:         "Silver",
			RequiresSize:  true,
		},
		{
			ID:           "4",
			Name:         "Statement Cocktail Ring with Emerald Stone",
			Price:        pricing.FromDollars(67.99),
			Image:        "https://images.pexels.com/photos/1457842/pexels-photo-1457842.jpeg",
			Alt:          "Statement cocktail ring with large emerald green stone in gold setting",
			Rating:       4.9,
			ReviewCount:  203,
			Category:     "Rings",
			Material:     "Gold Plated",
			Color:        "Gold",
			IsNew:        true,
			RequiresSize: true,
		},
		{
			ID:            "5",
			Name:          "Vintage-Inspired Chandelier Earrings",
			Price:         pricing.FromDollars(56.99),
			OriginalPrice: pricing.FromDollars(79.99),
			Image:         "https://images.unsplash.com/photo-1611591437281-460bfbe1220a",
			Alt:           "Vintage-inspired chandelier earrings with crystal drops on black display",
			Rating:        4.5,
			ReviewCount:   78,
			Category:      "Earrings",
			Material:      "Silver Plated",
			Color:         "Silver",
		},
		{
			ID:          "6",
			Name:        "Layered Gold Chain Necklace Set",
			Price:       pricing.FromDollars(78.99),
			Image:       "https://images.pixabay.com/photo/2020/05/11/22/31/chain-5160327_1280.jpg",
			Alt:         "Layered gold chain necklace set with three different lengths on white background",
			Rating:      4.8,
			ReviewCount: 167,
			Category:    "Necklaces",
			Material:    "Gold Plated",
			Color:       "Gold",
		},
		{
			ID:          "7",
			Name:        "Minimalist Stud Earrings Set",
			Price:       pricing.FromDollars(29.99),
			Image:       "https://images.pexels.com/photos/1454171/pexels-photo-1454171.jpeg",
			Alt:         "Minimalist stud earrings set with geometric shapes in rose gold",
			Rating:      4.4,
			ReviewCount: 92,
			Category:    "Earrings",
			Material:    "Rose Gold Plated",
			Color:       "Rose Gold",
			IsNew:       true,
		},
		{
			ID:            "8",
			Name:          "Bohemian Beaded Bracelet Stack",
			Price:         pricing.FromDollars(42.99),
			OriginalPrice: pricing.FromDollars(59.99),
			Image:         "https://images.unsplash.com/photo-1611591437281-460bfbe1220a",
			Alt:           "Bohemian beaded bracelet stack with colorful stones and gold accents",
			Rating:        4.6,
			ReviewCount:   134,
			Category:      "Bracelets",
			Material:      "Mixed Metals",
			Color:         "Multi",
			RequiresSize:  true,
		},
	}
}

var careInstructions = []string{
	"Store in the provided jewelry box or soft pouch when not wearing to prevent scratches",
	"Avoid contact with water, perfumes, lotions, and harsh chemicals to maintain the finish",
	"Remove jewelry before swimming, showering, or exercising to prevent tarnishing",
	"Clean gently with a soft, dry cloth after each wear to remove oils and maintain shine",
	"Keep away from direct sunlight and extreme temperatures for longevity",
	"Apply cosmetics, hairspray, and perfume before putting on your jewelry",
}

const shippingInfo = "We offer multiple shipping options to ensure your jewelry arrives safely and on time. " +
	"All orders are carefully packaged in protective materials and our signature gift boxes.\n\n" +
	"Standard Shipping (5-7 business days): Free on orders over $50. Orders are processed within 1-2 business days.\n\n" +
	"Express Shipping (2-3 business days): $12.99 flat rate. Orders placed before 2 PM EST ship the same day.\n\n" +
	"Tracking information will be sent to your email once your order ships."

// flagshipDetail is the fully written-up record for product 1
func flagshipDetail(p models.Product) models.ProductDetail {
	return models.ProductDetail{
		Product:        p,
		SKU:            "JC-RGN-2024-001",
		Availability:   "In Stock",
		MaterialDetail: "High-Quality Brass with Rose Gold Plating",
		Images: []models.ProductImage{
			{ID: "1", URL: "https://images.pexels.com/photos/1191531/pexels-photo-1191531.jpeg", Alt: "Rose gold necklace with delicate chain and pendant displayed on white marble surface"},
			{ID: "2", URL: "https://images.pexels.com/photos/1454171/pexels-photo-1454171.jpeg", Alt: "Close-up detail of rose gold necklace pendant showing intricate floral design"},
			{ID: "3", URL: "https://images.pexels.com/photos/1927259/pexels-photo-1927259.jpeg", Alt: "Rose gold necklace worn by model with elegant white dress in natural lighting"},
			{ID: "4", URL: "https://images.pexels.com/photos/1413420/pexels-photo-1413420.jpeg", Alt: "Side view of rose gold necklace showing chain length and clasp detail"},
			{ID: "5", URL: "https://images.pexels.com/photos/1191536/pexels-photo-1191536.jpeg", Alt: "Rose gold necklace in luxury gift box with velvet interior"},
		},
		Description: "Elevate your style with a delicate rose gold-plated chain adorned with a pendant that captures light from every angle.\n\n" +
			"Crafted from high-quality brass with premium rose gold plating, it offers the look of fine jewelry at an accessible price. " +
			"The adjustable chain fits all necklines and the lobster clasp keeps it secure.\n\n" +
			"Every piece ships in our signature gift box.",
		CareInstructions: careInstructions,
		Reviews: []models.Review{
			{ID: "1", Author: "Sarah Mitchell", Rating: 5, Date: "January 15, 2026", Verified: true,
				Comment: "Absolutely stunning! The rose gold color is perfect and the quality exceeded my expectations."},
			{ID: "2", Author: "Emily Rodriguez", Rating: 5, Date: "January 10, 2026", Verified: true,
				Comment: "The pendant design is so elegant and delicate. Great value for money and fast shipping too."},
			{ID: "3", Author: "Jessica Chen", Rating: 4, Date: "January 5, 2026", Verified: true,
				Comment: "Beautiful craftsmanship. I wish the chain was slightly longer, but the adjustable length works well for me."},
			{ID: "4", Author: "Amanda Thompson", Rating: 5, Date: "December 28, 2025", Verified: true,
				Comment: "Bought this as a gift for my sister and she loves it. The finish hasn't tarnished at all."},
			{ID: "5", Author: "Rachel Williams", Rating: 5, Date: "December 20, 2025", Verified: true,
				Comment: "Perfect everyday necklace. Elegant enough for work, great with casual outfits too."},
		},
		ShippingInfo: shippingInfo,
	}
}

var skuCodes = map[string]string{
	"Necklaces": "NCK",
	"Earrings":  "EAR",
	"Bracelets": "BRC",
	"Rings":     "RNG",
}

var sizeOptions = map[string][]models.SizeOption{
	"Rings": {
		{ID: "5", Label: "5", Available: true},
		{ID: "6", Label: "6", Available: true},
		{ID: "7", Label: "7", Available: true},
		{ID: "8", Label: "8", Available: true},
		{ID: "9", Label: "9", Available: false},
		{ID: "10", Label: "10", Available: true},
	},
	"Bracelets": {
		{ID: "6.5", Label: "6.5 inches", Available: true},
		{ID: "7", Label: "7 inches", Available: true},
		{ID: "7.5", Label: "7.5 inches", Available: true},
	},
}

// derivedDetail builds a detail record for a listing-only product
func derivedDetail(p models.Product) models.ProductDetail {
	d := models.ProductDetail{
		Product:          p,
		SKU:              "JC-" + skuCodes[p.Category] + "-2024-00" + p.ID,
		Availability:     "In Stock",
		MaterialDetail:   p.Material,
		Images:           []models.ProductImage{{ID: "1", URL: p.Image, Alt: p.Alt}},
		Description:      p.Name + " in " + p.Material + ". Ships in our signature gift box.",
		CareInstructions: careInstructions,
		Reviews:          []models.Review{},
		ShippingInfo:     shippingInfo,
	}
	if p.RequiresSize {
		d.Sizes = sizeOptions[p.Category]
	}
	return d
}
