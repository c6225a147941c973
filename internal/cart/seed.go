package cart

import (
	"github.com/ashendes/storefront-demo/internal/models"
	"github.com/ashendes/storefront-demo/internal/pricing"
)

func seedItems() []models.CartItem {
	return []models.CartItem{
		{
			ID:          "1",
			ProductID:   "1",
			Name:        "Elegant Rose Gold Necklace with Crystal Pendant",
			Price:       pricing.FromDollars(45.99),
			Quantity:    1,
			MaxQuantity: 10,
			Image:       "https://images.pexels.com/photos/1191531/pexels-photo-1191531.jpeg",
			Alt:         "Elegant rose gold necklace with teardrop crystal pendant on white marble surface",
			Category:    "Necklaces",
			SelectedOptions: &models.SelectedOptions{
				Size:  "18 inches",
				Color: "Rose Gold",
			},
		},
		{
			ID:              "2",
			ProductID:       "2",
			Name:            "Vintage Pearl Drop Earrings",
			Price:           pricing.FromDollars(32.50),
			Quantity:        2,
			MaxQuantity:     15,
			Image:           "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908",
			Alt:             "Vintage style pearl drop earrings with gold hooks on velvet display",
			Category:        "Earrings",
			SelectedOptions: &models.SelectedOptions{Color: "Gold"},
		},
		{
			ID:          "3",
			ProductID:   "3",
			Name:        "Delicate Chain Bracelet with Heart Charm",
			Price:       pricing.FromDollars(28.75),
			Quantity:    1,
			MaxQuantity: 12,
			Image:       "https://images.pixabay.com/photo/2017/08/01/00/38/jewelry-2562598_1280.jpg",
			Alt:         "Delicate gold chain bracelet with small heart charm on white background",
			Category:    "Bracelets",
			SelectedOptions: &models.SelectedOptions{
				Size:  "7 inches",
				Color: "Gold",
			},
		},
	}
}
