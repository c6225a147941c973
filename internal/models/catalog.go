package models

// FilterOption is a facet entry with the number of products it matches
type FilterOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PriceRange is an inclusive price window in dollars
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ActiveFilter is a removable filter chip
type ActiveFilter struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"label"`
}

// SortOption is one entry of the sort dropdown
type SortOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProductListResponse is the listing page payload
type ProductListResponse struct {
	Products      []Product      `json:"products"`
	ResultCount   int            `json:"result_count"`
	Sort          string         `json:"sort"`
	SortOptions   []SortOption   `json:"sort_options"`
	Categories    []FilterOption `json:"categories"`
	Materials     []FilterOption `json:"materials"`
	Colors        []FilterOption `json:"colors"`
	PriceRange    PriceRange     `json:"price_range"`
	ActiveFilters []ActiveFilter `json:"active_filters"`
	Wishlist      []string       `json:"wishlist"`
}

// SearchResult is one hit of the header search box
type SearchResult struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Path     string  `json:"path"`
}

// HomeResponse is the homepage payload
type HomeResponse struct {
	Bestsellers []Product `json:"bestsellers"`
	NewArrivals []Product `json:"new_arrivals"`
	Collections []string  `json:"collections"`
}

// Route is a navigable screen
type Route struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
