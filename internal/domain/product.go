package domain

import (
	"github.com/google/uuid"
)

// Category is a fixed product category.
type Category string

const (
	CategoryTextiles   Category = "Textiles"
	CategoryHomeDecor  Category = "Home Decor"
	CategorySculptures Category = "Sculptures"
	CategoryPottery    Category = "Pottery"
	CategoryJewelry    Category = "Jewelry"

	// CategoryAll is the filter value matching every category.
	CategoryAll = "All"
)

// Categories lists the filterable categories, "All" first.
func Categories() []string {
	return []string{
		CategoryAll,
		string(CategoryTextiles),
		string(CategoryHomeDecor),
		string(CategorySculptures),
		string(CategoryPottery),
		string(CategoryJewelry),
	}
}

// Product represents a handicraft listed in the catalog. Prices are whole
// rupees; catalog entries are immutable seed data.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	Category    Category  `json:"category"`
	Artisan     string    `json:"artisan"`
	Location    string    `json:"location"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	InStock     bool      `json:"in_stock"`
}

// ProductSortKey selects the ordering of a filtered product view.
type ProductSortKey string

const (
	SortFeatured  ProductSortKey = "featured"
	SortPriceAsc  ProductSortKey = "price_asc"
	SortPriceDesc ProductSortKey = "price_desc"
	SortRating    ProductSortKey = "rating"
)

// ProductSortKeys lists the supported product sort keys.
func ProductSortKeys() []string {
	return []string{
		string(SortFeatured),
		string(SortPriceAsc),
		string(SortPriceDesc),
		string(SortRating),
	}
}

// FilterCriteria holds the transient, user-controlled parameters driving a
// derived catalog view.
type FilterCriteria struct {
	Search   string
	Category string
	SortBy   ProductSortKey
	MinPrice int
	MaxPrice int
}

// DefaultFilterCriteria returns the criteria a "clear filters" action resets
// to: everything visible up to the 10000 rupee ceiling of the seed catalog.
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Search:   "",
		Category: CategoryAll,
		SortBy:   SortFeatured,
		MinPrice: 0,
		MaxPrice: 10000,
	}
}
