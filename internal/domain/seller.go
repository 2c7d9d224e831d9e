package domain

import (
	"github.com/google/uuid"
)

// Seller represents an artisan in the directory. Like products, sellers are
// immutable seed data.
type Seller struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	AvatarURL    string          `json:"avatar_url"`
	Rating       float64         `json:"rating"`
	TotalReviews int             `json:"total_reviews"`
	JoinedDate   string          `json:"joined_date"`
	Specialties  []string        `json:"specialties"`
	Bio          string          `json:"bio"`
	Achievements []string        `json:"achievements"`
	Products     []SellerProduct `json:"products"`
	Reviews      []Review        `json:"reviews"`
}

// SellerProduct is the condensed product listing shown on a seller profile.
type SellerProduct struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int       `json:"price"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Rating      float64   `json:"rating"`
}

// Review is a buyer review attached to a seller profile. Date is the relative
// display string from the seed data, not a timestamp.
type Review struct {
	ID            uuid.UUID `json:"id"`
	UserName      string    `json:"user_name"`
	UserAvatarURL string    `json:"user_avatar_url"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Date          string    `json:"date"`
	ProductName   string    `json:"product_name"`
}

// SellerSortKey selects the ordering of the seller directory.
type SellerSortKey string

const (
	SellerSortRating  SellerSortKey = "rating"
	SellerSortReviews SellerSortKey = "reviews"
	SellerSortName    SellerSortKey = "name"
)
