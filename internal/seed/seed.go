// Package seed holds the static marketplace data. The collections returned
// here are the sole data source for the catalog, the seller directory and the
// admin dashboard; callers must treat them as immutable.
package seed

import (
	"artisan-bazaar/internal/domain"

	"github.com/google/uuid"
)

// Fixture IDs are stable so that derived records (seller products, orders)
// and tests can refer to entities across collections.
var (
	ProductSilkSaree      = uuid.MustParse("0b6f4a1c-8a2e-4f1d-9c3b-5e7a2d8f1a01")
	ProductBrassBowl      = uuid.MustParse("0b6f4a1c-8a2e-4f1d-9c3b-5e7a2d8f1a02")
	ProductWoodenElephant = uuid.MustParse("0b6f4a1c-8a2e-4f1d-9c3b-5e7a2d8f1a03")
	ProductCeramicTeaSet  = uuid.MustParse("0b6f4a1c-8a2e-4f1d-9c3b-5e7a2d8f1a04")
	ProductWallHanging    = uuid.MustParse("0b6f4a1c-8a2e-4f1d-9c3b-5e7a2d8f1a05")
	ProductSilverJewelry  = uuid.MustParse("0b6f4a1c-8a2e-4f1d-9c3b-5e7a2d8f1a06")

	SellerPriyaSharma = uuid.MustParse("3d914c6e-2b5f-4a8c-b1e7-9f0a6c4d2e11")
	SellerRajeshKumar = uuid.MustParse("3d914c6e-2b5f-4a8c-b1e7-9f0a6c4d2e12")
	SellerMeeraDevi   = uuid.MustParse("3d914c6e-2b5f-4a8c-b1e7-9f0a6c4d2e13")
)

// Products returns the seed catalog.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:          ProductSilkSaree,
			Name:        "Handwoven Silk Saree",
			Price:       8500,
			Category:    domain.CategoryTextiles,
			Artisan:     "Priya Sharma",
			Location:    "Varanasi, UP",
			Rating:      4.8,
			Reviews:     124,
			ImageURL:    "/beautiful-handwoven-silk-saree-with-traditional-pa.jpg",
			Description: "Exquisite handwoven silk saree with traditional Banarasi patterns",
			InStock:     true,
		},
		{
			ID:          ProductBrassBowl,
			Name:        "Brass Decorative Bowl",
			Price:       2200,
			Category:    domain.CategoryHomeDecor,
			Artisan:     "Rajesh Kumar",
			Location:    "Moradabad, UP",
			Rating:      4.6,
			Reviews:     89,
			ImageURL:    "/ornate-brass-decorative-bowl-with-intricate-engrav.jpg",
			Description: "Ornate brass bowl with intricate hand-carved designs",
			InStock:     true,
		},
		{
			ID:          ProductWoodenElephant,
			Name:        "Wooden Elephant Sculpture",
			Price:       3500,
			Category:    domain.CategorySculptures,
			Artisan:     "Meera Devi",
			Location:    "Jaipur, RJ",
			Rating:      4.9,
			Reviews:     156,
			ImageURL:    "/carved-wooden-elephant-sculpture-with-detailed-cra.jpg",
			Description: "Hand-carved wooden elephant with detailed craftsmanship",
			InStock:     true,
		},
		{
			ID:          ProductCeramicTeaSet,
			Name:        "Ceramic Tea Set",
			Price:       1800,
			Category:    domain.CategoryPottery,
			Artisan:     "Amit Patel",
			Location:    "Khurja, UP",
			Rating:      4.5,
			Reviews:     67,
			ImageURL:    "/beautiful-ceramic-tea-set-with-traditional-indian-.jpg",
			Description: "Beautiful ceramic tea set with traditional patterns",
			InStock:     false,
		},
		{
			ID:          ProductWallHanging,
			Name:        "Embroidered Wall Hanging",
			Price:       1200,
			Category:    domain.CategoryTextiles,
			Artisan:     "Sunita Singh",
			Location:    "Lucknow, UP",
			Rating:      4.7,
			Reviews:     93,
			ImageURL:    "/colorful-embroidered-wall-hanging-with-traditional.jpg",
			Description: "Colorful embroidered wall hanging with traditional motifs",
			InStock:     true,
		},
		{
			ID:          ProductSilverJewelry,
			Name:        "Silver Jewelry Set",
			Price:       4500,
			Category:    domain.CategoryJewelry,
			Artisan:     "Kiran Joshi",
			Location:    "Jaipur, RJ",
			Rating:      4.8,
			Reviews:     201,
			ImageURL:    "/elegant-silver-jewelry-set-with-traditional-indian.jpg",
			Description: "Elegant silver jewelry set with traditional designs",
			InStock:     true,
		},
	}
}

// Sellers returns the seed artisan directory.
func Sellers() []domain.Seller {
	return []domain.Seller{
		{
			ID:           SellerPriyaSharma,
			Name:         "Priya Sharma",
			Location:     "Varanasi, UP",
			AvatarURL:    "/placeholder.svg?height=64&width=64",
			Rating:       4.8,
			TotalReviews: 124,
			JoinedDate:   "March 2020",
			Specialties:  []string{"Silk Weaving", "Traditional Sarees", "Banarasi Work"},
			Bio:          "Master weaver with 15+ years of experience in traditional Banarasi silk sarees. Learned the craft from my grandmother and continue the family tradition.",
			Achievements: []string{
				"Featured in National Handicrafts Exhibition 2023",
				"Winner of Best Traditional Weaver Award 2022",
				"Certified by Handloom Export Promotion Council",
			},
			Products: []domain.SellerProduct{
				{
					ID:          ProductSilkSaree,
					Name:        "Handwoven Silk Saree",
					Price:       8500,
					ImageURL:    "/beautiful-handwoven-silk-saree-with-traditional-pa.jpg",
					Description: "Exquisite handwoven silk saree with traditional Banarasi patterns",
					Rating:      4.8,
				},
			},
			Reviews: []domain.Review{
				{
					ID:            uuid.MustParse("7a1e9d3b-4c6f-4b2a-8e5d-1f3c7b9a2d21"),
					UserName:      "Anjali Gupta",
					UserAvatarURL: "/placeholder.svg?height=40&width=40",
					Rating:        5,
					Comment:       "Absolutely beautiful saree! The quality is exceptional and the craftsmanship is outstanding. Priya was very helpful throughout the process.",
					Date:          "2 weeks ago",
					ProductName:   "Handwoven Silk Saree",
				},
				{
					ID:            uuid.MustParse("7a1e9d3b-4c6f-4b2a-8e5d-1f3c7b9a2d22"),
					UserName:      "Meera Patel",
					UserAvatarURL: "/placeholder.svg?height=40&width=40",
					Rating:        4,
					Comment:       "Great work and fast delivery. The colors are vibrant and the fabric quality is excellent.",
					Date:          "1 month ago",
					ProductName:   "Traditional Banarasi Saree",
				},
			},
		},
		{
			ID:           SellerRajeshKumar,
			Name:         "Rajesh Kumar",
			Location:     "Moradabad, UP",
			AvatarURL:    "/placeholder.svg?height=64&width=64",
			Rating:       4.6,
			TotalReviews: 89,
			JoinedDate:   "June 2019",
			Specialties:  []string{"Brass Work", "Metal Crafts", "Decorative Items"},
			Bio:          "Third-generation brass craftsman specializing in traditional Moradabad brassware. Expert in creating intricate decorative pieces and functional items.",
			Achievements: []string{
				"Export Excellence Award 2023",
				"Traditional Craft Master Certification",
				"Featured in International Craft Fair",
			},
			Products: []domain.SellerProduct{
				{
					ID:          ProductBrassBowl,
					Name:        "Brass Decorative Bowl",
					Price:       2200,
					ImageURL:    "/ornate-brass-decorative-bowl-with-intricate-engrav.jpg",
					Description: "Ornate brass bowl with intricate hand-carved designs",
					Rating:      4.6,
				},
			},
			Reviews: []domain.Review{
				{
					ID:            uuid.MustParse("7a1e9d3b-4c6f-4b2a-8e5d-1f3c7b9a2d23"),
					UserName:      "Vikram Singh",
					UserAvatarURL: "/placeholder.svg?height=40&width=40",
					Rating:        5,
					Comment:       "Excellent craftsmanship! The brass work is intricate and beautiful. Highly recommend Rajesh for quality brass items.",
					Date:          "3 weeks ago",
					ProductName:   "Brass Decorative Bowl",
				},
			},
		},
		{
			ID:           SellerMeeraDevi,
			Name:         "Meera Devi",
			Location:     "Jaipur, RJ",
			AvatarURL:    "/placeholder.svg?height=64&width=64",
			Rating:       4.9,
			TotalReviews: 156,
			JoinedDate:   "January 2018",
			Specialties:  []string{"Wood Carving", "Sculptures", "Traditional Art"},
			Bio:          "Renowned wood carving artist from Jaipur with expertise in creating detailed sculptures and decorative pieces using traditional Rajasthani techniques.",
			Achievements: []string{
				"National Award for Excellence in Wood Carving 2023",
				"Rajasthan State Craft Award Winner",
				"UNESCO Recognition for Traditional Craft",
			},
			Products: []domain.SellerProduct{
				{
					ID:          ProductWoodenElephant,
					Name:        "Wooden Elephant Sculpture",
					Price:       3500,
					ImageURL:    "/carved-wooden-elephant-sculpture-with-detailed-cra.jpg",
					Description: "Hand-carved wooden elephant with detailed craftsmanship",
					Rating:      4.9,
				},
			},
			Reviews: []domain.Review{
				{
					ID:            uuid.MustParse("7a1e9d3b-4c6f-4b2a-8e5d-1f3c7b9a2d24"),
					UserName:      "Ravi Sharma",
					UserAvatarURL: "/placeholder.svg?height=40&width=40",
					Rating:        5,
					Comment:       "Incredible attention to detail! The wooden elephant is a masterpiece. Meera is truly talented.",
					Date:          "1 week ago",
					ProductName:   "Wooden Elephant Sculpture",
				},
			},
		},
	}
}

// DashboardStats returns the seed admin overview numbers.
func DashboardStats() domain.DashboardStats {
	return domain.DashboardStats{
		TotalUsers:     1247,
		TotalArtisans:  89,
		TotalProducts:  456,
		TotalOrders:    2341,
		TotalRevenue:   1847500,
		MonthlyGrowth:  12.5,
		PendingOrders:  23,
		ActiveProducts: 423,
	}
}

// RecentOrders returns the seed entries on the admin order list.
func RecentOrders() []domain.Order {
	return []domain.Order{
		{
			ID:            "ORD-001",
			Customer:      "Anjali Gupta",
			Product:       "Handwoven Silk Saree",
			Artisan:       "Priya Sharma",
			Amount:        8500,
			Status:        domain.OrderCompleted,
			PaymentMethod: "Card",
			Date:          "2024-01-15",
		},
		{
			ID:            "ORD-002",
			Customer:      "Vikram Singh",
			Product:       "Brass Decorative Bowl",
			Artisan:       "Rajesh Kumar",
			Amount:        2200,
			Status:        domain.OrderPending,
			PaymentMethod: "UPI",
			Date:          "2024-01-14",
		},
		{
			ID:            "ORD-003",
			Customer:      "Meera Patel",
			Product:       "Wooden Elephant Sculpture",
			Artisan:       "Meera Devi",
			Amount:        3500,
			Status:        domain.OrderProcessing,
			PaymentMethod: "Net Banking",
			Date:          "2024-01-14",
		},
	}
}

// ArtisanApplications returns the seed pending applications.
func ArtisanApplications() []domain.ArtisanApplication {
	return []domain.ArtisanApplication{
		{
			ID:          uuid.MustParse("5c2b8f4d-6e1a-4d9c-a3f7-2b8e5d1c4a31"),
			Name:        "Kavita Sharma",
			Location:    "Jaipur, RJ",
			Specialty:   "Block Printing",
			Experience:  "8 years",
			Status:      domain.ApplicationPending,
			AppliedDate: "2024-01-10",
			Portfolio:   []string{"Traditional Rajasthani prints", "Natural dye techniques", "Cotton textiles"},
		},
		{
			ID:          uuid.MustParse("5c2b8f4d-6e1a-4d9c-a3f7-2b8e5d1c4a32"),
			Name:        "Arjun Patel",
			Location:    "Kutch, GJ",
			Specialty:   "Mirror Work",
			Experience:  "12 years",
			Status:      domain.ApplicationPending,
			AppliedDate: "2024-01-08",
			Portfolio:   []string{"Kutchi embroidery", "Mirror work sarees", "Traditional bags"},
		},
	}
}

// ProductReports returns the seed buyer complaints.
func ProductReports() []domain.ProductReport {
	return []domain.ProductReport{
		{
			ID:          uuid.MustParse("9e4d2c7a-1b5f-4e8c-b6a3-7d2f9c5e1b41"),
			ProductName: "Ceramic Vase Set",
			Artisan:     "Ravi Kumar",
			ReportedBy:  "Customer123",
			Reason:      "Quality issues",
			Status:      "investigating",
			Date:        "2024-01-12",
		},
		{
			ID:          uuid.MustParse("9e4d2c7a-1b5f-4e8c-b6a3-7d2f9c5e1b42"),
			ProductName: "Wooden Jewelry Box",
			Artisan:     "Sunita Devi",
			ReportedBy:  "BuyerABC",
			Reason:      "Not as described",
			Status:      "resolved",
			Date:        "2024-01-10",
		},
	}
}

// SuggestedPrompts returns the quick suggestions offered by the image
// generator.
func SuggestedPrompts() []string {
	return []string{
		"Traditional Indian brass lamp with intricate carvings",
		"Handwoven silk fabric with golden threads and paisley patterns",
		"Wooden elephant sculpture with detailed traditional motifs",
		"Ceramic pottery with blue and white traditional designs",
		"Silver jewelry with traditional Indian gemstone settings",
		"Embroidered textile with colorful floral patterns",
	}
}
