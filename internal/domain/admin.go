package domain

import (
	"github.com/google/uuid"
)

// DashboardStats aggregates the headline numbers for the admin overview.
type DashboardStats struct {
	TotalUsers     int     `json:"total_users"`
	TotalArtisans  int     `json:"total_artisans"`
	TotalProducts  int     `json:"total_products"`
	TotalOrders    int     `json:"total_orders"`
	TotalRevenue   int     `json:"total_revenue"`
	MonthlyGrowth  float64 `json:"monthly_growth"`
	PendingOrders  int     `json:"pending_orders"`
	ActiveProducts int     `json:"active_products"`
}

// OrderStatus is the fulfilment state shown on the admin order list.
type OrderStatus string

const (
	OrderCompleted  OrderStatus = "completed"
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
)

// Order is an entry on the admin order list. Seed orders use the fixture
// dates; orders recorded from completed payments use the payment timestamp.
type Order struct {
	ID            string      `json:"id"`
	Customer      string      `json:"customer"`
	Product       string      `json:"product"`
	Artisan       string      `json:"artisan"`
	Amount        int         `json:"amount"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Date          string      `json:"date"`
}

// ApplicationStatus is the review state of an artisan application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ArtisanApplication is a pending request to join the platform as a seller.
type ArtisanApplication struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Location    string            `json:"location"`
	Specialty   string            `json:"specialty"`
	Experience  string            `json:"experience"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate string            `json:"applied_date"`
	Portfolio   []string          `json:"portfolio"`
}

// ProductReport is a buyer complaint against a listed product.
type ProductReport struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	Artisan     string    `json:"artisan"`
	ReportedBy  string    `json:"reported_by"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	Date        string    `json:"date"`
}
