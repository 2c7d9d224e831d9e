package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrApplicationNotFound = errors.New("artisan application not found")
)

// AdminService backs the admin dashboard. Stats and lists come from the seed
// fixtures plus orders recorded from completed simulated payments; approve
// and reject actions are logged only and mutate nothing, matching the
// platform's current moderation workflow.
type AdminService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	ListApplications(ctx context.Context) ([]domain.ArtisanApplication, error)
	ListReports(ctx context.Context) ([]domain.ProductReport, error)
	ApproveArtisan(ctx context.Context, id uuid.UUID) error
	RejectArtisan(ctx context.Context, id uuid.UUID) error
	RecordPayment(event domain.PaymentCompletedEvent)
}

type adminService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	baseStats    domain.DashboardStats
	seedOrders   int
	applications []domain.ArtisanApplication
	reports      []domain.ProductReport
	logger       *zap.Logger
}

// NewAdminService creates a new instance of AdminService over the seed
// dashboard fixtures.
func NewAdminService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	baseStats domain.DashboardStats,
	seedOrders int,
	applications []domain.ArtisanApplication,
	reports []domain.ProductReport,
	logger *zap.Logger,
) AdminService {
	return &adminService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		baseStats:    baseStats,
		seedOrders:   seedOrders,
		applications: slices.Clone(applications),
		reports:      slices.Clone(reports),
		logger:       logger,
	}
}

// Stats returns the overview numbers, folding orders recorded during this
// session into the seed totals.
func (s *adminService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := s.baseStats

	count, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	live := count - s.seedOrders
	if live > 0 {
		stats.TotalOrders += live

		orders, err := s.orderRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list orders: %w", err)
		}
		for _, o := range orders[:live] {
			stats.TotalRevenue += o.Amount
		}
	}

	return &stats, nil
}

// ListOrders returns the order list, newest first.
func (s *adminService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListApplications returns the pending artisan applications.
func (s *adminService) ListApplications(ctx context.Context) ([]domain.ArtisanApplication, error) {
	return slices.Clone(s.applications), nil
}

// ListReports returns the buyer complaints.
func (s *adminService) ListReports(ctx context.Context) ([]domain.ProductReport, error) {
	return slices.Clone(s.reports), nil
}

// ApproveArtisan logs an approval decision. No data is mutated.
func (s *adminService) ApproveArtisan(ctx context.Context, id uuid.UUID) error {
	app, err := s.findApplication(id)
	if err != nil {
		return err
	}
	s.logger.Info("Approving artisan",
		zap.String("application_id", id.String()),
		zap.String("name", app.Name),
	)
	return nil
}

// RejectArtisan logs a rejection decision. No data is mutated.
func (s *adminService) RejectArtisan(ctx context.Context, id uuid.UUID) error {
	app, err := s.findApplication(id)
	if err != nil {
		return err
	}
	s.logger.Info("Rejecting artisan",
		zap.String("application_id", id.String()),
		zap.String("name", app.Name),
	)
	return nil
}

func (s *adminService) findApplication(id uuid.UUID) (*domain.ArtisanApplication, error) {
	for i := range s.applications {
		if s.applications[i].ID == id {
			return &s.applications[i], nil
		}
	}
	return nil, ErrApplicationNotFound
}

// RecordPayment appends an order for a completed simulated payment. It is
// registered as a PaymentListener on the payment service.
func (s *adminService) RecordPayment(event domain.PaymentCompletedEvent) {
	ctx := context.Background()

	order := domain.Order{
		ID:            "ORD-" + event.TransactionID,
		Customer:      "Guest Checkout",
		Amount:        event.Amount,
		Status:        domain.OrderCompleted,
		PaymentMethod: displayMethod(event.Method),
		Date:          event.Timestamp.Format("2006-01-02"),
	}
	if product, err := s.productRepo.FindByID(ctx, event.ProductID); err == nil {
		order.Product = product.Name
		order.Artisan = product.Artisan
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		s.logger.Error("Failed to record order",
			zap.String("transaction_id", event.TransactionID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Order recorded",
		zap.String("order_id", order.ID),
		zap.Int("amount", order.Amount),
	)
}

func displayMethod(m domain.PaymentMethod) string {
	switch m {
	case domain.MethodCard:
		return "Card"
	case domain.MethodUPI:
		return "UPI"
	case domain.MethodNetBanking:
		return "Net Banking"
	default:
		return string(m)
	}
}
