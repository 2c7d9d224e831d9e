package repository

import (
	"context"
	"errors"
	"slices"

	"artisan-bazaar/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrSellerNotFound = errors.New("seller not found")
)

// SellerRepository defines the interface for artisan directory access.
type SellerRepository interface {
	List(ctx context.Context) ([]domain.Seller, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
}

type sellerRepository struct {
	sellers []domain.Seller
	byID    map[uuid.UUID]int
}

// NewSellerRepository creates a SellerRepository over the given seed
// collection.
func NewSellerRepository(sellers []domain.Seller) SellerRepository {
	byID := make(map[uuid.UUID]int, len(sellers))
	for i, s := range sellers {
		byID[s.ID] = i
	}
	return &sellerRepository{
		sellers: slices.Clone(sellers),
		byID:    byID,
	}
}

// List returns a fresh copy of the directory in seed order.
func (r *sellerRepository) List(ctx context.Context) ([]domain.Seller, error) {
	return slices.Clone(r.sellers), nil
}

// FindByID looks up a single seller profile.
func (r *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrSellerNotFound
	}
	s := r.sellers[i]
	return &s, nil
}
