package repository

import (
	"context"
	"errors"
	"slices"

	"artisan-bazaar/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type productRepository struct {
	products []domain.Product
	byID     map[uuid.UUID]int
}

// NewProductRepository creates a ProductRepository over the given seed
// collection. The collection is never mutated after construction.
func NewProductRepository(products []domain.Product) ProductRepository {
	byID := make(map[uuid.UUID]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &productRepository{
		products: slices.Clone(products),
		byID:     byID,
	}
}

// List returns a fresh copy of the catalog in seed order, so callers can
// filter and sort without touching the seed collection.
func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	return slices.Clone(r.products), nil
}

// FindByID looks up a single product.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}
