package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/repository"

	"github.com/google/uuid"
)

// CatalogService derives ordered views of the product catalog and the seller
// directory from user-entered criteria. Filtering and sorting are pure: the
// seed collections are never mutated and identical criteria always yield
// identical sequences, so it is safe to call on every keystroke.
type CatalogService interface {
	FilterProducts(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FilterSellers(ctx context.Context, search string, sortBy domain.SellerSortKey) ([]domain.Seller, error)
	GetSeller(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
}

// NewCatalogService creates a new instance of CatalogService.
func NewCatalogService(productRepo repository.ProductRepository, sellerRepo repository.SellerRepository) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
	}
}

// FilterProducts returns the products matching the criteria, ordered by the
// criteria's sort key. An empty result is a valid view, not an error.
func (s *catalogService) FilterProducts(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	search := strings.ToLower(criteria.Search)
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesProduct(p, search, criteria) {
			continue
		}
		filtered = append(filtered, p)
	}

	// SliceStable keeps the filtered order for equal keys; the featured
	// default performs no reordering at all.
	switch criteria.SortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case domain.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered, nil
}

func matchesProduct(p domain.Product, search string, criteria domain.FilterCriteria) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(p.Name), search) &&
		!strings.Contains(strings.ToLower(p.Artisan), search) &&
		!strings.Contains(strings.ToLower(p.Description), search) {
		return false
	}
	if criteria.Category != "" && criteria.Category != domain.CategoryAll && criteria.Category != string(p.Category) {
		return false
	}
	return p.Price >= criteria.MinPrice && p.Price <= criteria.MaxPrice
}

// GetProduct retrieves a single product by ID.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// FilterSellers returns the sellers whose name, location or any specialty
// contains the search text, ordered by the given key.
func (s *catalogService) FilterSellers(ctx context.Context, search string, sortBy domain.SellerSortKey) ([]domain.Seller, error) {
	sellers, err := s.sellerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sellers: %w", err)
	}

	needle := strings.ToLower(search)
	filtered := make([]domain.Seller, 0, len(sellers))
	for _, sel := range sellers {
		if matchesSeller(sel, needle) {
			filtered = append(filtered, sel)
		}
	}

	switch sortBy {
	case domain.SellerSortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case domain.SellerSortReviews:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].TotalReviews > filtered[j].TotalReviews
		})
	case domain.SellerSortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	return filtered, nil
}

func matchesSeller(s domain.Seller, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(s.Name), needle) ||
		strings.Contains(strings.ToLower(s.Location), needle) {
		return true
	}
	for _, specialty := range s.Specialties {
		if strings.Contains(strings.ToLower(specialty), needle) {
			return true
		}
	}
	return false
}

// GetSeller retrieves a single seller profile by ID.
func (s *catalogService) GetSeller(ctx context.Context, id uuid.UUID) (*domain.Seller, error) {
	seller, err := s.sellerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return seller, nil
}
