package transport

import (
	"net/http"
	"slices"
	"strconv"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/middleware"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProductListResponse represents a filtered catalog view
type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
	Total    int              `json:"total"`
}

// CatalogHandler handles HTTP requests for catalog browsing
type CatalogHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
	catalogSize    int
}

// NewCatalogHandler creates a new CatalogHandler. catalogSize is the size of
// the full seed catalog, reported alongside every filtered view.
func NewCatalogHandler(catalogService service.CatalogService, catalogSize int, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
		catalogSize:    catalogSize,
	}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/sort-options", h.SortOptions)
		r.Get("/{id}", h.GetProduct)
	})
	r.Get("/api/categories", h.Categories)
}

// ListProducts returns the catalog filtered and sorted by the query
// parameters. An empty result is a valid 200 response; the client renders its
// empty state and offers a criteria reset.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	criteria, errs := parseFilterCriteria(r)
	if len(errs) > 0 {
		middleware.RespondWithValidationErrors(w, errs)
		return
	}

	products, err := h.catalogService.FilterProducts(r.Context(), criteria)
	if err != nil {
		h.logger.Error("Failed to filter products", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ProductListResponse{
		Products: products,
		Count:    len(products),
		Total:    h.catalogSize,
	})
}

func parseFilterCriteria(r *http.Request) (domain.FilterCriteria, []middleware.ValidationError) {
	criteria := domain.DefaultFilterCriteria()
	var errs []middleware.ValidationError

	q := r.URL.Query()
	criteria.Search = q.Get("q")

	if category := q.Get("category"); category != "" {
		if !slices.Contains(domain.Categories(), category) {
			errs = append(errs, middleware.ValidationError{Field: "category", Message: "unknown category"})
		} else {
			criteria.Category = category
		}
	}

	if sortBy := q.Get("sort"); sortBy != "" {
		if !slices.Contains(domain.ProductSortKeys(), sortBy) {
			errs = append(errs, middleware.ValidationError{Field: "sort", Message: "unknown sort key"})
		} else {
			criteria.SortBy = domain.ProductSortKey(sortBy)
		}
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			errs = append(errs, middleware.ValidationError{Field: "min_price", Message: "must be a non-negative integer"})
		} else {
			criteria.MinPrice = v
		}
	}

	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			errs = append(errs, middleware.ValidationError{Field: "max_price", Message: "must be a non-negative integer"})
		} else {
			criteria.MaxPrice = v
		}
	}

	return criteria, errs
}

// GetProduct returns a single product by ID
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Debug("Product lookup failed", zap.String("product_id", id.String()), zap.Error(err))
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Categories returns the filterable category list, "All" first
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]string{"categories": domain.Categories()})
}

// SortOptions returns the supported product sort keys
func (h *CatalogHandler) SortOptions(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, map[string][]string{"sort_options": domain.ProductSortKeys()})
}
