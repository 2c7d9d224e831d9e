package transport

import (
	"net/http"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/middleware"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SellerListResponse represents a filtered view of the artisan directory
type SellerListResponse struct {
	Sellers []domain.Seller `json:"sellers"`
	Count   int             `json:"count"`
}

// SellerHandler handles HTTP requests for the artisan directory
type SellerHandler struct {
	catalogService service.CatalogService
	logger         *zap.Logger
}

// NewSellerHandler creates a new SellerHandler
func NewSellerHandler(catalogService service.CatalogService, logger *zap.Logger) *SellerHandler {
	return &SellerHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// RegisterRoutes registers all seller routes
func (h *SellerHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/sellers", func(r chi.Router) {
		r.Get("/", h.ListSellers)
		r.Get("/{id}", h.GetSeller)
	})
}

// ListSellers returns artisans matching the search text, highest rated first
// unless another sort key is requested
func (h *SellerHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := q.Get("q")

	sortBy := domain.SellerSortRating
	switch key := q.Get("sort"); key {
	case "", string(domain.SellerSortRating):
	case string(domain.SellerSortReviews):
		sortBy = domain.SellerSortReviews
	case string(domain.SellerSortName):
		sortBy = domain.SellerSortName
	default:
		middleware.RespondWithValidationErrors(w, []middleware.ValidationError{
			{Field: "sort", Message: "unknown sort key"},
		})
		return
	}

	sellers, err := h.catalogService.FilterSellers(r.Context(), search, sortBy)
	if err != nil {
		h.logger.Error("Failed to filter sellers", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list sellers")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, SellerListResponse{
		Sellers: sellers,
		Count:   len(sellers),
	})
}

// GetSeller returns a single seller profile by ID
func (h *SellerHandler) GetSeller(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid seller ID")
		return
	}

	seller, err := h.catalogService.GetSeller(r.Context(), id)
	if err != nil {
		h.logger.Debug("Seller lookup failed", zap.String("seller_id", id.String()), zap.Error(err))
		middleware.RespondWithError(w, http.StatusNotFound, "seller not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, seller)
}
