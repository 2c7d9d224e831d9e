package transport

import (
	"context"
	"errors"
	"net/http"

	"artisan-bazaar/internal/middleware"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdminHandler handles HTTP requests for the admin dashboard
type AdminHandler struct {
	adminService service.AdminService
	logger       *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// RegisterRoutes registers all admin routes. Every route requires an
// authenticated admin.
func (h *AdminHandler) RegisterRoutes(r chi.Router, authMiddleware, requireAdmin func(http.Handler) http.Handler) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireAdmin)

		r.Get("/stats", h.Stats)
		r.Get("/orders", h.Orders)
		r.Get("/applications", h.Applications)
		r.Post("/applications/{id}/approve", h.ApproveApplication)
		r.Post("/applications/{id}/reject", h.RejectApplication)
		r.Get("/reports", h.Reports)
	})
}

// Stats returns the dashboard overview numbers
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context())
	if err != nil {
		h.logger.Error("Failed to get dashboard stats", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, stats)
}

// Orders returns the order list, newest first
func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.adminService.ListOrders(r.Context())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"count":  len(orders),
	})
}

// Applications returns the pending artisan applications
func (h *AdminHandler) Applications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.adminService.ListApplications(r.Context())
	if err != nil {
		h.logger.Error("Failed to list applications", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list applications")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"applications": applications,
		"count":        len(applications),
	})
}

// ApproveApplication records an approval decision for an artisan application
func (h *AdminHandler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	h.decideApplication(w, r, h.adminService.ApproveArtisan, "approved")
}

// RejectApplication records a rejection decision for an artisan application
func (h *AdminHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	h.decideApplication(w, r, h.adminService.RejectArtisan, "rejected")
}

func (h *AdminHandler) decideApplication(
	w http.ResponseWriter,
	r *http.Request,
	decide func(ctx context.Context, id uuid.UUID) error,
	outcome string,
) {
	applicationID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid application ID")
		return
	}

	if err := decide(r.Context(), applicationID); err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "application not found")
			return
		}

		h.logger.Error("Application decision failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to process application")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"id":     applicationID.String(),
		"status": outcome,
	})
}

// Reports returns the buyer complaints
func (h *AdminHandler) Reports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.adminService.ListReports(r.Context())
	if err != nil {
		h.logger.Error("Failed to list reports", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reports": reports,
		"count":   len(reports),
	})
}
