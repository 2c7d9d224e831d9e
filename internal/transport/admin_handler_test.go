package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"artisan-bazaar/internal/domain"
	"artisan-bazaar/internal/repository"
	"artisan-bazaar/internal/seed"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	custommiddleware "artisan-bazaar/internal/middleware"
)

func newAdminRouter(t *testing.T) (chi.Router, string) {
	t.Helper()
	logger := zap.NewNop()

	authService := service.NewAuthService(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
		testJWTSecret,
		0,
	)
	seedOrders := seed.RecentOrders()
	adminService := service.NewAdminService(
		repository.NewOrderRepository(seedOrders),
		repository.NewProductRepository(seed.Products()),
		seed.DashboardStats(),
		len(seedOrders),
		seed.ArtisanApplications(),
		seed.ProductReports(),
		logger,
	)

	router := chi.NewRouter()
	NewAdminHandler(adminService, logger).RegisterRoutes(router,
		custommiddleware.AuthMiddleware(testJWTSecret, logger),
		custommiddleware.RequireAdmin(logger),
	)

	accessToken, _, _, err := authService.Login(context.Background(), "admin@example.com", "anything", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	return router, accessToken
}

func adminGet(router chi.Router, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAdminEndpoints_RequireAdminToken(t *testing.T) {
	router, _ := newAdminRouter(t)

	rec := adminGet(router, "/api/admin/stats", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// A buyer token is authenticated but not authorized
	authService := service.NewAuthService(
		repository.NewUserRepository(),
		repository.NewRefreshTokenRepository(),
		testJWTSecret,
		0,
	)
	buyerToken, _, _, err := authService.Login(context.Background(), "buyer@example.com", "anything", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("buyer login failed: %v", err)
	}
	rec = adminGet(router, "/api/admin/stats", buyerToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for buyer token, got %d", rec.Code)
	}
}

func TestAdminEndpoints_StatsAndLists(t *testing.T) {
	router, token := newAdminRouter(t)

	rec := adminGet(router, "/api/admin/stats", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from stats, got %d", rec.Code)
	}
	var stats domain.DashboardStats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("invalid stats body: %v", err)
	}
	if stats.TotalOrders != seed.DashboardStats().TotalOrders {
		t.Fatalf("unexpected order total: %d", stats.TotalOrders)
	}

	rec = adminGet(router, "/api/admin/orders", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from orders, got %d", rec.Code)
	}
	var orderList struct {
		Orders []domain.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&orderList); err != nil {
		t.Fatalf("invalid orders body: %v", err)
	}
	if orderList.Count != len(seed.RecentOrders()) {
		t.Fatalf("unexpected order count: %d", orderList.Count)
	}

	rec = adminGet(router, "/api/admin/reports", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from reports, got %d", rec.Code)
	}
}

func TestAdminEndpoints_ApplicationDecisions(t *testing.T) {
	router, token := newAdminRouter(t)

	rec := adminGet(router, "/api/admin/applications", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from applications, got %d", rec.Code)
	}
	var appList struct {
		Applications []domain.ArtisanApplication `json:"applications"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&appList); err != nil {
		t.Fatalf("invalid applications body: %v", err)
	}
	if len(appList.Applications) == 0 {
		t.Fatal("expected seed applications")
	}

	appID := appList.Applications[0].ID.String()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/applications/"+appID+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	approveRec := httptest.NewRecorder()
	router.ServeHTTP(approveRec, req)
	if approveRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from approve, got %d", approveRec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/applications/00000000-0000-0000-0000-000000000000/reject", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rejectRec := httptest.NewRecorder()
	router.ServeHTTP(rejectRec, req)
	if rejectRec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 rejecting unknown application, got %d", rejectRec.Code)
	}
}
