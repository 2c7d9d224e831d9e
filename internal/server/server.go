package server

import (
	"fmt"
	"net/http"
	"time"

	"artisan-bazaar/internal/config"
	custommiddleware "artisan-bazaar/internal/middleware"
	"artisan-bazaar/internal/repository"
	"artisan-bazaar/internal/seed"
	"artisan-bazaar/internal/service"
	"artisan-bazaar/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger

	paymentService service.PaymentService
	imageService   service.ImageService
	redisClient    *redis.Client
}

func NewServer(cfg *config.Config, logger *zap.Logger) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	for _, mw := range custommiddleware.DefaultMiddlewareStack() {
		router.Use(mw)
	}
	router.Use(custommiddleware.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Rate limiting is optional: without a Redis host the API runs unthrottled
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
			Window:            cfg.RateLimit.Window,
			KeyPrefix:         "ratelimit",
		}, logger))
	}

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories over the seed fixtures
	products := seed.Products()
	productRepo := repository.NewProductRepository(products)
	sellerRepo := repository.NewSellerRepository(seed.Sellers())
	userRepo := repository.NewUserRepository()
	refreshTokenRepo := repository.NewRefreshTokenRepository()
	sessionRepo := repository.NewSessionRepository()
	seedOrders := seed.RecentOrders()
	orderRepo := repository.NewOrderRepository(seedOrders)

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, sellerRepo)
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg.JWT.Secret, cfg.Simulation.LoginLatency)
	paymentService := service.NewPaymentService(productRepo, sessionRepo, cfg.Simulation.PaymentLatency, logger)
	imageService := service.NewImageService(cfg.Simulation.ImageLatency, seed.SuggestedPrompts(), logger)
	adminService := service.NewAdminService(
		orderRepo,
		productRepo,
		seed.DashboardStats(),
		len(seedOrders),
		seed.ArtisanApplications(),
		seed.ProductReports(),
		logger,
	)

	// Completed payments show up as orders on the admin dashboard
	paymentService.OnComplete(adminService.RecordPayment)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, len(products), logger)
	sellerHandler := transport.NewSellerHandler(catalogService, logger)
	authHandler := transport.NewAuthHandler(authService, logger)
	paymentHandler := transport.NewPaymentHandler(paymentService, logger)
	imageHandler := transport.NewImageHandler(imageService, logger)
	adminHandler := transport.NewAdminHandler(adminService, logger)

	// Create auth middleware
	authMiddleware := custommiddleware.AuthMiddleware(cfg.JWT.Secret, logger)
	requireAdmin := custommiddleware.RequireAdmin(logger)

	// Register routes
	catalogHandler.RegisterRoutes(router)
	sellerHandler.RegisterRoutes(router)
	authHandler.RegisterRoutes(router, authMiddleware)
	paymentHandler.RegisterRoutes(router)
	imageHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router, authMiddleware, requireAdmin)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config:         cfg,
		logger:         logger,
		paymentService: paymentService,
		imageService:   imageService,
		redisClient:    redisClient,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	// Stop pending simulation timers
	s.paymentService.Shutdown()
	s.imageService.Shutdown()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			s.logger.Error("Failed to close redis connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
