package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/glowdesk/admin-api/internal/config"
	"github.com/glowdesk/admin-api/internal/handler"
	authHandler "github.com/glowdesk/admin-api/internal/handler/auth"
	bookingHandler "github.com/glowdesk/admin-api/internal/handler/booking"
	catalogHandler "github.com/glowdesk/admin-api/internal/handler/catalog"
	clientHandler "github.com/glowdesk/admin-api/internal/handler/client"
	"github.com/glowdesk/admin-api/internal/middleware"
	"github.com/glowdesk/admin-api/internal/model"
	"github.com/glowdesk/admin-api/internal/repository/memory"
	"github.com/glowdesk/admin-api/internal/router"
	authService "github.com/glowdesk/admin-api/internal/service/auth"
	bookingService "github.com/glowdesk/admin-api/internal/service/booking"
	catalogService "github.com/glowdesk/admin-api/internal/service/catalog"
	clientService "github.com/glowdesk/admin-api/internal/service/client"
	"github.com/glowdesk/admin-api/pkg/auth"
	"github.com/glowdesk/admin-api/pkg/logger"
	"github.com/glowdesk/admin-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(&logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Pretty: true,
	})

	// Initialize the in-memory store. Bookings live and die with the
	// process; a real deployment would swap in a persistent repository
	// behind the same interfaces.
	store := memory.NewStore()
	if cfg.Seed.Enabled {
		store.Seed()
	}

	bookingRepo := memory.NewBookingRepository(store)
	clientRepo := memory.NewClientRepository(store)
	catalogRepo := memory.NewCatalogRepository(store)
	userRepo := memory.NewUserRepository(store)

	jwtExpiry := time.Duration(cfg.JWT.ExpiryHours) * time.Hour
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, jwtExpiry)

	bookingSvc := bookingService.NewService(bookingRepo, catalogRepo)
	clientSvc := clientService.NewService(clientRepo, bookingRepo)
	catalogSvc := catalogService.NewService(catalogRepo)
	authSvc := authService.NewService(userRepo, jwtSvc, jwtExpiry)

	if cfg.Seed.Enabled {
		if err := seedAdminUser(userRepo, cfg.Seed); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin user")
		}
	}

	m := metrics.NewMetrics("glowdesk")

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc)
	bookingH := bookingHandler.NewHandler(bookingSvc, m)
	clientH := clientHandler.NewHandler(clientSvc)
	catalogH := catalogHandler.NewHandler(catalogSvc)

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(authMiddleware, authH, bookingH, clientH, catalogH, h, m, router.Config{
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		CORSConfig:     corsConfig,
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func seedAdminUser(users *memory.UserRepository, seed config.SeedConfig) error {
	hash, err := authService.HashPassword(seed.AdminPassword)
	if err != nil {
		return err
	}
	return users.Create(context.Background(), &model.User{
		ID:           uuid.New(),
		Email:        seed.AdminEmail,
		Name:         "Administrator",
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
}
