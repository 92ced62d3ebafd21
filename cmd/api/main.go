package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/georgemunganga/emt-api/internal/config"
	"github.com/georgemunganga/emt-api/internal/database"
	"github.com/georgemunganga/emt-api/internal/modules/auth"
	"github.com/georgemunganga/emt-api/internal/modules/customer"
	"github.com/georgemunganga/emt-api/internal/modules/payment"
	"github.com/georgemunganga/emt-api/internal/modules/user"
	"github.com/georgemunganga/emt-api/internal/modules/vendor"
	"github.com/georgemunganga/emt-api/internal/platform/logger"
	"github.com/georgemunganga/emt-api/internal/platform/telemetry"
	"github.com/georgemunganga/emt-api/internal/platform/web"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, cfg.ServiceName, cfg.OTelExporter, cfg.OTelEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up tracing")
	}

	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Msg("connected to database")

	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
		log.Info().Msg("migrations applied")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           newRouter(cfg, db, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownCompleted := make(chan struct{})
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("tracer shutdown")
		}
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("database close")
		}
		close(shutdownCompleted)
	}()

	log.Info().Str("addr", srv.Addr).Msg("EMT API server starting")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
	<-shutdownCompleted
	log.Info().Msg("shutdown complete")
}

func newRouter(cfg *config.Config, db *sql.DB, log zerolog.Logger) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(web.RequestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(web.BaseURL(cfg.PublicBaseURL))
	router.Use(telemetry.Middleware(cfg.ServiceName, "/healthz"))

	router.Get("/healthz", web.Health(db))

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo, cfg.JWTSecret)

	// ── Resources ───────────────────────────────────────────
	customerService := customer.NewService(customer.NewPostgresRepository(db), userService)
	vendorService := vendor.NewService(
		vendor.NewStorePostgresRepository(db),
		vendor.NewVendInfoPostgresRepository(db),
		customerService,
	)
	paymentService := payment.NewService(payment.NewPostgresRepository(db), customerService)

	router.Route(web.APIPrefix, func(r chi.Router) {
		userHandler := user.NewHandler(userService)
		userHandler.RegisterPublicRoutes(r)
		auth.NewHandler(authService).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			if cfg.AuthRequired {
				r.Use(auth.RequireBearer(authService))
			}
			userHandler.RegisterRoutes(r)
			customer.NewHandler(customerService).RegisterRoutes(r)
			vendor.NewHandler(vendorService).RegisterRoutes(r)
			payment.NewHandler(paymentService).RegisterRoutes(r)
		})
	})
	return router
}
