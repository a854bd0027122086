package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/blogem/auth0-gateway/authenticator"
	"github.com/blogem/auth0-gateway/config"
	"github.com/blogem/auth0-gateway/controllers"
	"github.com/blogem/auth0-gateway/database"
	"github.com/blogem/auth0-gateway/logging"
	gatewaymiddleware "github.com/blogem/auth0-gateway/middleware"
	"github.com/blogem/auth0-gateway/repositories"
	"github.com/blogem/auth0-gateway/services"
)

func main() {
	// Load environment variables from .env file, if there is one
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, nil)
	defer logger.Sync()

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Fatal("Failed to load the env vars", zap.Error(envErr))
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Discovery {
		tokenURL, err := authenticator.DiscoverTokenURL(ctx, cfg.Issuer())
		if err != nil {
			logger.Fatal("Failed to discover token endpoint", zap.Error(err))
		}
		cfg.TokenURL = tokenURL
	}

	httpClient := &http.Client{}

	// Initialize Auth0 token provider
	tokens, err := authenticator.NewAuth0Provider(authenticator.Auth0Config{
		TokenURL:     cfg.TokenURL,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Audience:     cfg.Audience,
		HTTPClient:   httpClient,
	})
	if err != nil {
		logger.Fatal("Failed to initialize Auth0 provider", zap.Error(err))
	}

	// Initialize audit database, when configured
	var db *sql.DB
	if cfg.AuditDBPath != "" {
		db, err = database.InitializeDatabase(cfg.AuditDBPath)
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer db.Close()
	}

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(cfg.ManagementURL, tokens, httpClient, repos, logger)
	ctrl := controllers.NewControllers(srvs, logger)

	// Audit writes still in flight when the server stops
	var pendingAudits sync.WaitGroup

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(ctrl, srvs, cfg, logger, &pendingAudits),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Auth0 management gateway starting",
		zap.String("port", cfg.Port),
		zap.String("domain", cfg.Domain),
		zap.String("token_url", cfg.TokenURL),
		zap.Bool("caller_auth", cfg.CallerJWTSecret != ""),
		zap.Bool("audit", srvs.Audit.Enabled()),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed", zap.Error(err))
	}

	// Handlers have returned once Shutdown completes; flush their audit entries before db.Close
	<-shutdownDone
	pendingAudits.Wait()
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, srvs *services.Services, cfg *config.Config, logger *zap.Logger, pendingAudits *sync.WaitGroup) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(gatewaymiddleware.RequestLogger(logger.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// PUBLIC ROUTES
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "auth0-gateway"}`)
	})

	// CALLER ROUTES (bearer JWT required when GATEWAY_JWT_SECRET is set)
	r.Group(func(r chi.Router) {
		if cfg.CallerJWTSecret != "" {
			r.Use(gatewaymiddleware.RequireCaller([]byte(cfg.CallerJWTSecret)))
		}

		r.Get("/actions", ctrl.Management.Actions)
		r.Get("/audit", ctrl.Audit.Index)

		r.Group(func(r chi.Router) {
			if srvs.Audit.Enabled() {
				r.Use(gatewaymiddleware.AuditLogger(srvs.Audit, logger.Named("audit"), pendingAudits))
			}
			r.Post("/auth0-management", ctrl.Management.Dispatch)
		})
	})

	return r
}
