// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DavidL050/Forex/config"
	"github.com/DavidL050/Forex/db"
	"github.com/DavidL050/Forex/handler"
	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/provider"
	"github.com/DavidL050/Forex/repository"
	"github.com/DavidL050/Forex/router"
	"github.com/DavidL050/Forex/service"
)

// NewHandler wires repositories, services and handlers into the HTTP router.
func NewHandler(cfg *config.Config, database *sql.DB) (http.Handler, error) {
	pairs, err := service.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load currency catalog: %w", err)
	}

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)

	userService := service.NewUserService(userRepo)
	tokenService := service.NewTokenService([]byte(cfg.JWT.SecretKey), cfg.JWT.TTL)
	authService := service.NewAuthService(userService, sessionRepo, tokenService)

	quoteService := service.NewQuoteService(
		provider.NewRatesClient(cfg.Providers.Rates.BaseURL, cfg.Providers.Rates.AppID, cfg.Providers.Timeout),
		provider.NewHistoryClient(cfg.Providers.History.BaseURL, cfg.Providers.Timeout),
		pairs,
	)

	return router.NewRouter(
		authService,
		handler.NewAuthHandler(authService, cfg.Cookie.Secure),
		handler.NewUserHandler(userService),
		handler.NewQuoteHandler(quoteService),
	), nil
}

func Run() {
	logger.Init()
	logger.Log.Info("Logger initialized")

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Error loading configuration: %v", err)
	}
	logger.Log.Info("Configuration loaded successfully")

	if cfg.Providers.Rates.AppID == "" {
		logger.Log.Warn("providers.rates.app_id is empty, rate lookups will fail")
	}

	database, err := db.Connect(cfg.Database)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(database); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
	}

	h, err := NewHandler(cfg, database)
	if err != nil {
		logger.Log.Fatalf("Error building handlers: %v", err)
	}

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
