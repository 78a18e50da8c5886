// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/auth"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	httpserver "github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := middleware.NewLogger(cfg)
	logger.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Load the catalog feed. It is read once and immutable afterwards.
	source, err := catalog.LoadSource(cfg.Catalog.FeedPath)
	if err != nil {
		logger.Fatalf("Failed to load catalog feed: %v", err)
	}
	logger.WithField("products", source.Len()).Info("Catalog loaded")

	// Pick the durable storage backend. Redis keeps session state across
	// restarts; memory degrades to process-lifetime persistence.
	var store storage.Store
	var redisClient *redis.Client
	switch cfg.Storage.Backend {
	case "redis":
		redisStore, err := storage.NewRedis(cfg)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		redisClient = redisStore.Client()
		logger.Info("Redis storage backend ready")
	default:
		store = storage.NewMemory()
		logger.Warn("Using in-memory storage backend, session state will not survive restarts")
	}

	// Construct the session stores and services once; everything downstream
	// receives them by injection.
	tokens := token.NewManager(cfg.Auth.TokenSecret, cfg.App.Name, cfg.Auth.TokenExpiry)
	cartStore := cart.NewStore(source, store, logger)
	wishlistStore := wishlist.NewStore(source, store, logger)
	authService := auth.NewService(store, tokens, logger, cfg.Auth.SimulatedDelay)
	checkoutService := checkout.NewService(source, cartStore, logger, cfg.Checkout.SimulatedDelay)

	server := httpserver.NewServer(cfg, logger, routes.Deps{
		Catalog:  source,
		Cart:     cartStore,
		Wishlist: wishlistStore,
		Auth:     authService,
		Checkout: checkoutService,
		Tokens:   tokens,
	}, redisClient)

	go func() {
		if err := server.Start(); err != nil {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logger.Info("Server shutdown completed")
}
