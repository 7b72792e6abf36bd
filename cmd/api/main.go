// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/engagement"
	"github.com/your-org/storefront-backend/internal/domain/history"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/interfaces/http"
	"github.com/your-org/storefront-backend/internal/interfaces/http/routes"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := storage.NewRedisConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	repo := storage.NewRedisRepository(redisClient)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := repo.Health(ctx); err != nil {
		log.Fatalf("Redis health check failed: %v", err)
	}

	// Logging and notifications
	logger := logrus.New()
	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}
	notifier := notify.NewLogNotifier(logger)

	// Domain services
	catalogStore := catalog.NewStore(repo, notifier)

	var seed []catalog.Product
	if cfg.Store.SeedCatalog {
		seed = catalog.SeedProducts()
	}
	if err := catalogStore.Hydrate(ctx, seed); err != nil {
		log.Fatalf("Failed to hydrate catalog: %v", err)
	}

	passwords := auth.NewPasswordManager(cfg)
	tokens := auth.NewJWTManager(cfg)

	users := user.NewService(repo, notifier, passwords, tokens, cfg)
	if cfg.IsDevelopment() {
		if err := users.SeedAdmin(ctx, cfg.Store.AdminEmail, cfg.Store.AdminPassword); err != nil {
			log.Printf("Warning: admin seeding failed: %v", err)
		}
	}

	carts := cart.NewService(catalogStore, repo, notifier, cfg)
	orders := order.NewService(repo, notifier)

	services := &routes.Services{
		Catalog:    catalogStore,
		Carts:      carts,
		Wishlists:  wishlist.NewService(repo, notifier),
		History:    history.NewService(repo, notifier),
		Users:      users,
		Orders:     orders,
		Checkout:   checkout.NewService(carts, orders, notifier, cfg),
		Engagement: engagement.NewService(repo, notifier),
		PDF:        pdf.NewService(cfg),
	}

	log.Println("All systems operational")

	server := http.NewServer(cfg, redisClient, services)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
