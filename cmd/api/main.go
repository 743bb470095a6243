// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/notify"
	"github.com/your-org/storefront/internal/domain/signup"
	catalogloader "github.com/your-org/storefront/internal/infrastructure/catalog"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/infrastructure/storage/redis"
	"github.com/your-org/storefront/internal/infrastructure/storage/sqlite"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Open durable local storage
	store, redisClient, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// Health check
	if err := store.Health(); err != nil {
		log.Fatalf("Storage health check failed: %v", err)
	}

	// Load the product catalog; read-only after this point
	catalogService, err := catalogloader.Load(cfg)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	log.Printf("📦 Catalog loaded: %d products from %s", catalogService.Len(), cfg.Catalog.Source)

	logger := middleware.NewLogger(cfg)

	// Wire core services
	svcs := &routes.Services{
		Catalog: catalogService,
		Cart:    cart.NewService(store, catalogService, logger),
		Signup:  signup.NewService(store, logger),
		UI:      notify.NewUIManager(),
		Toaster: notify.NewToaster(cfg.UI.ToastDismissDelay),
		Rotator: notify.NewRotator(cfg.UI.BackgroundRotateInterval),
	}

	// Rotate section backgrounds until shutdown
	rotatorCtx, stopRotator := context.WithCancel(context.Background())
	defer stopRotator()
	svcs.Rotator.Start(rotatorCtx)

	log.Println("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, store, redisClient, svcs)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("👋 Shutting down gracefully...")

	stopRotator()
	svcs.Toaster.Stop()

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Printf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	log.Println("✅ Server shutdown completed")
}

// openStorage opens the configured storage driver. The redis client is
// returned separately so the rate limiter can use it when present.
func openStorage(cfg *config.Config) (storage.Store, *goredis.Client, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		client, err := redis.NewConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, client.GetClient(), nil
	case config.StorageDriverSQLite:
		client, err := sqlite.NewConnection(cfg)
		if err != nil {
			return nil, nil, err
		}
		return client, nil, nil
	default:
		return storage.NewMemoryStore(), nil, nil
	}
}
