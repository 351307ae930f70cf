package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"stockledger/configs"
	"stockledger/internal/cache"
	"stockledger/internal/database"
	deliveryhttp "stockledger/internal/delivery/http"
	"stockledger/internal/infra"
	"stockledger/internal/repository"
	"stockledger/internal/service"
	"stockledger/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := configs.Load()
	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	stockRepo := repository.NewStockRepository(db)
	credRepo := repository.NewCredentialRepository(db)

	// Optional redis price cache
	var priceCache service.PriceCache
	if cfg.Redis.URL != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Printf("WARNING: Redis unavailable, price cache disabled: %v", err)
		} else {
			defer redisClient.Close()
			priceCache = redisClient
			log.Println("[OK] Redis price cache enabled")
		}
	}

	ttl, err := time.ParseDuration(cfg.Ledger.PriceCacheTTL)
	if err != nil {
		log.Printf("WARNING: Invalid PRICE_CACHE_TTL %q, using 5s", cfg.Ledger.PriceCacheTTL)
		ttl = 5 * time.Second
	}

	// Initialize services
	priceService := service.NewPriceService(stockRepo, priceCache, ttl)
	executionService := usecase.NewExecutionService(userRepo, txnRepo, priceService)
	queryService := usecase.NewQueryService(userRepo, txnRepo)
	auditService := service.NewAuditService(userRepo, txnRepo)

	// Periodic ledger audit
	scheduler := infra.NewScheduler(auditService, cfg.Ledger.AuditCronSpec)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start audit scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true

	deliveryhttp.SetupRoutes(e, &deliveryhttp.RouterConfig{
		AuthHandler:        deliveryhttp.NewAuthHandler(credRepo),
		UserHandler:        deliveryhttp.NewUserHandler(userRepo),
		StockHandler:       deliveryhttp.NewStockHandler(stockRepo),
		TransactionHandler: deliveryhttp.NewTransactionHandler(executionService, queryService),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Stockledger starting on %s (env: %s)", addr, cfg.Server.Env)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}
