package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cardfolio/backend/internal/achievements"
	"github.com/cardfolio/backend/internal/api"
	"github.com/cardfolio/backend/internal/config"
	"github.com/cardfolio/backend/internal/database"
	"github.com/cardfolio/backend/internal/services"
	"github.com/cardfolio/backend/internal/valuation"
)

func main() {
	// Load .env if present; real environments set variables directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Initialize(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	db := database.GetDB()

	pricing := valuation.Config{
		FirstEditionMultiplier: cfg.FirstEditionMultiplier,
		USDToEURRate:           cfg.USDToEURRate,
	}

	cardCatalog, err := services.NewCardCatalog(db, cfg.CardCacheSize)
	if err != nil {
		log.Fatalf("Failed to initialize card catalog: %v", err)
	}

	statsService := services.NewStatsService(db, cardCatalog, pricing)
	countersService := services.NewCountersService(db, cardCatalog, cfg.LaunchDate)
	achievementService := services.NewAchievementService(db, achievements.NewCatalog(), statsService, countersService)

	marketClient := services.NewMarketClient(cfg.MarketAPIBaseURL, cfg.MarketAPIKey, cfg.MarketRequestsPerMin)
	priceWorker := services.NewPriceWorker(db, marketClient, cardCatalog, cfg.PriceRefreshInterval, cfg.PriceRefreshBatchSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Run the price worker with panic recovery so a bad feed response
	// cannot take down the refresh loop permanently.
	go func() {
		for {
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.Printf("PANIC in price worker: %v - restarting in 30 seconds", r)
					}
				}()
				priceWorker.Start(ctx)
			}()

			select {
			case <-ctx.Done():
				return
			case <-time.After(30 * time.Second):
				log.Println("Price worker restarting after panic recovery...")
			}
		}
	}()

	router := api.SetupRouter(cfg, statsService, achievementService, priceWorker)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
