package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moodbite/backend/config"
	"github.com/moodbite/backend/internal/api"
	"github.com/moodbite/backend/internal/database"
	"github.com/moodbite/backend/internal/middleware"
	"github.com/moodbite/backend/internal/router"
	"github.com/moodbite/backend/internal/server"
	"github.com/moodbite/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	ctx := context.Background()
	gemini, err := service.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	extractor := service.NewExtractor(service.MatchPolicy(cfg.ExtractMatchPolicy))
	videos := service.NewCachedVideoSearcher(service.NewYouTubeClient(cfg.YouTubeAPIKey), redisClient)
	enricher := service.NewEnricher(videos)
	generator := service.NewRecipeGenerator(gemini, extractor, enricher)

	authService := service.NewAuthService(db, cfg.JWTSecret)
	plannerService := service.NewPlannerService(db, gemini, extractor)

	limiterConfig := middleware.RateLimitConfig{
		Window: cfg.RateLimitWindow,
		Limit:  cfg.RateLimit,
	}
	generateLimiter := middleware.NewSlidingWindowLimiter(limiterConfig)
	generateLimiter.StartSweeper()
	defer generateLimiter.Stop()

	plannerLimiter := middleware.NewSlidingWindowLimiter(limiterConfig)
	plannerLimiter.StartSweeper()
	defer plannerLimiter.Stop()

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(db, generator, generateLimiter)
	favoriteHandler := api.NewFavoriteHandler(db)
	plannerHandler := api.NewPlannerHandler(plannerService)

	engine := router.SetupRouter(authHandler, recipeHandler, favoriteHandler, plannerHandler, authService, plannerLimiter)
	srv := server.New(engine)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start(net.JoinHostPort(cfg.ServerHost, cfg.ServerPort))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
