package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Marwanegoudani/nextgenfut/internal/config"
	"github.com/Marwanegoudani/nextgenfut/internal/handlers"
	"github.com/Marwanegoudani/nextgenfut/internal/jobs"
	"github.com/Marwanegoudani/nextgenfut/internal/metrics"
	"github.com/Marwanegoudani/nextgenfut/internal/middleware"
	"github.com/Marwanegoudani/nextgenfut/internal/repositories"
	mongorepo "github.com/Marwanegoudani/nextgenfut/internal/repositories/mongo"
	"github.com/Marwanegoudani/nextgenfut/internal/routers"
	"github.com/Marwanegoudani/nextgenfut/internal/services"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dbClient, err := mongorepo.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Logout revocation degrades without redis but auth still works.
		logger.Warn("redis unreachable, token revocation disabled", zap.Error(err))
	}

	userRepo, err := mongorepo.NewUserRepo(dbClient)
	if err != nil {
		logger.Fatal("failed to initialise user repository", zap.Error(err))
	}
	matchRepo, err := mongorepo.NewMatchRepo(dbClient)
	if err != nil {
		logger.Fatal("failed to initialise match repository", zap.Error(err))
	}
	ratingRepo, err := mongorepo.NewRatingRepo(dbClient)
	if err != nil {
		logger.Fatal("failed to initialise rating repository", zap.Error(err))
	}
	denylist := repositories.NewTokenDenylist(rdb)

	matchService := services.NewMatchService(matchRepo, userRepo, logger)
	ratingService := services.NewRatingService(ratingRepo, matchRepo, userRepo)
	availabilityService := services.NewAvailabilityService(userRepo)

	authHandler := handlers.NewAuthHandler(userRepo, denylist, cfg.JWTSecret)
	matchHandler := handlers.NewMatchHandler(matchService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	healthHandler := handlers.NewHealthHandler(dbClient)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	auth := middleware.RequireAuth(cfg.JWTSecret, denylist)
	routers.AuthRoutes(router, authHandler)
	routers.MatchRoutes(router, matchHandler, auth)
	routers.RatingRoutes(router, ratingHandler, auth)
	routers.PlayerRoutes(router, availabilityHandler, auth)
	routers.HealthRoutes(router, healthHandler)

	sweeper := jobs.NewAvailabilitySweeper(userRepo, cfg.SweepSchedule, logger)
	if err := sweeper.Start(); err != nil {
		logger.Fatal("failed to start availability sweeper", zap.Error(err))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	sweeper.Stop()
	if err := dbClient.Close(shutdownCtx); err != nil {
		logger.Error("failed to close mongodb client", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Error("failed to close redis client", zap.Error(err))
	}

	logger.Info("server exited")
}
