package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jampzdev/dispatch_coordination_system/internal/config"
	"github.com/jampzdev/dispatch_coordination_system/internal/fleet"
	v1 "github.com/jampzdev/dispatch_coordination_system/internal/handler/http/v1"
	"github.com/jampzdev/dispatch_coordination_system/internal/matching"
	"github.com/jampzdev/dispatch_coordination_system/internal/notify"
	"github.com/jampzdev/dispatch_coordination_system/internal/reconciler"
	"github.com/jampzdev/dispatch_coordination_system/internal/repository"
	"github.com/jampzdev/dispatch_coordination_system/internal/service"
	"github.com/jampzdev/dispatch_coordination_system/pkg/logger"
	"github.com/jampzdev/dispatch_coordination_system/pkg/postgres"
	redisclient "github.com/jampzdev/dispatch_coordination_system/pkg/redis"

	_ "github.com/jampzdev/dispatch_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Dispatch Coordination System API
// @version 1.0
// @description Emergency dispatch coordination API: unit recommendations, suggestion approval and dispatch lifecycle tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	alertPublisher := notify.NewRedisPublisher(redisClient)

	alertWorker := notify.NewWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	store := repository.NewStore(dbpool)

	fleetClient := fleet.NewClient(cfg.FleetAPIURL, cfg.FleetAPITimeout)
	scorer := matching.NewScorer(rand.New(rand.NewSource(time.Now().UnixNano())))

	dispatchService := service.NewDispatchService(store, fleetClient, scorer, alertPublisher, log, cfg)

	statusReconciler := reconciler.New(store, log)
	if err := statusReconciler.Start(cfg.ReconcileSchedule); err != nil {
		log.Fatalf("Failed to start status reconciler: %v", err)
	}
	defer statusReconciler.Stop()

	handler := v1.NewHandler(dispatchService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
