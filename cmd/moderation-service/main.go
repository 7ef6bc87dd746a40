package main

import (
	"context"
	"fmt"
	"log"

	"github.com/LavaJover/shvark-moderation-service/internal/config"
	"github.com/LavaJover/shvark-moderation-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-moderation-service/internal/delivery/httpapi"
	publisher "github.com/LavaJover/shvark-moderation-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-moderation-service/internal/seed"
	"github.com/LavaJover/shvark-moderation-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.ModerationDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.ModerationDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init store
	store := repository.NewStore(db)

	// Default warning thresholds
	if err := seed.EnsureThresholds(context.Background(), store, cfg.Moderation.DefaultWarningThreshold); err != nil {
		log.Fatalf("failed to seed warning thresholds: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	moderationPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init sso client
	userHandler, err := handlers.NewHTTPUserHandler(fmt.Sprintf("%s:%s", cfg.SSOService.Host, cfg.SSOService.Port))
	if err != nil {
		log.Fatalf("failed to init sso client: %v", err)
	}
	// Init notification client
	notificationHandler, err := handlers.NewHTTPNotificationHandler(fmt.Sprintf("%s:%s", cfg.NotificationService.Host, cfg.NotificationService.Port))
	if err != nil {
		log.Fatalf("failed to init notification client: %v", err)
	}

	// Init metrics
	moderationMetrics := metrics.NewModerationMetrics()

	// Init action usecase
	actionUsecase := usecase.NewDefaultActionUsecase(
		store,
		userHandler,
		notificationHandler,
		moderationPublisher,
		moderationMetrics,
		cfg.NotificationService.FromEmail,
	)
	// Init warning usecase
	warningUsecase := usecase.NewDefaultWarningUsecase(
		store,
		userHandler,
		notificationHandler,
		actionUsecase,
		moderationPublisher,
		moderationMetrics,
		cfg.NotificationService.FromEmail,
	)

	// HTTP server
	moderationHandler := httpapi.NewModerationHandler(actionUsecase, warningUsecase)
	router := httpapi.NewRouter(moderationHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("moderation service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
