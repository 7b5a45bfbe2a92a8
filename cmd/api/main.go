package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/docs"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/config"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/handler"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/logger"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/queue/kafka"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/repository/clickhouse"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/service"
)

// @title E-commerce Analytics Platform API
// @version 1.0
// @description API for ingesting behavioral events and serving dashboard analytics
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.ServiceEnvironment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.ServiceEnvironment),
		zap.String("port", cfg.ServiceAPIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.ServiceHost

	ctx := context.Background()

	// Provision the event streams before accepting traffic
	if err := kafka.EnsureTopics(ctx, kafka.AdminConfig{
		Brokers:           cfg.KafkaBrokers(),
		TopicPartitions:   cfg.KafkaTopicPartitions,
		ReplicationFactor: cfg.KafkaReplicationFactor,
	}, log); err != nil {
		log.Fatal("Failed to ensure Kafka topics", zap.Error(err))
	}

	// Initialize Kafka publisher
	publisher, err := kafka.NewPublisher(cfg.KafkaBrokers(), log)
	if err != nil {
		log.Fatal("Failed to create Kafka publisher", zap.Error(err))
	}
	defer func(publisher *kafka.Publisher) {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close Kafka publisher", zap.Error(err))
		}
	}(publisher)

	// Initialize ClickHouse client
	clickhouseClient, err := clickhouse.NewClient(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func(clickhouseClient *clickhouse.Client) {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}(clickhouseClient)

	// Initialize repository
	repo := clickhouse.NewRepository(clickhouseClient, log)

	// Initialize services
	eventService := service.NewEventService(publisher, log)
	dashboardService := service.NewDashboardService(repo, log)

	// Initialize handler
	h := handler.NewHandler(eventService, dashboardService, log)

	addr := fmt.Sprintf(":%s", cfg.ServiceAPIPort)
	log.Info("API server starting", zap.String("address", addr))

	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Failed to start API server", zap.Error(err))
	}
}
