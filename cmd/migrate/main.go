package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/config"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/logger"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/repository/clickhouse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

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

	log.Info("Running ClickHouse schema migration",
		zap.String("environment", cfg.ServiceEnvironment))

	ctx := context.Background()

	clickhouseClient, err := clickhouse.NewClient(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to create ClickHouse client", zap.Error(err))
	}
	defer func() {
		if err := clickhouseClient.Close(); err != nil {
			log.Error("Failed to close ClickHouse client", zap.Error(err))
		}
	}()

	repo := clickhouse.NewRepository(clickhouseClient, log)

	if err := repo.InitSchema(ctx, cfg.KafkaBootstrapServers); err != nil {
		log.Fatal("Failed to initialize schema", zap.Error(err))
	}

	log.Info("Database schema initialized")
}
