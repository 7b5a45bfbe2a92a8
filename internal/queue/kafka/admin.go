package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// AdminConfig configures startup topic provisioning
type AdminConfig struct {
	Brokers           []string
	TopicPartitions   int32
	ReplicationFactor int16
}

const (
	maxTopicRetries = 30
	topicRetryDelay = 2 * time.Second
)

// EnsureTopics creates the three event streams if they do not exist yet.
// The broker may still be coming up when the service starts, so creation
// is retried with a fixed backoff. Runs once at startup, never on the hot
// path.
func EnsureTopics(ctx context.Context, cfg AdminConfig, log *zap.Logger) error {
	var lastErr error

	for attempt := 1; attempt <= maxTopicRetries; attempt++ {
		lastErr = createTopics(cfg, log)
		if lastErr == nil {
			return nil
		}

		log.Info("Kafka not ready, retrying topic creation",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", maxTopicRetries),
			zap.Error(lastErr))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(topicRetryDelay):
		}
	}

	return fmt.Errorf("failed to create Kafka topics after %d attempts: %w", maxTopicRetries, lastErr)
}

func createTopics(cfg AdminConfig, log *zap.Logger) error {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0

	admin, err := sarama.NewClusterAdmin(cfg.Brokers, config)
	if err != nil {
		return fmt.Errorf("failed to create cluster admin: %w", err)
	}
	defer func() {
		if err := admin.Close(); err != nil {
			log.Error("Failed to close cluster admin", zap.Error(err))
		}
	}()

	detail := &sarama.TopicDetail{
		NumPartitions:     cfg.TopicPartitions,
		ReplicationFactor: cfg.ReplicationFactor,
	}

	for _, topic := range domain.AllTopics() {
		err := admin.CreateTopic(string(topic), detail, false)
		if err != nil {
			var topicErr *sarama.TopicError
			if errors.As(err, &topicErr) && topicErr.Err == sarama.ErrTopicAlreadyExists {
				log.Info("Kafka topic already exists", zap.String("topic", string(topic)))
				continue
			}
			return fmt.Errorf("failed to create topic %s: %w", topic, err)
		}
		log.Info("Created Kafka topic",
			zap.String("topic", string(topic)),
			zap.Int32("partitions", cfg.TopicPartitions))
	}

	return nil
}
