package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// Publisher publishes event payloads to Kafka topics
type Publisher struct {
	producer sarama.SyncProducer
	log      *zap.Logger
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string, log *zap.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("Kafka publisher created", zap.Strings("brokers", brokers))

	return &Publisher{
		producer: producer,
		log:      log,
	}, nil
}

// Publish serializes a payload to JSON and sends it to the topic. The
// message is keyed by user_id so one user's events stay on one partition.
func (p *Publisher) Publish(ctx context.Context, topic domain.Topic, payload map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("Failed to marshal event payload",
			zap.String("topic", string(topic)),
			zap.Error(err))
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: string(topic),
		Value: sarama.ByteEncoder(body),
	}
	if userID, ok := payload["user_id"].(string); ok && userID != "" {
		msg.Key = sarama.StringEncoder(userID)
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error("Failed to send message to Kafka",
			zap.String("topic", string(topic)),
			zap.Error(err))
		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	p.log.Info("Event published",
		zap.String("topic", string(topic)),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))

	return nil
}

// Close closes the underlying producer
func (p *Publisher) Close() error {
	return p.producer.Close()
}
