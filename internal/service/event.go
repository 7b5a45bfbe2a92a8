package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/queue"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/router"
)

// EventService routes inbound events and publishes them to their stream.
// No buffering, batching, or retry: one send failure is one request
// failure.
type EventService struct {
	publisher queue.EventPublisher
	log       *zap.Logger
}

// NewEventService creates a new event service
func NewEventService(publisher queue.EventPublisher, log *zap.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		log:       log,
	}
}

// ProcessEvent routes a single event and publishes its payload
func (s *EventService) ProcessEvent(ctx context.Context, event domain.Event) error {
	topic, payload, err := router.Route(event)
	if err != nil {
		return fmt.Errorf("failed to route event: %w", err)
	}

	if err := s.publisher.Publish(ctx, topic, payload); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	s.log.Info("Event processed",
		zap.String("event_type", string(event.Type())),
		zap.String("topic", string(topic)),
		zap.String("user_id", domain.Base(event).UserID))

	return nil
}
