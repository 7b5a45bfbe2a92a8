package queue

import (
	"context"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// EventPublisher defines the interface for publishing routed event
// payloads onto a named stream.
type EventPublisher interface {
	Publish(ctx context.Context, topic domain.Topic, payload map[string]any) error
	Close() error
}
