package service

import (
	"context"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// EventServicer defines the interface for event ingestion operations
type EventServicer interface {
	ProcessEvent(ctx context.Context, event domain.Event) error
}

// DashboardServicer defines the interface for dashboard metric operations
type DashboardServicer interface {
	GetAllMetrics(ctx context.Context) (map[domain.MetricType]domain.MetricData, error)
}
