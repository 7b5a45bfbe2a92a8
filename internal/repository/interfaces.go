package repository

import (
	"context"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// MetricsReader defines the interface for reading precomputed analytics
// aggregates from the columnar store.
type MetricsReader interface {
	// GetMetricData runs the metric's aggregation query and returns its
	// typed result. Exactly one query round-trip per call; no caching.
	GetMetricData(ctx context.Context, metricType domain.MetricType) (domain.MetricData, error)

	// Ping checks if the store connection is alive
	Ping(ctx context.Context) error

	// Close closes the reader and releases resources
	Close() error
}
