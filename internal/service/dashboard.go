package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/repository"
)

// maxConcurrentMetricQueries caps the dashboard fan-out against the
// store's connection pool.
const maxConcurrentMetricQueries = 8

// DashboardService assembles the full metric set for the dashboard
type DashboardService struct {
	reader repository.MetricsReader
	log    *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(reader repository.MetricsReader, log *zap.Logger) *DashboardService {
	return &DashboardService{
		reader: reader,
		log:    log,
	}
}

// GetAllMetrics fetches every enumerated metric, one store query each.
// The reads are independent, so they run concurrently under a fixed
// limit; the result is a map keyed by metric type, so completion order
// does not matter. A failure on any single metric fails the whole call.
func (s *DashboardService) GetAllMetrics(ctx context.Context) (map[domain.MetricType]domain.MetricData, error) {
	metricTypes := domain.AllMetricTypes()
	results := make(map[domain.MetricType]domain.MetricData, len(metricTypes))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMetricQueries)

	for _, metricType := range metricTypes {
		g.Go(func() error {
			data, err := s.reader.GetMetricData(ctx, metricType)
			if err != nil {
				return fmt.Errorf("failed to get metric %s: %w", metricType, err)
			}

			mu.Lock()
			results[metricType] = data
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Info("Dashboard metrics assembled", zap.Int("metric_count", len(results)))

	return results, nil
}
