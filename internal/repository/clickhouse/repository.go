package clickhouse

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/metrics"
)

// Repository implements repository.MetricsReader for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// GetMetricData runs the metric's aggregation query and parses the result
// rows into the metric's typed result
func (r *Repository) GetMetricData(ctx context.Context, metricType domain.MetricType) (domain.MetricData, error) {
	query, err := metrics.QueryFor(metricType)
	if err != nil {
		return nil, err
	}

	rows, err := r.queryRows(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query metric %s: %w", metricType, err)
	}

	return metrics.Parse(metricType, rows)
}

// queryRows materializes the full result set before parsing. Scan
// destinations are built from the driver's column scan types, so the
// query shape stays declarative in the dispatcher's table.
func (r *Repository) queryRows(ctx context.Context, query string) ([]metrics.Row, error) {
	rows, err := r.client.Conn().Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close metric rows", zap.Error(err))
		}
	}(rows)

	columnTypes := rows.ColumnTypes()

	var result []metrics.Row
	for rows.Next() {
		scanDest := make([]any, len(columnTypes))
		for i, columnType := range columnTypes {
			scanDest[i] = reflect.New(columnType.ScanType()).Interface()
		}

		if err := rows.Scan(scanDest...); err != nil {
			return nil, fmt.Errorf("failed to scan metric row: %w", err)
		}

		row := make(metrics.Row, len(scanDest))
		for i, v := range scanDest {
			row[i] = reflect.ValueOf(v).Elem().Interface()
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metric rows: %w", err)
	}

	return result, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
