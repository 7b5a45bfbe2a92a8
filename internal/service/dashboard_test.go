package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// MockMetricsReader is a mock implementation of repository.MetricsReader
type MockMetricsReader struct {
	mock.Mock
}

func (m *MockMetricsReader) GetMetricData(ctx context.Context, metricType domain.MetricType) (domain.MetricData, error) {
	args := m.Called(ctx, metricType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MetricData), args.Error(1)
}

func (m *MockMetricsReader) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMetricsReader) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestDashboardService_GetAllMetrics_Success(t *testing.T) {
	mockReader := new(MockMetricsReader)
	log := zap.NewNop()

	service := NewDashboardService(mockReader, log)

	for _, metricType := range domain.AllMetricTypes() {
		mockReader.On("GetMetricData", mock.Anything, metricType).
			Return(domain.DAUData{Value: 1}, nil).Once()
	}

	results, err := service.GetAllMetrics(context.Background())

	assert.NoError(t, err)
	assert.Len(t, results, len(domain.AllMetricTypes()))
	for _, metricType := range domain.AllMetricTypes() {
		assert.Contains(t, results, metricType)
	}
	mockReader.AssertExpectations(t)
	mockReader.AssertNumberOfCalls(t, "GetMetricData", len(domain.AllMetricTypes()))
}

func TestDashboardService_GetAllMetrics_SingleFailureAbortsAll(t *testing.T) {
	mockReader := new(MockMetricsReader)
	log := zap.NewNop()

	service := NewDashboardService(mockReader, log)

	queryErr := errors.New("store unavailable")
	for _, metricType := range domain.AllMetricTypes() {
		if metricType == domain.MetricTypeDailyRevenue {
			mockReader.On("GetMetricData", mock.Anything, metricType).
				Return(nil, queryErr).Once()
			continue
		}
		mockReader.On("GetMetricData", mock.Anything, metricType).
			Return(domain.DAUData{Value: 1}, nil).Maybe()
	}

	results, err := service.GetAllMetrics(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), string(domain.MetricTypeDailyRevenue))
	assert.Nil(t, results)
}
