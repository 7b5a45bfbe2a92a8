package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/dto"
)

// MockEventService is a mock implementation of service.EventServicer
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ProcessEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockDashboardService is a mock implementation of service.DashboardServicer
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetAllMetrics(ctx context.Context) (map[domain.MetricType]domain.MetricData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.MetricType]domain.MetricData), args.Error(1)
}

func newTestHandler(eventService *MockEventService, dashboardService *MockDashboardService) *Handler {
	return NewHandler(eventService, dashboardService, zap.NewNop())
}

func TestHandler_HealthCheck(t *testing.T) {
	handler := newTestHandler(new(MockEventService), new(MockDashboardService))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_Transaction_Success(t *testing.T) {
	mockEvents := new(MockEventService)
	handler := newTestHandler(mockEvents, new(MockDashboardService))

	mockEvents.On("ProcessEvent", mock.Anything, mock.MatchedBy(func(event domain.Event) bool {
		txn, ok := event.(domain.TransactionEvent)
		return ok && txn.UserID == "user123" && txn.Amount == 19.99 && txn.Currency == "USD"
	})).Return(nil)

	body := []byte(`{
		"user_id": "user123",
		"timestamp": "2025-01-01T10:30:45Z",
		"transaction_id": "txn_1",
		"amount": 19.99,
		"currency": "USD"
	}`)
	req := httptest.NewRequest(http.MethodPost, "/events/transaction", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	mockEvents.AssertExpectations(t)
}

func TestHandler_PageView_Success(t *testing.T) {
	mockEvents := new(MockEventService)
	handler := newTestHandler(mockEvents, new(MockDashboardService))

	mockEvents.On("ProcessEvent", mock.Anything, mock.MatchedBy(func(event domain.Event) bool {
		pv, ok := event.(domain.PageViewEvent)
		return ok && pv.Page == "/products/42"
	})).Return(nil)

	body := []byte(`{"user_id": "user123", "timestamp": "2025-01-01T10:30:45Z", "page": "/products/42"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/page-view", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockEvents.AssertExpectations(t)
}

func TestHandler_Event_InvalidJSON(t *testing.T) {
	mockEvents := new(MockEventService)
	handler := newTestHandler(mockEvents, new(MockDashboardService))

	invalidJSON := []byte(`{"user_id": "user123", invalid}`)
	req := httptest.NewRequest(http.MethodPost, "/events/search", bytes.NewReader(invalidJSON))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	mockEvents.AssertNotCalled(t, "ProcessEvent")
}

func TestHandler_Event_MissingRequiredFields(t *testing.T) {
	mockEvents := new(MockEventService)
	handler := newTestHandler(mockEvents, new(MockDashboardService))

	body := []byte(`{"user_id": "user123", "timestamp": "2025-01-01T10:30:45Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/search", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockEvents.AssertNotCalled(t, "ProcessEvent")
}

func TestHandler_Event_PublishFailure(t *testing.T) {
	mockEvents := new(MockEventService)
	handler := newTestHandler(mockEvents, new(MockDashboardService))

	mockEvents.On("ProcessEvent", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	body := []byte(`{"user_id": "user123", "timestamp": "2025-01-01T10:30:45Z"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/user-login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
	mockEvents.AssertExpectations(t)
}

func TestHandler_Dashboard_Success(t *testing.T) {
	mockDashboard := new(MockDashboardService)
	handler := newTestHandler(new(MockEventService), mockDashboard)

	metricData := map[domain.MetricType]domain.MetricData{
		domain.MetricTypeDAU:          domain.DAUData{Value: 42},
		domain.MetricTypeDailyRevenue: domain.DailyRevenueData{Value: 199.90},
		domain.MetricTypeRevenueTrend30Days: domain.RevenueTrend30DaysData{
			Points: []domain.RevenuePoint{{Date: "2025-01-01", Revenue: 10.0}},
		},
	}

	mockDashboard.On("GetAllMetrics", mock.Anything).Return(metricData, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Metrics map[string]json.RawMessage `json:"metrics"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.Metrics, 3)
	assert.JSONEq(t, `{"value": 42}`, string(response.Metrics["daily_active_users"]))
	assert.JSONEq(t, `{"points": [{"date": "2025-01-01", "revenue": 10.0}]}`,
		string(response.Metrics["revenue_trend_30_days"]))
	mockDashboard.AssertExpectations(t)
}

func TestHandler_Dashboard_Failure(t *testing.T) {
	mockDashboard := new(MockDashboardService)
	handler := newTestHandler(new(MockEventService), mockDashboard)

	mockDashboard.On("GetAllMetrics", mock.Anything).Return(nil, errors.New("store unavailable"))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
	mockDashboard.AssertExpectations(t)
}
