package dto

import "github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"user_id is required"`
}

// SuccessResponse represents a successful event ingestion response
type SuccessResponse struct {
	Status string `json:"status" example:"success"`
}

// DashboardResponse represents the dashboard metrics response, keyed by
// metric type
type DashboardResponse struct {
	Metrics map[domain.MetricType]domain.MetricData `json:"metrics"`
}
