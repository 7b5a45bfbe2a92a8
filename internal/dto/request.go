package dto

import "time"

// UserRegisteredRequest represents a user registration event body
type UserRegisteredRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
}

// UserLoginRequest represents a user login event body
type UserLoginRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
}

// TransactionRequest represents a transaction event body
type TransactionRequest struct {
	UserID        string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp     time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	TransactionID string    `json:"transaction_id" binding:"required" example:"txn_987"`
	Amount        float64   `json:"amount" binding:"required" example:"19.99"`
	Currency      string    `json:"currency" binding:"required" example:"USD"`
}

// ElementClickRequest represents an element click event body
type ElementClickRequest struct {
	UserID      string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp   time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	ElementName string    `json:"element_name" binding:"required" example:"buy_button"`
	Page        *string   `json:"page" example:"/checkout"`
}

// SearchRequest represents a search event body
type SearchRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	Query     string    `json:"query" binding:"required" example:"running shoes"`
}

// PageViewRequest represents a page view event body
type PageViewRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	Page      string    `json:"page" binding:"required" example:"/products/42"`
}

// FormSubmitRequest represents a form submit event body
type FormSubmitRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	FormName  string    `json:"form_name" binding:"required" example:"newsletter_signup"`
}

// ItemAddedToCartRequest represents an item added to cart event body
type ItemAddedToCartRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	ItemID    string    `json:"item_id" binding:"required" example:"item_42"`
}

// ItemRemovedFromCartRequest represents an item removed from cart event body
type ItemRemovedFromCartRequest struct {
	UserID    string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	ItemID    string    `json:"item_id" binding:"required" example:"item_42"`
}

// FilterAppliedRequest represents a filter applied event body
type FilterAppliedRequest struct {
	UserID      string    `json:"user_id" binding:"required" example:"user_123"`
	Timestamp   time.Time `json:"timestamp" binding:"required" example:"2025-01-01T10:30:45Z"`
	FilterName  string    `json:"filter_name" binding:"required" example:"color"`
	FilterValue string    `json:"filter_value" binding:"required" example:"red"`
	Page        string    `json:"page" binding:"required" example:"/catalog"`
}
