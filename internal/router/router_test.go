package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

var testTime = time.Date(2025, 1, 1, 10, 30, 45, 0, time.UTC)

func baseEvent() domain.BaseEvent {
	return domain.BaseEvent{UserID: "user123", Timestamp: testTime}
}

func TestRoute_AllVariants(t *testing.T) {
	page := "/checkout"

	tests := []struct {
		name          string
		event         domain.Event
		wantTopic     domain.Topic
		wantEventType string
		wantFields    map[string]any
	}{
		{
			name:          "user registered",
			event:         domain.UserRegisteredEvent{BaseEvent: baseEvent()},
			wantTopic:     domain.TopicUserEvents,
			wantEventType: "user_registered",
		},
		{
			name:          "user login",
			event:         domain.UserLoginEvent{BaseEvent: baseEvent()},
			wantTopic:     domain.TopicUserEvents,
			wantEventType: "user_login",
		},
		{
			name: "transaction",
			event: domain.TransactionEvent{
				BaseEvent:     baseEvent(),
				TransactionID: "txn_1",
				Amount:        19.99,
				Currency:      "USD",
			},
			wantTopic:     domain.TopicTransactionEvents,
			wantEventType: "transaction",
			wantFields: map[string]any{
				"transaction_id": "txn_1",
				"amount":         19.99,
				"currency":       "USD",
			},
		},
		{
			name: "element click",
			event: domain.ElementClickEvent{
				BaseEvent:   baseEvent(),
				ElementName: "buy_button",
				Page:        &page,
			},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "element_click",
			wantFields: map[string]any{
				"element_name": "buy_button",
				"page":         &page,
			},
		},
		{
			name:          "search",
			event:         domain.SearchEvent{BaseEvent: baseEvent(), Query: "shoes"},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "search",
			wantFields:    map[string]any{"query": "shoes"},
		},
		{
			name:          "page view",
			event:         domain.PageViewEvent{BaseEvent: baseEvent(), Page: "/products/42"},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "page_view",
			wantFields:    map[string]any{"page": "/products/42"},
		},
		{
			name:          "form submit",
			event:         domain.FormSubmitEvent{BaseEvent: baseEvent(), FormName: "signup"},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "form_submit",
			wantFields:    map[string]any{"form_name": "signup"},
		},
		{
			name:          "item added to cart",
			event:         domain.ItemAddedToCartEvent{BaseEvent: baseEvent(), ItemID: "item_42"},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "item_added_to_cart",
			wantFields:    map[string]any{"item_id": "item_42"},
		},
		{
			name:          "item removed from cart",
			event:         domain.ItemRemovedFromCartEvent{BaseEvent: baseEvent(), ItemID: "item_42"},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "item_removed_from_cart",
			wantFields:    map[string]any{"item_id": "item_42"},
		},
		{
			name: "filter applied",
			event: domain.FilterAppliedEvent{
				BaseEvent:   baseEvent(),
				FilterName:  "color",
				FilterValue: "red",
				Page:        "/catalog",
			},
			wantTopic:     domain.TopicInteractionEvents,
			wantEventType: "filter_applied",
			wantFields: map[string]any{
				"filter_name":  "color",
				"filter_value": "red",
				"page":         "/catalog",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, payload, err := Route(tt.event)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantTopic, topic)
			assert.Equal(t, tt.wantEventType, payload["event_type"])
			assert.Equal(t, "user123", payload["user_id"])
			assert.Equal(t, "2025-01-01 10:30:45", payload["timestamp"])

			for field, want := range tt.wantFields {
				assert.Equal(t, want, payload[field], "field %s", field)
			}

			// base + event_type + variant fields, nothing else
			assert.Len(t, payload, 3+len(tt.wantFields))
		})
	}
}

func TestRoute_TransactionAmountIsNumeric(t *testing.T) {
	event := domain.TransactionEvent{
		BaseEvent:     baseEvent(),
		TransactionID: "txn_1",
		Amount:        19.99,
		Currency:      "USD",
	}

	topic, payload, err := Route(event)

	assert.NoError(t, err)
	assert.Equal(t, domain.TopicTransactionEvents, topic)
	assert.IsType(t, float64(0), payload["amount"])
	assert.Equal(t, 19.99, payload["amount"])
}

func TestRoute_TimestampTruncatedToSeconds(t *testing.T) {
	event := domain.PageViewEvent{
		BaseEvent: domain.BaseEvent{
			UserID:    "user123",
			Timestamp: time.Date(2025, 1, 1, 10, 30, 45, 123_000_000, time.UTC),
		},
		Page: "/home",
	}

	_, payload, err := Route(event)

	assert.NoError(t, err)
	assert.Equal(t, "2025-01-01 10:30:45", payload["timestamp"])
}

func TestRoute_ElementClickWithoutPage(t *testing.T) {
	event := domain.ElementClickEvent{
		BaseEvent:   baseEvent(),
		ElementName: "buy_button",
	}

	_, payload, err := Route(event)

	assert.NoError(t, err)
	pageValue, ok := payload["page"]
	assert.True(t, ok, "page key must be present even when unset")
	assert.Equal(t, (*string)(nil), pageValue)
}

func TestRoute_NilEvent(t *testing.T) {
	topic, payload, err := Route(nil)

	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.Empty(t, topic)
	assert.Nil(t, payload)
}
