package router

import (
	"errors"
	"fmt"

	"github.com/ArtemGrablevski/ecommerce-analytics-platform/internal/domain"
)

// ErrInvalidEvent indicates an event that matches no known variant. With
// the closed taxonomy this is unreachable and means the route table is
// missing a case.
var ErrInvalidEvent = errors.New("invalid event")

// timestampLayout truncates event timestamps to second precision. The
// storage columns are DateTime64(3); the sub-second component is dropped
// on purpose.
const timestampLayout = "2006-01-02 15:04:05"

// Route selects the target stream for an event and builds the flat
// payload published to it. Payload field names match the raw table
// columns exactly; event_type is assigned last so a variant field can
// never shadow the discriminator.
func Route(event domain.Event) (domain.Topic, map[string]any, error) {
	if event == nil {
		return "", nil, fmt.Errorf("%w: nil event", ErrInvalidEvent)
	}

	base := domain.Base(event)
	payload := map[string]any{
		"user_id":   base.UserID,
		"timestamp": base.Timestamp.Format(timestampLayout),
	}

	var topic domain.Topic

	switch e := event.(type) {
	case domain.UserRegisteredEvent:
		topic = domain.TopicUserEvents

	case domain.UserLoginEvent:
		topic = domain.TopicUserEvents

	case domain.TransactionEvent:
		payload["transaction_id"] = e.TransactionID
		payload["amount"] = e.Amount
		payload["currency"] = e.Currency
		topic = domain.TopicTransactionEvents

	case domain.ElementClickEvent:
		payload["element_name"] = e.ElementName
		payload["page"] = e.Page
		topic = domain.TopicInteractionEvents

	case domain.SearchEvent:
		payload["query"] = e.Query
		topic = domain.TopicInteractionEvents

	case domain.PageViewEvent:
		payload["page"] = e.Page
		topic = domain.TopicInteractionEvents

	case domain.FormSubmitEvent:
		payload["form_name"] = e.FormName
		topic = domain.TopicInteractionEvents

	case domain.ItemAddedToCartEvent:
		payload["item_id"] = e.ItemID
		topic = domain.TopicInteractionEvents

	case domain.ItemRemovedFromCartEvent:
		payload["item_id"] = e.ItemID
		topic = domain.TopicInteractionEvents

	case domain.FilterAppliedEvent:
		payload["filter_name"] = e.FilterName
		payload["filter_value"] = e.FilterValue
		payload["page"] = e.Page
		topic = domain.TopicInteractionEvents

	default:
		return "", nil, fmt.Errorf("%w: unknown variant %T", ErrInvalidEvent, event)
	}

	payload["event_type"] = string(event.Type())

	return topic, payload, nil
}
