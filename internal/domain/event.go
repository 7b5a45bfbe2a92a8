package domain

import "time"

// Topic identifies a broker stream that routed events are published to.
type Topic string

const (
	TopicUserEvents        Topic = "user_events"
	TopicTransactionEvents Topic = "transaction_events"
	TopicInteractionEvents Topic = "interaction_events"
)

// AllTopics returns every stream the service publishes to.
func AllTopics() []Topic {
	return []Topic{TopicUserEvents, TopicTransactionEvents, TopicInteractionEvents}
}

// EventType is the discriminator injected into every published payload.
type EventType string

const (
	EventTypeUserRegistered      EventType = "user_registered"
	EventTypeUserLogin           EventType = "user_login"
	EventTypeTransaction         EventType = "transaction"
	EventTypeElementClick        EventType = "element_click"
	EventTypeSearch              EventType = "search"
	EventTypePageView            EventType = "page_view"
	EventTypeFormSubmit          EventType = "form_submit"
	EventTypeItemAddedToCart     EventType = "item_added_to_cart"
	EventTypeItemRemovedFromCart EventType = "item_removed_from_cart"
	EventTypeFilterApplied       EventType = "filter_applied"
)

// Event is one case of the closed event taxonomy. The unexported base
// method keeps the set closed to this package, so the router's type
// switch is exhaustive over every variant that can exist.
type Event interface {
	Type() EventType
	base() BaseEvent
}

// BaseEvent carries the fields shared by every event variant.
type BaseEvent struct {
	UserID    string
	Timestamp time.Time
}

func (b BaseEvent) base() BaseEvent { return b }

// Base returns the shared user/timestamp fields of an event.
func Base(e Event) BaseEvent { return e.base() }

type UserRegisteredEvent struct {
	BaseEvent
}

func (UserRegisteredEvent) Type() EventType { return EventTypeUserRegistered }

type UserLoginEvent struct {
	BaseEvent
}

func (UserLoginEvent) Type() EventType { return EventTypeUserLogin }

type TransactionEvent struct {
	BaseEvent
	TransactionID string
	Amount        float64
	Currency      string
}

func (TransactionEvent) Type() EventType { return EventTypeTransaction }

type ElementClickEvent struct {
	BaseEvent
	ElementName string
	Page        *string // optional
}

func (ElementClickEvent) Type() EventType { return EventTypeElementClick }

type SearchEvent struct {
	BaseEvent
	Query string
}

func (SearchEvent) Type() EventType { return EventTypeSearch }

type PageViewEvent struct {
	BaseEvent
	Page string
}

func (PageViewEvent) Type() EventType { return EventTypePageView }

type FormSubmitEvent struct {
	BaseEvent
	FormName string
}

func (FormSubmitEvent) Type() EventType { return EventTypeFormSubmit }

type ItemAddedToCartEvent struct {
	BaseEvent
	ItemID string
}

func (ItemAddedToCartEvent) Type() EventType { return EventTypeItemAddedToCart }

type ItemRemovedFromCartEvent struct {
	BaseEvent
	ItemID string
}

func (ItemRemovedFromCartEvent) Type() EventType { return EventTypeItemRemovedFromCart }

type FilterAppliedEvent struct {
	BaseEvent
	FilterName  string
	FilterValue string
	Page        string
}

func (FilterAppliedEvent) Type() EventType { return EventTypeFilterApplied }
