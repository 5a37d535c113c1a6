package models

import "time"

const (
	PaymentEventsTopic   = "payment-events"
	PaymentConsumerGroup = "payment-group"
)

type EventType string

const (
	EventCreated EventType = "CREATED"
	EventUpdated EventType = "UPDATED"
)

// PaymentEvent records a lifecycle change of a single payment. The payment
// field is the post-commit snapshot; events are published keyed by the
// payment id so consumers see them in commit order per payment.
type PaymentEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Payment   Payment   `json:"payment"`
}

func NewPaymentEvent(eventType EventType, payment Payment) PaymentEvent {
	return PaymentEvent{
		Timestamp: time.Now().UTC(),
		Type:      eventType,
		Payment:   payment,
	}
}
