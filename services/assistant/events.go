package assistant

import "brewvoice/models"

// EventKind tags the output events the reducer emits.
type EventKind string

const (
	// EventChat is an app reply: displayed in the chat and vocalized.
	EventChat EventKind = "chat"
	// EventShowPayment carries the payment artifact for a placed order.
	EventShowPayment EventKind = "show_payment"
	// EventClearPayment removes any displayed total and payment artifact.
	EventClearPayment EventKind = "clear_payment"
)

// Event is one outbound effect of applying an intent.
type Event struct {
	Kind    EventKind               `json:"kind"`
	Message string                  `json:"message,omitempty"`
	Payment *models.PaymentArtifact `json:"payment,omitempty"`
}

func chatEvent(message string) Event {
	return Event{Kind: EventChat, Message: message}
}
