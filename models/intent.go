package models

// IntentKind tags the command a transcript resolved to.
type IntentKind string

const (
	IntentAddItems     IntentKind = "add_items"
	IntentRemoveItem   IntentKind = "remove_item"
	IntentFinalize     IntentKind = "finalize"
	IntentCancelOrder  IntentKind = "cancel_order"
	IntentGreet        IntentKind = "greet"
	IntentUnrecognized IntentKind = "unrecognized"
)

// OrderEntry is one item/quantity pair extracted from a transcript.
type OrderEntry struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
}

// Intent is the structured command derived from one transcript.
// Entries is set for AddItems, Remove for RemoveItem, Message carries the
// diagnostic for Unrecognized. Intents are transient and never persisted.
type Intent struct {
	Kind    IntentKind   `json:"kind"`
	Entries []OrderEntry `json:"entries,omitempty"`
	Remove  *OrderEntry  `json:"remove,omitempty"`
	Message string       `json:"message,omitempty"`
}
