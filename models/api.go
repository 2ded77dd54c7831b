package models

import "time"

// PlaceOrderRequest is the payload for the order placement endpoint.
type PlaceOrderRequest struct {
	SessionID   string       `json:"session_id"`
	TableNumber int          `json:"table_number"`
	Items       []OrderEntry `json:"items"`
}

// CancelOrderRequest is the payload for the order cancellation endpoint.
type CancelOrderRequest struct {
	SessionID string `json:"session_id"`
}

// PlacedOrder is the persisted order document.
type PlacedOrder struct {
	OrderID     string       `json:"order_id" bson:"order_id"`
	SessionID   string       `json:"session_id" bson:"session_id"`
	TableNumber int          `json:"table_number" bson:"table_number"`
	Items       []OrderEntry `json:"items" bson:"items"`
	TotalAmount int          `json:"total_amount" bson:"total_amount"`
	Status      string       `json:"status" bson:"status"`
	OrderDate   time.Time    `json:"order_date" bson:"order_date"`
}

// PlacedOrder status values.
const (
	PlacedOrderStatusPlaced = "placed"
)
