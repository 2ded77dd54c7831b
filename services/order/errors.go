package order

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields covers a place request without a session id or items.
	ErrMissingFields = errors.New("session id and items are required")
	// ErrOrderNotFound means no placed order exists for the session id.
	ErrOrderNotFound = errors.New("no order found for this session id")
	// ErrNotCancelable means the order is past the point of cancellation.
	ErrNotCancelable = errors.New("order cannot be canceled because it is not in 'placed' status")
)

// ItemNotFoundError reports an ordered item missing from the stored menu.
type ItemNotFoundError struct {
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item %q not found", e.Name)
}
