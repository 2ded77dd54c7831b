package models

import "strings"

// OrderStatus tracks the order lifecycle.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderFinalized OrderStatus = "finalized"
	OrderCanceled  OrderStatus = "canceled"
)

// OrderLine is one item row in the current order. Quantity stays above
// zero; a line that would reach zero is removed from the order instead.
type OrderLine struct {
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unitPrice"`
}

// Order is the editable order for one session. Lines keep insertion order
// for display and never repeat an item name.
type Order struct {
	Lines  []OrderLine `json:"lines"`
	Status OrderStatus `json:"status"`
}

// NewOrder returns an empty open order.
func NewOrder() *Order {
	return &Order{Status: OrderOpen}
}

// Line returns a pointer into Lines for the named item, nil when absent.
// Lookup is case-insensitive.
func (o *Order) Line(name string) *OrderLine {
	name = strings.ToLower(name)
	for i := range o.Lines {
		if strings.ToLower(o.Lines[i].ItemName) == name {
			return &o.Lines[i]
		}
	}
	return nil
}

// Add increments the named line by qty, creating it at the end when
// absent. A non-positive qty is ignored; a zero line never enters the
// order.
func (o *Order) Add(name string, qty, unitPrice int) {
	if qty <= 0 {
		return
	}
	if line := o.Line(name); line != nil {
		line.Quantity += qty
		return
	}
	o.Lines = append(o.Lines, OrderLine{ItemName: name, Quantity: qty, UnitPrice: unitPrice})
}

// Remove decrements the named line by qty, dropping the line entirely when
// it reaches zero. It returns false when no such line exists.
func (o *Order) Remove(name string, qty int) bool {
	name = strings.ToLower(name)
	for i := range o.Lines {
		if strings.ToLower(o.Lines[i].ItemName) != name {
			continue
		}
		o.Lines[i].Quantity -= qty
		if o.Lines[i].Quantity <= 0 {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
		}
		return true
	}
	return false
}

// Total sums quantity times unit price over all lines.
func (o *Order) Total() int {
	total := 0
	for _, line := range o.Lines {
		total += line.Quantity * line.UnitPrice
	}
	return total
}

// Clear drops every line.
func (o *Order) Clear() {
	o.Lines = nil
}
