package assistant

import (
	"context"
	"math/rand"

	"brewvoice/models"

	"go.uber.org/zap"
)

// ArtifactRenderer produces the scannable payment code for an order total.
type ArtifactRenderer interface {
	Render(total int) (*models.PaymentArtifact, error)
}

// Reducer applies intents to the current order and emits the resulting
// output events. Remote placement and cancellation go through the
// OrderPlacer collaborator; a failed remote call leaves the order exactly
// as it was and is never retried.
type Reducer struct {
	Catalog     *models.Catalog
	Placer      OrderPlacer
	Artifact    ArtifactRenderer
	TableNumber int
	Logger      *zap.Logger
}

// Apply mutates order in response to intent and returns the events to
// deliver. Validation failures short-circuit before any remote call.
func (r *Reducer) Apply(ctx context.Context, session models.Session, order *models.Order, intent models.Intent) []Event {
	switch intent.Kind {
	case models.IntentGreet:
		return []Event{chatEvent(greetingReply)}
	case models.IntentAddItems:
		return r.addItems(order, intent.Entries)
	case models.IntentRemoveItem:
		return r.removeItem(order, intent.Remove)
	case models.IntentFinalize:
		return r.finalize(ctx, session, order)
	case models.IntentCancelOrder:
		return r.cancelOrder(ctx, session, order)
	default:
		if intent.Message != "" {
			return []Event{chatEvent(intent.Message)}
		}
		return []Event{chatEvent(repeatFallbackMsg)}
	}
}

func (r *Reducer) addItems(order *models.Order, entries []models.OrderEntry) []Event {
	var events []Event
	for _, entry := range entries {
		if entry.Quantity <= 0 {
			continue
		}
		price, ok := r.Catalog.Price(entry.ItemName)
		if !ok {
			events = append(events, chatEvent(notAvailableReply(entry.ItemName)))
			continue
		}
		order.Add(entry.ItemName, entry.Quantity, price)
		events = append(events, chatEvent(addedReply(entry.Quantity, entry.ItemName)))
	}
	events = append(events, chatEvent(additionalPrompts[rand.Intn(len(additionalPrompts))]))
	return events
}

func (r *Reducer) removeItem(order *models.Order, entry *models.OrderEntry) []Event {
	line := order.Line(entry.ItemName)
	if line == nil {
		return []Event{chatEvent(noneFoundReply(entry.ItemName))}
	}
	if line.Quantity < entry.Quantity {
		return []Event{chatEvent(onlyHaveReply(line.Quantity, entry.ItemName))}
	}
	order.Remove(entry.ItemName, entry.Quantity)
	return []Event{chatEvent(removedReply(entry.Quantity, entry.ItemName))}
}

func (r *Reducer) finalize(ctx context.Context, session models.Session, order *models.Order) []Event {
	total := order.Total()
	if total == 0 {
		return []Event{chatEvent(emptyOrderReply)}
	}

	req := models.PlaceOrderRequest{
		SessionID:   session.SessionID,
		TableNumber: r.TableNumber,
	}
	for _, line := range order.Lines {
		req.Items = append(req.Items, models.OrderEntry{ItemName: line.ItemName, Quantity: line.Quantity})
	}

	if err := r.Placer.PlaceOrder(ctx, req); err != nil {
		r.Logger.Warn("order placement failed", zap.String("sessionId", session.SessionID), zap.Error(err))
		return []Event{chatEvent(orderFailedReply)}
	}

	order.Status = models.OrderFinalized
	events := []Event{chatEvent(orderPlacedReply), chatEvent(onTheWayReply)}

	artifact, err := r.Artifact.Render(total)
	if err != nil {
		// Artifact failures are logged, never surfaced as order failures.
		r.Logger.Error("payment artifact rendering failed", zap.Int("total", total), zap.Error(err))
		return events
	}
	events = append(events, Event{Kind: EventShowPayment, Payment: artifact})
	return events
}

func (r *Reducer) cancelOrder(ctx context.Context, session models.Session, order *models.Order) []Event {
	// An order that was never placed is cleared locally; there is nothing
	// to cancel remotely.
	if order.Status != models.OrderFinalized {
		order.Clear()
		return []Event{chatEvent(orderClearedReply), {Kind: EventClearPayment}}
	}

	if session.SessionID == "" {
		return []Event{chatEvent(missingSessionMsg)}
	}
	if err := r.Placer.CancelOrder(ctx, session.SessionID); err != nil {
		r.Logger.Warn("order cancellation failed", zap.String("sessionId", session.SessionID), zap.Error(err))
		return []Event{chatEvent(cancelFailedReply)}
	}

	order.Clear()
	order.Status = models.OrderCanceled
	return []Event{chatEvent(orderClearedReply), {Kind: EventClearPayment}}
}
