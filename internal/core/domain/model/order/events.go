package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Event names recorded by the Order aggregate.
const (
	OrderCreatedEvent   = "OrderCreated"
	OrderPaidEvent      = "OrderPaid"
	OrderShippedEvent   = "OrderShipped"
	OrderDeliveredEvent = "OrderDelivered"
	OrderCancelledEvent = "OrderCancelled"
)

// EventPayload is the snapshot of an order captured when an event is emitted.
// It holds copies only, so later changes to the order never alter it.
// OrderID is nil for events emitted before the order was first saved.
type EventPayload struct {
	OrderID       *OrderID        `json:"order_id"`
	CustomerID    kernel.UserID   `json:"customer_id"`
	OrderDate     time.Time       `json:"order_date"`
	Status        Status          `json:"status"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	LineItemCount int             `json:"line_item_count"`
}

type orderEvent struct {
	kernel.BaseEvent
	payload EventPayload
}

// Payload returns the snapshot as an untyped value for generic consumers.
func (e orderEvent) Payload() any {
	return e.payload
}

// OrderPayload returns the typed snapshot.
func (e orderEvent) OrderPayload() EventPayload {
	return e.payload
}

// OrderCreated is recorded by NewOrder.
type OrderCreated struct{ orderEvent }

// OrderPaid is recorded by Order.Pay.
type OrderPaid struct{ orderEvent }

// OrderShipped is recorded by Order.Ship.
type OrderShipped struct{ orderEvent }

// OrderDelivered is recorded by Order.Deliver.
type OrderDelivered struct{ orderEvent }

// OrderCancelled is recorded by Order.Cancel.
type OrderCancelled struct{ orderEvent }

func newOrderEvent(name string, ctx kernel.DomainContext, payload EventPayload) kernel.DomainEvent {
	base := orderEvent{BaseEvent: kernel.NewBaseEvent(name, ctx), payload: payload}
	switch name {
	case OrderCreatedEvent:
		return OrderCreated{base}
	case OrderPaidEvent:
		return OrderPaid{base}
	case OrderShippedEvent:
		return OrderShipped{base}
	case OrderDeliveredEvent:
		return OrderDelivered{base}
	case OrderCancelledEvent:
		return OrderCancelled{base}
	default:
		return base
	}
}
