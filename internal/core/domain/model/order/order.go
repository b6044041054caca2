package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the ordering domain. It owns the line items of
// a customer order, keeps the order total, drives the status state machine and
// records a domain event for every status change.
//
// Order follows these invariants:
//   - Holds at least one line item once created
//   - TotalAmount always equals the sum of line item total prices
//   - Status transitions follow the Status state machine
//   - The id is absent until the first save and never changes afterwards
//   - Can only be created through NewOrder or RestoreOrder
//
// Order is mutated in place and is not safe for concurrent use. Every operation
// validates before it changes anything, so a failed call leaves the order as it was.
type Order struct {
	// id is assigned by the repository on first save (nil before)
	id *OrderID

	customerID kernel.UserID
	orderDate  time.Time
	status     Status

	// totalAmount is derived from lineItems
	totalAmount decimal.Decimal

	auditInfo kernel.AuditInfo
	lineItems []LineItem

	// domainEvents are drained by the unit of work after each save
	domainEvents []kernel.DomainEvent

	isConstructed bool
}

// NewOrder creates a pending order for customerID and records OrderCreated.
//
// Parameters:
//   - ctx: request context; its actor stamps the audit information
//   - customerID: the ordering customer (must be valid)
//   - lineItems: ordered products (at least one, each built by a constructor)
//
// Returns:
//   - *Order: the created order, without id
//   - error: validation error if any parameter is invalid or the total is not positive
//
// Example:
//
//	p1, _ := order.NewProductID(1)
//	item, _ := order.NewLineItem(p1, "Keyboard", 2, decimal.RequireFromString("30.00"))
//	o, err := order.NewOrder(ctx, customerID, []order.LineItem{item})
//	if err != nil {
//	    // Handle validation error
//	}
//	o.Status()        // Pending
//	o.DomainEvents()  // [OrderCreated]
func NewOrder(ctx kernel.DomainContext, customerID kernel.UserID, lineItems []LineItem) (*Order, error) {
	o := &Order{
		orderDate:     kernel.Now(),
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	if !o.totalAmount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total amount",
			fmt.Errorf("%s is not greater than 0", o.totalAmount),
		)
	}

	o.auditInfo = kernel.NewAuditInfo(ctx.Actor())
	o.record(OrderCreatedEvent, ctx)

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. Persisted invariants are
// trusted: the line item list may be empty and totalAmount is taken as stored.
// No events are recorded.
func RestoreOrder(
	id OrderID,
	customerID kernel.UserID,
	orderDate time.Time,
	status Status,
	totalAmount decimal.Decimal,
	auditInfo kernel.AuditInfo,
	lineItems []LineItem,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            &id,
		customerID:    customerID,
		orderDate:     orderDate,
		status:        status,
		totalAmount:   totalAmount,
		auditInfo:     auditInfo,
		lineItems:     slices.Clone(lineItems),
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id. Orders without id are only equal to themselves.
func (o *Order) IsEqual(other *Order) bool {
	if other == nil {
		return false
	}
	if o == other {
		return true
	}
	return o.id != nil && other.id != nil && o.id.IsEqual(*other.id)
}

// ID returns the order id and whether it has been assigned.
func (o *Order) ID() (OrderID, bool) {
	if o.id == nil {
		return OrderID{}, false
	}
	return *o.id, true
}

// AssignID sets the id of a new order. It is called by the repository on first
// save; a second call fails with ErrOrderIDAlreadyAssigned.
func (o *Order) AssignID(id OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if o.id != nil {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = &id
	return nil
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UserID {
	return o.customerID
}

// OrderDate returns the creation instant of the order.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of all line item totals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// AuditInfo returns creation and last modification stamps.
func (o *Order) AuditInfo() kernel.AuditInfo {
	return o.auditInfo
}

// LineItems returns a copy of the line items in insertion order.
func (o *Order) LineItems() []LineItem {
	return slices.Clone(o.lineItems)
}

// LineItemCount returns the number of line items.
func (o *Order) LineItemCount() int {
	return len(o.lineItems)
}

// DomainEvents returns a copy of the recorded events in emission order.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	return slices.Clone(o.domainEvents)
}

// ClearDomainEvents empties the event log. It is called once the events have
// been handed to a publisher; clearing an empty log is a no-op.
func (o *Order) ClearDomainEvents() {
	o.domainEvents = nil
}

// AddLineItem appends item and recomputes the total. Only pending orders can be
// modified. No event is recorded.
func (o *Order) AddLineItem(ctx kernel.DomainContext, item LineItem) error {
	if err := o.status.ValidateModify("add line item"); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.lineItems = append(slices.Clip(o.lineItems), item)
	o.touchLineItems(ctx)
	return nil
}

// RemoveLineItem removes every line item for productID. An unknown productID
// removes nothing but still recomputes the total and advances the audit info.
//
// Returns:
//   - InvalidStateTransitionError if the order is not pending
//   - ErrEmptyOrder if the removal would leave the order empty
func (o *Order) RemoveLineItem(ctx kernel.DomainContext, productID ProductID) error {
	if err := o.status.ValidateModify("remove line item"); err != nil {
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(o.lineItems), func(l LineItem) bool {
		return l.productID.IsEqual(productID)
	})
	if len(remaining) == 0 {
		return ErrEmptyOrder
	}

	o.lineItems = remaining
	o.touchLineItems(ctx)
	return nil
}

// UpdateLineItem replaces the line item with the same product id as item.
//
// Returns:
//   - InvalidStateTransitionError if the order is not pending
//   - LineItemNotFoundError if the order has no line item for item's product
func (o *Order) UpdateLineItem(ctx kernel.DomainContext, item LineItem) error {
	if err := o.status.ValidateModify("update line item"); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	index := slices.IndexFunc(o.lineItems, item.IsEqual)
	if index < 0 {
		return &LineItemNotFoundError{ProductID: item.productID}
	}

	lineItems := slices.Clone(o.lineItems)
	lineItems[index] = item
	o.lineItems = lineItems
	o.touchLineItems(ctx)
	return nil
}

// Pay moves a pending order to Paid and records OrderPaid.
func (o *Order) Pay(ctx kernel.DomainContext) error {
	return o.transition(ctx, o.status.Pay, OrderPaidEvent)
}

// Ship moves a paid order to Shipped and records OrderShipped.
func (o *Order) Ship(ctx kernel.DomainContext) error {
	return o.transition(ctx, o.status.Ship, OrderShippedEvent)
}

// Deliver moves a shipped order to Delivered and records OrderDelivered.
func (o *Order) Deliver(ctx kernel.DomainContext) error {
	return o.transition(ctx, o.status.Deliver, OrderDeliveredEvent)
}

// Cancel moves a pending or paid order to Cancelled and records OrderCancelled.
func (o *Order) Cancel(ctx kernel.DomainContext) error {
	return o.transition(ctx, o.status.Cancel, OrderCancelledEvent)
}

func (o *Order) transition(ctx kernel.DomainContext, next func() (Status, error), eventName string) error {
	newStatus, err := next()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.auditInfo = o.auditInfo.Update(ctx.Actor())
	o.record(eventName, ctx)
	return nil
}

func (o *Order) record(eventName string, ctx kernel.DomainContext) {
	o.domainEvents = append(o.domainEvents, newOrderEvent(eventName, ctx, o.snapshot()))
}

func (o *Order) snapshot() EventPayload {
	var id *OrderID
	if o.id != nil {
		idCopy := *o.id
		id = &idCopy
	}
	return EventPayload{
		OrderID:       id,
		CustomerID:    o.customerID,
		OrderDate:     o.orderDate,
		Status:        o.status,
		TotalAmount:   o.totalAmount,
		LineItemCount: len(o.lineItems),
	}
}

func (o *Order) touchLineItems(ctx kernel.DomainContext) {
	o.totalAmount = sumTotals(o.lineItems)
	o.auditInfo = o.auditInfo.Update(ctx.Actor())
}

func (o *Order) setCustomerID(customerID kernel.UserID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("line items", ErrEmptyOrder)
	}
	for _, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = slices.Clone(lineItems)
	o.totalAmount = sumTotals(o.lineItems)
	return nil
}

func sumTotals(lineItems []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range lineItems {
		total = total.Add(item.TotalPrice())
	}
	return total
}
