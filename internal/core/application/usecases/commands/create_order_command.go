package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new order for a customer.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(requestCtx, 7, []LineItemData{
//	    {ProductID: 1, ProductName: "Keyboard", Quantity: 2, UnitPrice: decimal.RequireFromString("30.00")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	customerID kernel.UserID
	lineItems  []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates the actor, the customer id and every line item; all failures are joined.
func NewCreateOrderCommand(
	requestCtx kernel.DomainContext,
	customerID int64,
	lineItems []LineItemData,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestContext(requestCtx),
		cmd.setCustomerID(customerID),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// RequestContext returns the context the order is created under.
func (c CreateOrderCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UserID {
	return c.customerID
}

// LineItems returns the validated line items.
func (c CreateOrderCommand) LineItems() []order.LineItem {
	return c.lineItems
}

func (c *CreateOrderCommand) setRequestContext(requestCtx kernel.DomainContext) error {
	if err := validateRequestContext(requestCtx); err != nil {
		return err
	}
	c.requestCtx = requestCtx
	return nil
}

func (c *CreateOrderCommand) setCustomerID(value int64) error {
	id, err := kernel.NewUserID(value)
	if err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setLineItems(data []LineItemData) error {
	items, err := toLineItems(data)
	if err != nil {
		return err
	}
	c.lineItems = items
	return nil
}
