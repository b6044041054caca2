package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddLineItemCommandIsNotConstructed = errors.New(
		"AddLineItemCommand must be created via NewAddLineItemCommand constructor",
	)
)

// AddLineItemCommand appends a line item to a pending order.
type AddLineItemCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	orderID    order.OrderID
	lineItem   order.LineItem

	guard guard.ConstructorGuard
}

func NewAddLineItemCommand(
	requestCtx kernel.DomainContext,
	orderID int64,
	lineItem LineItemData,
) (AddLineItemCommand, error) {
	cmd := AddLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestContext(requestCtx),
		cmd.setOrderID(orderID),
		cmd.setLineItem(lineItem),
	); err != nil {
		return AddLineItemCommand{}, err
	}

	return cmd, nil
}

func (c AddLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAddLineItemCommandIsNotConstructed)
}

func (c AddLineItemCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c AddLineItemCommand) OrderID() order.OrderID {
	return c.orderID
}

func (c AddLineItemCommand) LineItem() order.LineItem {
	return c.lineItem
}

func (c *AddLineItemCommand) setRequestContext(requestCtx kernel.DomainContext) error {
	if err := validateRequestContext(requestCtx); err != nil {
		return err
	}
	c.requestCtx = requestCtx
	return nil
}

func (c *AddLineItemCommand) setOrderID(value int64) error {
	id, err := order.NewOrderID(value)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AddLineItemCommand) setLineItem(data LineItemData) error {
	item, err := data.toLineItem()
	if err != nil {
		return err
	}
	c.lineItem = item
	return nil
}
