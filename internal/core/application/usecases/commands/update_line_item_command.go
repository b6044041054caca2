package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateLineItemCommandIsNotConstructed = errors.New(
		"UpdateLineItemCommand must be created via NewUpdateLineItemCommand constructor",
	)
)

// UpdateLineItemCommand replaces the line item of a pending order that has the same product.
type UpdateLineItemCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	orderID    order.OrderID
	lineItem   order.LineItem

	guard guard.ConstructorGuard
}

func NewUpdateLineItemCommand(
	requestCtx kernel.DomainContext,
	orderID int64,
	lineItem LineItemData,
) (UpdateLineItemCommand, error) {
	cmd := UpdateLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestContext(requestCtx),
		cmd.setOrderID(orderID),
		cmd.setLineItem(lineItem),
	); err != nil {
		return UpdateLineItemCommand{}, err
	}

	return cmd, nil
}

func (c UpdateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLineItemCommandIsNotConstructed)
}

func (c UpdateLineItemCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c UpdateLineItemCommand) OrderID() order.OrderID {
	return c.orderID
}

func (c UpdateLineItemCommand) LineItem() order.LineItem {
	return c.lineItem
}

func (c *UpdateLineItemCommand) setRequestContext(requestCtx kernel.DomainContext) error {
	if err := validateRequestContext(requestCtx); err != nil {
		return err
	}
	c.requestCtx = requestCtx
	return nil
}

func (c *UpdateLineItemCommand) setOrderID(value int64) error {
	id, err := order.NewOrderID(value)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateLineItemCommand) setLineItem(data LineItemData) error {
	item, err := data.toLineItem()
	if err != nil {
		return err
	}
	c.lineItem = item
	return nil
}
