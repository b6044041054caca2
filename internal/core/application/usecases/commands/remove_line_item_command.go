package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var (
	ErrRemoveLineItemCommandIsNotConstructed = errors.New(
		"RemoveLineItemCommand must be created via NewRemoveLineItemCommand constructor",
	)
)

// RemoveLineItemCommand removes every line item for a product from a pending order.
type RemoveLineItemCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	orderID    order.OrderID
	productID  order.ProductID

	guard guard.ConstructorGuard
}

func NewRemoveLineItemCommand(
	requestCtx kernel.DomainContext,
	orderID int64,
	productID int64,
) (RemoveLineItemCommand, error) {
	cmd := RemoveLineItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestContext(requestCtx),
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return RemoveLineItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveLineItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineItemCommandIsNotConstructed)
}

func (c RemoveLineItemCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c RemoveLineItemCommand) OrderID() order.OrderID {
	return c.orderID
}

func (c RemoveLineItemCommand) ProductID() order.ProductID {
	return c.productID
}

func (c *RemoveLineItemCommand) setRequestContext(requestCtx kernel.DomainContext) error {
	if err := validateRequestContext(requestCtx); err != nil {
		return err
	}
	c.requestCtx = requestCtx
	return nil
}

func (c *RemoveLineItemCommand) setOrderID(value int64) error {
	id, err := order.NewOrderID(value)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RemoveLineItemCommand) setProductID(value int64) error {
	id, err := order.NewProductID(value)
	if err != nil {
		return err
	}
	c.productID = id
	return nil
}
