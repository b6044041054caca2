package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// RemoveLineItemCommandHandler removes line items from pending orders. Removing
// the last line item fails with order.ErrEmptyOrder; use DeleteOrder instead.
type RemoveLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveLineItemCommandHandler(uowFactory OrderUoWFactory) RemoveLineItemCommandHandler {
	return RemoveLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RemoveLineItemCommandHandler) Handle(ctx context.Context, cmd RemoveLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RemoveLineItem(cmd.RequestContext(), cmd.ProductID())
	})
}
