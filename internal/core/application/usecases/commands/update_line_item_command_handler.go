package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateLineItemCommandHandler replaces a line item of a pending order.
// Returns order.LineItemNotFoundError when the order has no line item for the product.
type UpdateLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateLineItemCommandHandler(uowFactory OrderUoWFactory) UpdateLineItemCommandHandler {
	return UpdateLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateLineItemCommandHandler) Handle(ctx context.Context, cmd UpdateLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateLineItem(cmd.RequestContext(), cmd.LineItem())
	})
}
