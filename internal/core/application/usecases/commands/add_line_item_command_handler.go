package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// AddLineItemCommandHandler appends line items to pending orders and keeps the
// order total in step.
type AddLineItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddLineItemCommandHandler(uowFactory OrderUoWFactory) AddLineItemCommandHandler {
	return AddLineItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *AddLineItemCommandHandler) Handle(ctx context.Context, cmd AddLineItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AddLineItem(cmd.RequestContext(), cmd.LineItem())
	})
}
