package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler loads an order, applies the requested
// transition and saves it. The emitted event reaches the outbox on commit.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns order.InvalidStateTransitionError when the order is not in a
// status the transition accepts; nothing is saved in that case.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return apply(o, cmd.Transition(), cmd.RequestContext())
	})
}

func apply(o *order.Order, transition Transition, requestCtx kernel.DomainContext) error {
	switch transition {
	case TransitionPay:
		return o.Pay(requestCtx)
	case TransitionShip:
		return o.Ship(requestCtx)
	case TransitionDeliver:
		return o.Deliver(requestCtx)
	case TransitionCancel:
		return o.Cancel(requestCtx)
	default:
		return transition.Validate()
	}
}
