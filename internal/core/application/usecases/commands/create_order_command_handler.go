package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places new orders for existing customers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// OrderCreated is now waiting in the outbox
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because the customer is looked up in the same transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that the customer exists, creates the order and saves it.
// Returns the id assigned by the repository.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return order.OrderID{}, err
	}

	newOrder, err := order.NewOrder(cmd.RequestContext(), cmd.CustomerID(), cmd.LineItems())
	if err != nil {
		return order.OrderID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.UserRepository().FindByID(ctx, cmd.CustomerID()); err != nil {
		return order.OrderID{}, err
	}

	saved, err := uow.OrderRepository().Save(ctx, newOrder)
	if err != nil {
		return order.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.OrderID{}, err
	}

	id, _ := saved.ID()
	return id, nil
}
