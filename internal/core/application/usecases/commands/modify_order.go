package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// modifyOrder runs change against the locked order inside one transaction and
// saves it when change succeeds.
func modifyOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID order.OrderID,
	change func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err = change(o); err != nil {
		return err
	}

	if _, err = orderRepo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
