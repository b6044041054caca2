package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Save persists the aggregate with its line items and bundle components.
	// On first save the repository assigns the order id through AssignID and the
	// returned pointer is the same aggregate with its id set.
	//
	// Example:
	//   saved, err := repo.Save(ctx, o)
	//   if err != nil {
	//       return fmt.Errorf("save order: %w", err)
	//   }
	//   id, _ := saved.ID()
	Save(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// FindByID loads the complete aggregate and locks its row until the
	// surrounding transaction ends. Returns errs.ObjectNotFoundError when absent.
	FindByID(ctx context.Context, id order.OrderID) (*order.Order, error)

	// Delete removes the order together with its line items.
	Delete(ctx context.Context, aggregate *order.Order) error
}
