// Package queries contains read operations. Handlers read PostgreSQL directly
// with SQL and return flat read models instead of aggregates.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with its line items and bundle components.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read order: %w", err)
//	}
//	fmt.Printf("Order %d is %s, total %s\n", o.ID, o.Status, o.TotalAmount)
type GetOrderQuery struct {
	orderID order.OrderID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	id, err := order.NewOrderID(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() order.OrderID {
	return q.orderID
}

// GetOrderQueryResponse is the read model of an order.
type GetOrderQueryResponse struct {
	ID          int64
	CustomerID  int64
	OrderDate   time.Time
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	CreatedBy   string
	UpdatedAt   time.Time
	UpdatedBy   string
	LineItems   []LineItemResponse
}

// LineItemResponse is one line of an order read model, in insertion order.
type LineItemResponse struct {
	ProductID        int64
	ProductName      string
	Quantity         int
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	BundleComponents []BundleComponentResponse
}

type BundleComponentResponse struct {
	ComponentProductID int64
	ComponentName      string
	Quantity           int
}
