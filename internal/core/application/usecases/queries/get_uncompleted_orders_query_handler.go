package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler lists open orders sorted by id.
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_date,
			status,
			total_amount
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY id
	`, order.Delivered.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedOrdersQueryResponse
		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.OrderDate,
			&resp.Status,
			&resp.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		resp.OrderDate = resp.OrderDate.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
