package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads orders with plain SQL, without row locks.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Value()

	var response GetOrderQueryResponse
	err := db.Raw(`
		SELECT
			id,
			customer_id,
			order_date,
			status,
			total_amount,
			created_at,
			created_by,
			updated_at,
			updated_by
		FROM orders
		WHERE id = ?
	`, id).Row().Scan(
		&response.ID,
		&response.CustomerID,
		&response.OrderDate,
		&response.Status,
		&response.TotalAmount,
		&response.CreatedAt,
		&response.CreatedBy,
		&response.UpdatedAt,
		&response.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id)
		}
		return GetOrderQueryResponse{}, err
	}
	response.OrderDate = response.OrderDate.UTC()
	response.CreatedAt = response.CreatedAt.UTC()
	response.UpdatedAt = response.UpdatedAt.UTC()

	response.LineItems, err = readLineItems(db, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	return response, nil
}

func readLineItems(db *gorm.DB, orderID int64) ([]LineItemResponse, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineItems := make([]LineItemResponse, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var lineItemID int64
		var item LineItemResponse
		if err = rows.Scan(&lineItemID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		item.BundleComponents = make([]BundleComponentResponse, 0)
		index[lineItemID] = len(lineItems)
		lineItems = append(lineItems, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(lineItems) == 0 {
		return lineItems, nil
	}

	if err = readBundleComponents(db, orderID, lineItems, index); err != nil {
		return nil, err
	}
	return lineItems, nil
}

func readBundleComponents(db *gorm.DB, orderID int64, lineItems []LineItemResponse, index map[int64]int) error {
	rows, err := db.Raw(`
		SELECT
			c.line_item_id,
			c.component_product_id,
			c.component_name,
			c.quantity
		FROM order_bundle_components c
		JOIN order_line_items l ON l.id = c.line_item_id
		WHERE l.order_id = ?
		ORDER BY c.line_item_id, c.position
	`, orderID).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var lineItemID int64
		var component BundleComponentResponse
		if err = rows.Scan(&lineItemID, &component.ComponentProductID, &component.ComponentName, &component.Quantity); err != nil {
			return err
		}
		if i, ok := index[lineItemID]; ok {
			lineItems[i].BundleComponents = append(lineItems[i].BundleComponents, component)
		}
	}
	return rows.Err()
}
