// Package orderrepo persists the Order aggregate with GORM. An order is stored
// across three tables: orders, order_line_items and order_bundle_components.
// Child rows carry a position column so insertion order survives a round trip.
package orderrepo

import (
	"time"

	"ordering/internal/adapters/out/postgres/auditdto"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	CustomerID  int64             `gorm:"not null;index"`
	OrderDate   time.Time         `gorm:"not null"`
	Status      string            `gorm:"type:varchar(20);not null;index"`
	TotalAmount decimal.Decimal   `gorm:"type:numeric(19,4);not null"`
	Audit       auditdto.AuditDTO `gorm:"embedded"`
	LineItems   []LineItemDTO     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is one row of order_line_items.
type LineItemDTO struct {
	ID               int64                `gorm:"primaryKey;autoIncrement"`
	OrderID          int64                `gorm:"not null;index"`
	Position         int                  `gorm:"not null"`
	ProductID        int64                `gorm:"not null"`
	ProductName      string               `gorm:"type:varchar(255);not null"`
	Quantity         int                  `gorm:"not null"`
	UnitPrice        decimal.Decimal      `gorm:"type:numeric(19,4);not null"`
	BundleComponents []BundleComponentDTO `gorm:"foreignKey:LineItemID;constraint:OnDelete:CASCADE"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// BundleComponentDTO is one row of order_bundle_components.
type BundleComponentDTO struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement"`
	LineItemID         int64  `gorm:"not null;index"`
	Position           int    `gorm:"not null"`
	ComponentProductID int64  `gorm:"not null"`
	ComponentName      string `gorm:"type:varchar(255);not null"`
	Quantity           int    `gorm:"not null"`
}

func (BundleComponentDTO) TableName() string {
	return "order_bundle_components"
}

// fromDomain converts an order aggregate to its database representation.
// ID stays zero for orders that have not been saved yet.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		CustomerID:  aggregate.CustomerID().Value(),
		OrderDate:   aggregate.OrderDate(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		Audit:       auditdto.FromDomain(aggregate.AuditInfo()),
	}
	if id, ok := aggregate.ID(); ok {
		dto.ID = id.Value()
	}
	dto.LineItems = lineItemsFromDomain(dto.ID, aggregate.LineItems())
	return dto
}

func lineItemsFromDomain(orderID int64, items []order.LineItem) []LineItemDTO {
	dtos := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		components := item.BundleComponents()
		componentDTOs := make([]BundleComponentDTO, 0, len(components))
		for j, c := range components {
			componentDTOs = append(componentDTOs, BundleComponentDTO{
				Position:           j,
				ComponentProductID: c.ComponentProductID().Value(),
				ComponentName:      c.ComponentName(),
				Quantity:           c.Quantity(),
			})
		}

		dtos = append(dtos, LineItemDTO{
			OrderID:          orderID,
			Position:         i,
			ProductID:        item.ProductID().Value(),
			ProductName:      item.ProductName(),
			Quantity:         item.Quantity(),
			UnitPrice:        item.UnitPrice(),
			BundleComponents: componentDTOs,
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate with RestoreOrder. Children must already be
// sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.NewUserID(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.OrderDate.UTC(),
		status,
		dto.TotalAmount,
		dto.Audit.ToDomain(),
		items,
	)
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	productID, err := order.NewProductID(dto.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}

	components := make([]order.BundleComponentItem, 0, len(dto.BundleComponents))
	for _, c := range dto.BundleComponents {
		componentID, componentErr := order.NewProductID(c.ComponentProductID)
		if componentErr != nil {
			return order.LineItem{}, componentErr
		}
		components = append(components, order.RestoreBundleComponentItem(componentID, c.ComponentName, c.Quantity))
	}

	return order.RestoreLineItem(productID, dto.ProductName, dto.Quantity, dto.UnitPrice, components), nil
}
