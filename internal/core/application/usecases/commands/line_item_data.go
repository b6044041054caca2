package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// LineItemData is the raw input for a line item, as received from a caller.
type LineItemData struct {
	ProductID        int64
	ProductName      string
	Quantity         int
	UnitPrice        decimal.Decimal
	BundleComponents []BundleComponentData
}

// BundleComponentData is the raw input for one bundle component.
type BundleComponentData struct {
	ComponentProductID int64
	ComponentName      string
	Quantity           int
}

func (d LineItemData) toLineItem() (order.LineItem, error) {
	productID, err := order.NewProductID(d.ProductID)
	if err != nil {
		return order.LineItem{}, err
	}

	item, err := order.NewLineItem(productID, d.ProductName, d.Quantity, d.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}

	for _, c := range d.BundleComponents {
		component, componentErr := c.toBundleComponent()
		if componentErr != nil {
			return order.LineItem{}, componentErr
		}
		if item, err = item.WithBundleComponent(component); err != nil {
			return order.LineItem{}, err
		}
	}

	return item, nil
}

func (d BundleComponentData) toBundleComponent() (order.BundleComponentItem, error) {
	productID, err := order.NewProductID(d.ComponentProductID)
	if err != nil {
		return order.BundleComponentItem{}, err
	}
	return order.NewBundleComponentItem(productID, d.ComponentName, d.Quantity)
}

func toLineItems(data []LineItemData) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(data))
	var errList []error
	for _, d := range data {
		item, err := d.toLineItem()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}
