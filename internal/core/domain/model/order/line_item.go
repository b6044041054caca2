package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// LineItem is one product entry of an order. It owns the bundle components of
// bundled products.
//
// LineItem is a value: every change returns a new LineItem, and the component
// slice is never shared with callers. Identity is the product id alone.
type LineItem struct {
	productID        ProductID
	productName      string
	quantity         int
	unitPrice        decimal.Decimal
	bundleComponents []BundleComponentItem

	guard guard.ConstructorGuard
}

// NewLineItem validates and creates a line item without bundle components.
//
// Parameters:
//   - productID: ordered product (must be valid)
//   - productName: display name (must not be blank)
//   - quantity: ordered units (must be positive)
//   - unitPrice: price per unit (must not be negative)
//
// Example:
//
//	p1, _ := order.NewProductID(1)
//	item, err := order.NewLineItem(p1, "Keyboard", 2, decimal.RequireFromString("30.00"))
//	item.TotalPrice() // 60.00
func NewLineItem(productID ProductID, productName string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// RestoreLineItem rebuilds a line item read from storage, including its bundle
// components, without re-running creation rules.
func RestoreLineItem(
	productID ProductID,
	productName string,
	quantity int,
	unitPrice decimal.Decimal,
	bundleComponents []BundleComponentItem,
) LineItem {
	return LineItem{
		productID:        productID,
		productName:      productName,
		quantity:         quantity,
		unitPrice:        unitPrice,
		bundleComponents: slices.Clone(bundleComponents),
		guard:            guard.NewConstructorGuard(),
	}
}

// Validate ensures the line item was built by a constructor.
func (l LineItem) Validate() error {
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the ordered product.
func (l LineItem) ProductID() ProductID {
	return l.productID
}

// ProductName returns the product display name.
func (l LineItem) ProductName() string {
	return l.productName
}

// Quantity returns the ordered units.
func (l LineItem) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l LineItem) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// TotalPrice returns unitPrice * quantity, computed exactly.
func (l LineItem) TotalPrice() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// BundleComponents returns a copy of the components in insertion order.
func (l LineItem) BundleComponents() []BundleComponentItem {
	return slices.Clone(l.bundleComponents)
}

// HasBundleComponents reports whether the line item is a bundle.
func (l LineItem) HasBundleComponents() bool {
	return len(l.bundleComponents) > 0
}

// ContainsComponent reports whether any component refers to productID.
func (l LineItem) ContainsComponent(productID ProductID) bool {
	return slices.ContainsFunc(l.bundleComponents, func(c BundleComponentItem) bool {
		return c.IsProduct(productID)
	})
}

// ComponentQuantity sums the quantities of all components referring to productID.
func (l LineItem) ComponentQuantity(productID ProductID) int {
	total := 0
	for _, c := range l.bundleComponents {
		if c.IsProduct(productID) {
			total += c.quantity
		}
	}
	return total
}

// WithQuantity returns a copy with a new quantity.
func (l LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := l.setQuantity(quantity); err != nil {
		return LineItem{}, err
	}
	l.bundleComponents = slices.Clone(l.bundleComponents)
	return l, nil
}

// WithBundleComponent returns a copy with component appended.
func (l LineItem) WithBundleComponent(component BundleComponentItem) (LineItem, error) {
	if err := component.Validate(); err != nil {
		return LineItem{}, err
	}
	components := make([]BundleComponentItem, 0, len(l.bundleComponents)+1)
	components = append(components, l.bundleComponents...)
	l.bundleComponents = append(components, component)
	return l, nil
}

// WithoutBundleComponent returns a copy without any component referring to productID.
func (l LineItem) WithoutBundleComponent(productID ProductID) LineItem {
	l.bundleComponents = slices.DeleteFunc(slices.Clone(l.bundleComponents), func(c BundleComponentItem) bool {
		return c.IsProduct(productID)
	})
	return l
}

// IsEqual compares line items by product id only.
func (l LineItem) IsEqual(other LineItem) bool {
	return l.productID.IsEqual(other.productID)
}

func (l *LineItem) setProductID(id ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *LineItem) setProductName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	l.productName = name
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", price))
	}
	l.unitPrice = price
	return nil
}
