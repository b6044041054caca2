package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// BundleComponentItem is one component of a bundled product inside a line item.
//
// Identity is the component product id alone: two components with the same
// product id are the same component, whatever their name or quantity. A line
// item may still hold several entries for one product; LineItem.ComponentQuantity
// sums them.
type BundleComponentItem struct {
	componentProductID ProductID
	componentName      string
	quantity           int

	guard guard.ConstructorGuard
}

// NewBundleComponentItem validates and creates a bundle component.
//
// Parameters:
//   - componentProductID: product the component refers to (must be valid)
//   - componentName: display name (must not be blank)
//   - quantity: number of units per bundle (must be positive)
func NewBundleComponentItem(componentProductID ProductID, componentName string, quantity int) (BundleComponentItem, error) {
	item := BundleComponentItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setComponentProductID(componentProductID),
		item.setComponentName(componentName),
		item.setQuantity(quantity),
	); err != nil {
		return BundleComponentItem{}, err
	}

	return item, nil
}

// RestoreBundleComponentItem rebuilds a component read from storage without
// re-running creation rules.
func RestoreBundleComponentItem(componentProductID ProductID, componentName string, quantity int) BundleComponentItem {
	return BundleComponentItem{
		componentProductID: componentProductID,
		componentName:      componentName,
		quantity:           quantity,
		guard:              guard.NewConstructorGuard(),
	}
}

// Validate ensures the component was built by a constructor.
func (c BundleComponentItem) Validate() error {
	return c.guard.Validate(ErrBundleComponentIsNotConstructed)
}

// ComponentProductID returns the product the component refers to.
func (c BundleComponentItem) ComponentProductID() ProductID {
	return c.componentProductID
}

// ComponentName returns the component display name.
func (c BundleComponentItem) ComponentName() string {
	return c.componentName
}

// Quantity returns the number of units.
func (c BundleComponentItem) Quantity() int {
	return c.quantity
}

// WithQuantity returns a copy with a new quantity.
func (c BundleComponentItem) WithQuantity(quantity int) (BundleComponentItem, error) {
	if err := c.setQuantity(quantity); err != nil {
		return BundleComponentItem{}, err
	}
	return c, nil
}

// IsSameProduct reports whether both components refer to the same product.
func (c BundleComponentItem) IsSameProduct(other BundleComponentItem) bool {
	return c.componentProductID.IsEqual(other.componentProductID)
}

// IsProduct reports whether the component refers to productID.
func (c BundleComponentItem) IsProduct(productID ProductID) bool {
	return c.componentProductID.IsEqual(productID)
}

// IsEqual compares components by product id only.
func (c BundleComponentItem) IsEqual(other BundleComponentItem) bool {
	return c.IsSameProduct(other)
}

func (c *BundleComponentItem) setComponentProductID(id ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.componentProductID = id
	return nil
}

func (c *BundleComponentItem) setComponentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("component name")
	}
	c.componentName = name
	return nil
}

func (c *BundleComponentItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}
