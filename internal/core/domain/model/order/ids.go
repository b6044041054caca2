package order

import (
	"cmp"
	"strconv"

	"ordering/internal/core/domain/model/kernel"
)

// OrderID identifies a persisted order. It wraps a positive 64-bit integer and is
// assigned by the repository on first save.
type OrderID struct {
	value int64
}

// NewOrderID creates an OrderID. Returns ValueIsInvalidError when value <= 0.
func NewOrderID(value int64) (OrderID, error) {
	if err := kernel.ValidatePositiveID("order id", value); err != nil {
		return OrderID{}, err
	}
	return OrderID{value: value}, nil
}

// Value returns the underlying integer.
func (id OrderID) Value() int64 {
	return id.value
}

// IsEqual reports whether both identifiers carry the same value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Compare orders identifiers by value; it returns -1, 0 or +1.
func (id OrderID) Compare(other OrderID) int {
	return cmp.Compare(id.value, other.value)
}

// Validate rejects zero-value identifiers.
func (id OrderID) Validate() error {
	return kernel.ValidatePositiveID("order id", id.value)
}

func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON encodes the identifier as a JSON number.
func (id OrderID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}

// ProductID identifies a catalog product referenced by line items and bundle
// components. It wraps a positive 64-bit integer.
type ProductID struct {
	value int64
}

// NewProductID creates a ProductID. Returns ValueIsInvalidError when value <= 0.
func NewProductID(value int64) (ProductID, error) {
	if err := kernel.ValidatePositiveID("product id", value); err != nil {
		return ProductID{}, err
	}
	return ProductID{value: value}, nil
}

// Value returns the underlying integer.
func (id ProductID) Value() int64 {
	return id.value
}

// IsEqual reports whether both identifiers carry the same value.
func (id ProductID) IsEqual(other ProductID) bool {
	return id.value == other.value
}

// Compare orders identifiers by value; it returns -1, 0 or +1.
func (id ProductID) Compare(other ProductID) int {
	return cmp.Compare(id.value, other.value)
}

// Validate rejects zero-value identifiers.
func (id ProductID) Validate() error {
	return kernel.ValidatePositiveID("product id", id.value)
}

func (id ProductID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON encodes the identifier as a JSON number.
func (id ProductID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}
