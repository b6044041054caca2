package order

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidStateTransition is the sentinel wrapped by InvalidStateTransitionError.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrEmptyOrder is returned when an edit would leave an order without line items.
	ErrEmptyOrder = errors.New("order must have at least one line item")

	// ErrLineItemNotFound is the sentinel wrapped by LineItemNotFoundError.
	ErrLineItemNotFound = errors.New("line item not found")

	// ErrOrderIDAlreadyAssigned is returned when AssignID is called twice.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrLineItemIsNotConstructed is returned for zero-value line items.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem or RestoreLineItem")

	// ErrBundleComponentIsNotConstructed is returned for zero-value bundle components.
	ErrBundleComponentIsNotConstructed = errors.New(
		"BundleComponentItem must be created via NewBundleComponentItem or RestoreBundleComponentItem",
	)
)

// InvalidStateTransitionError reports an operation attempted while the order is
// not in one of the statuses the operation requires.
type InvalidStateTransitionError struct {
	Operation string
	Required  []Status
	Actual    Status
}

func newInvalidStateTransitionError(operation string, actual Status, required ...Status) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Operation: operation,
		Required:  required,
		Actual:    actual,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	names := make([]string, len(e.Required))
	for i, s := range e.Required {
		names[i] = s.String()
	}
	return fmt.Sprintf("%s: cannot %s: order must be in %s status, but is %s",
		ErrInvalidStateTransition, e.Operation, strings.Join(names, " or "), e.Actual)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// LineItemNotFoundError reports an edit addressed to a product the order does
// not contain.
type LineItemNotFoundError struct {
	ProductID ProductID
}

func (e *LineItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: product %s", ErrLineItemNotFound, e.ProductID)
}

func (e *LineItemNotFoundError) Unwrap() error {
	return ErrLineItemNotFound
}
