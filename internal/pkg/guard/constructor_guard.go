// Package guard provides ConstructorGuard, a marker that lets a type detect whether
// it was built by its constructor or is a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and aggregates that must only be
// built through their New... functions. The zero value is "not constructed".
//
// Example:
//
//	var ErrPayCommandIsNotConstructed = errors.New("PayCommand must be created via NewPayCommand")
//
//	type PayCommand struct {
//	    orderID order.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c PayCommand) Validate() error {
//	    return c.guard.Validate(ErrPayCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
