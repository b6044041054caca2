package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// Transition names a status change requested by a caller.
type Transition int

const (
	TransitionUnknown Transition = iota
	TransitionPay
	TransitionShip
	TransitionDeliver
	TransitionCancel
)

var transitionNames = map[Transition]string{
	TransitionPay:     "pay",
	TransitionShip:    "ship",
	TransitionDeliver: "deliver",
	TransitionCancel:  "cancel",
}

func (t Transition) String() string {
	if name, ok := transitionNames[t]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects TransitionUnknown and out-of-range values.
func (t Transition) Validate() error {
	if _, ok := transitionNames[t]; !ok {
		return errs.NewValueIsInvalidError("transition")
	}
	return nil
}

// ParseTransition accepts "pay", "ship", "deliver" and "cancel", ignoring case.
func ParseTransition(name string) (Transition, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for t, n := range transitionNames {
		if n == normalized {
			return t, nil
		}
	}
	return TransitionUnknown, errs.NewValueIsInvalidError("transition")
}

// ChangeOrderStatusCommand moves an order along its lifecycle.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	requestCtx kernel.DomainContext
	orderID    order.OrderID
	transition Transition

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command applying transition to the order.
func NewChangeOrderStatusCommand(
	requestCtx kernel.DomainContext,
	orderID int64,
	transition Transition,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestContext(requestCtx),
		cmd.setOrderID(orderID),
		cmd.setTransition(transition),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) RequestContext() kernel.DomainContext {
	return c.requestCtx
}

func (c ChangeOrderStatusCommand) OrderID() order.OrderID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Transition() Transition {
	return c.transition
}

func (c *ChangeOrderStatusCommand) setRequestContext(requestCtx kernel.DomainContext) error {
	if err := validateRequestContext(requestCtx); err != nil {
		return err
	}
	c.requestCtx = requestCtx
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(value int64) error {
	id, err := order.NewOrderID(value)
	if err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ChangeOrderStatusCommand) setTransition(transition Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}
	c.transition = transition
	return nil
}
