package order

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──pay──> Paid ──ship──> Shipped ──deliver──> Delivered
//	   │              │
//	   └────cancel────┴──────> Cancelled
//
// Pending is the only initial state. Delivered and Cancelled are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Only pending orders accept line item edits.
	Pending

	// Paid indicates payment was received; the order awaits shipping.
	Paid

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered indicates the customer received the order. Final.
	Delivered

	// Cancelled indicates the order was abandoned before shipping. Final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Paid:      "PAID",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Paid:      "PAID",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// ParseStatus converts a status name, case-insensitively, into a Status.
//
// Returns:
//   - the matching Status for PENDING, PAID, SHIPPED, DELIVERED or CANCELLED
//   - ValueIsInvalidError for any other name
//
// Example:
//
//	status, err := order.ParseStatus("paid") // order.Paid, nil
func ParseStatus(name string) (Status, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for status, str := range getValidStatusStrings() {
		if str == upper {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("unknown order status: %s", name),
	)
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case status name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateModify checks that line items may be edited in the current status.
// Only pending orders can be modified.
func (s Status) ValidateModify(operation string) error {
	if s != Pending {
		return newInvalidStateTransitionError(operation, s, Pending)
	}
	return nil
}

// Pay transitions Pending -> Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return Unknown, newInvalidStateTransitionError("pay", s, Pending)
	}
	return Paid, nil
}

// Ship transitions Paid -> Shipped.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return Unknown, newInvalidStateTransitionError("ship", s, Paid)
	}
	return Shipped, nil
}

// Deliver transitions Shipped -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, newInvalidStateTransitionError("deliver", s, Shipped)
	}
	return Delivered, nil
}

// Cancel transitions Pending or Paid -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Paid {
		return Unknown, newInvalidStateTransitionError("cancel", s, Pending, Paid)
	}
	return Cancelled, nil
}
