package kernel

import (
	"fmt"
	"strconv"

	"ordering/internal/pkg/errs"
)

// UserID identifies a user of the system. Customers of orders are users, so the
// same identifier is used on both aggregates.
//
// UserID wraps a positive 64-bit integer. The zero value is invalid.
type UserID struct {
	value int64
}

// NewUserID creates a UserID from its numeric value.
//
// Returns:
//   - UserID: the identifier when value is positive
//   - error: ValueIsInvalidError when value <= 0
func NewUserID(value int64) (UserID, error) {
	if err := ValidatePositiveID("user id", value); err != nil {
		return UserID{}, err
	}
	return UserID{value: value}, nil
}

// Value returns the underlying integer.
func (id UserID) Value() int64 {
	return id.value
}

// IsEqual reports whether both identifiers carry the same value.
func (id UserID) IsEqual(other UserID) bool {
	return id.value == other.value
}

// Validate rejects zero-value identifiers.
func (id UserID) Validate() error {
	return ValidatePositiveID("user id", id.value)
}

func (id UserID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// MarshalJSON encodes the identifier as a JSON number.
func (id UserID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}

// ValidatePositiveID is the shared rule for numeric identifiers: they must be
// strictly positive.
func ValidatePositiveID(paramName string, value int64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%d is not greater than 0", value))
	}
	return nil
}
