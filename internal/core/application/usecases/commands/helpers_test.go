package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func requestContext() kernel.DomainContext {
	return kernel.NewRequestContext("ordering", "tester")
}

func keyboard() commands.LineItemData {
	return commands.LineItemData{
		ProductID:   1,
		ProductName: "Keyboard",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("30.00"),
	}
}

// storedOrder returns order 42 of customer 7 as a repository would load it.
func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	id, err := order.NewOrderID(42)
	require.NoError(t, err)
	customerID, err := kernel.NewUserID(7)
	require.NoError(t, err)
	p1, err := order.NewProductID(1)
	require.NoError(t, err)
	p2, err := order.NewProductID(2)
	require.NoError(t, err)

	now := kernel.Now()
	o, err := order.RestoreOrder(id, customerID, now, status, decimal.RequireFromString("100.00"),
		kernel.RestoreAuditInfo(now, "creator", now, "creator"),
		[]order.LineItem{
			order.RestoreLineItem(p1, "Keyboard", 2, decimal.RequireFromString("30.00"), nil),
			order.RestoreLineItem(p2, "Mouse", 1, decimal.RequireFromString("40.00"), nil),
		})
	require.NoError(t, err)
	return o
}

// storedUser returns user 7 with password "s3cret".
func storedUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser(requestContext(), "Alice", "alice@example.com", "alice", "s3cret")
	require.NoError(t, err)
	id, err := kernel.NewUserID(7)
	require.NoError(t, err)
	require.NoError(t, u.AssignID(id))
	return u
}
