package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expectOrderLoaded sets up a unit of work that loads stored and, when saved
// is true, saves and commits it.
func expectOrderLoaded(t *testing.T, stored *order.Order, saved bool) (*MockOrderUoWFactory, *MockUoW, *MockOrderRepository) {
	t.Helper()
	ctx := t.Context()
	id, _ := stored.ID()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	calls := []*mock.Call{
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("FindByID", ctx, id).Return(stored, nil).Once(),
	}
	if saved {
		calls = append(calls,
			repo.On("Save", ctx, stored).Return(stored, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
		)
	}
	calls = append(calls, uow.On("Rollback", ctx).Return(nil).Once())
	mock.InOrder(calls...)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func TestAddLineItemCommandHandler_Handle(t *testing.T) {
	t.Run("should add item to pending order", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		factory, uow, repo := expectOrderLoaded(t, stored, true)
		cmd, err := commands.NewAddLineItemCommand(requestContext(), 42, commands.LineItemData{
			ProductID: 3, ProductName: "Cable", Quantity: 4, UnitPrice: decimal.RequireFromString("2.50"),
		})
		require.NoError(t, err)

		h := commands.NewAddLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.Equal(t, 3, stored.LineItemCount())
		assert.True(t, decimal.RequireFromString("110").Equal(stored.TotalAmount()))
		uow.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should reject paid order", func(t *testing.T) {
		stored := storedOrder(t, order.Paid)
		factory, uow, repo := expectOrderLoaded(t, stored, false)
		cmd, err := commands.NewAddLineItemCommand(requestContext(), 42, keyboard())
		require.NoError(t, err)

		h := commands.NewAddLineItemCommandHandler(factory)
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, order.ErrInvalidStateTransition)
		uow.AssertExpectations(t)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should reject invalid input", func(t *testing.T) {
		_, err := commands.NewAddLineItemCommand(requestContext(), 42, commands.LineItemData{})

		require.Error(t, err)
		require.ErrorIs(t, commands.AddLineItemCommand{}.Validate(), commands.ErrAddLineItemCommandIsNotConstructed)
	})
}

func TestRemoveLineItemCommandHandler_Handle(t *testing.T) {
	t.Run("should remove item", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		factory, uow, _ := expectOrderLoaded(t, stored, true)
		cmd, err := commands.NewRemoveLineItemCommand(requestContext(), 42, 2)
		require.NoError(t, err)

		h := commands.NewRemoveLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.Equal(t, 1, stored.LineItemCount())
		assert.True(t, decimal.RequireFromString("60").Equal(stored.TotalAmount()))
		uow.AssertExpectations(t)
	})

	t.Run("should save unchanged items for unknown product", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		factory, uow, _ := expectOrderLoaded(t, stored, true)
		cmd, err := commands.NewRemoveLineItemCommand(requestContext(), 42, 99)
		require.NoError(t, err)

		h := commands.NewRemoveLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.Equal(t, 2, stored.LineItemCount())
		assert.True(t, decimal.RequireFromString("100").Equal(stored.TotalAmount()))
		assert.Equal(t, "tester", stored.AuditInfo().UpdatedBy())
		uow.AssertExpectations(t)
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		_, err := commands.NewRemoveLineItemCommand(requestContext(), 0, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "product id")
	})
}

func TestUpdateLineItemCommandHandler_Handle(t *testing.T) {
	t.Run("should update item", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		factory, uow, _ := expectOrderLoaded(t, stored, true)
		item := keyboard()
		item.Quantity = 1
		cmd, err := commands.NewUpdateLineItemCommand(requestContext(), 42, item)
		require.NoError(t, err)

		h := commands.NewUpdateLineItemCommandHandler(factory)
		require.NoError(t, h.Handle(t.Context(), cmd))

		assert.True(t, decimal.RequireFromString("70").Equal(stored.TotalAmount()))
		uow.AssertExpectations(t)
	})

	t.Run("should keep total for unknown product", func(t *testing.T) {
		stored := storedOrder(t, order.Pending)
		factory, uow, _ := expectOrderLoaded(t, stored, false)
		item := keyboard()
		item.ProductID = 99
		cmd, err := commands.NewUpdateLineItemCommand(requestContext(), 42, item)
		require.NoError(t, err)

		h := commands.NewUpdateLineItemCommandHandler(factory)

		require.ErrorIs(t, h.Handle(t.Context(), cmd), order.ErrLineItemNotFound)
		assert.True(t, decimal.RequireFromString("100").Equal(stored.TotalAmount()))
		uow.AssertExpectations(t)
	})
}
