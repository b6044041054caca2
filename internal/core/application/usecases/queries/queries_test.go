package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUncompletedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUncompletedOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUncompletedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUncompletedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}

func TestNewGetOrderQuery(t *testing.T) {
	query, err := queries.NewGetOrderQuery(42)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(42), query.OrderID().Value())

	_, err = queries.NewGetOrderQuery(0)
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetUserQuery(t *testing.T) {
	query, err := queries.NewGetUserQuery(7)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, int64(7), query.UserID().Value())

	_, err = queries.NewGetUserQuery(-1)
	require.Error(t, err)

	assert.ErrorIs(t, queries.GetUserQuery{}.Validate(), queries.ErrGetUserQueryIsNotConstructed)
}
