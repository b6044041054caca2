package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
	ctx       kernel.DomainContext
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, users, outbox_events RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
	suite.ctx = kernel.NewRequestContext("ordering-test", "tester")
}

func (suite *QueryHandlersTestSuite) TestGetUncompletedOrders_EmptyDatabase_ReturnsEmptySlice() {
	handler := queries.NewGetUncompletedOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.NewGetUncompletedOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *QueryHandlersTestSuite) TestGetUncompletedOrders_MixedStatuses_ReturnsOnlyOpenOrders() {
	pending := suite.saveOrder()
	paid := suite.saveOrder(func(o *order.Order) error { return o.Pay(suite.ctx) })
	shipped := suite.saveOrder(
		func(o *order.Order) error { return o.Pay(suite.ctx) },
		func(o *order.Order) error { return o.Ship(suite.ctx) },
	)
	suite.saveOrder(
		func(o *order.Order) error { return o.Pay(suite.ctx) },
		func(o *order.Order) error { return o.Ship(suite.ctx) },
		func(o *order.Order) error { return o.Deliver(suite.ctx) },
	)
	suite.saveOrder(func(o *order.Order) error { return o.Cancel(suite.ctx) })

	handler := queries.NewGetUncompletedOrdersQueryHandler(suite.db)
	result, err := handler.Handle(context.Background(), queries.NewGetUncompletedOrdersQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 3)
	suite.Equal(suite.idOf(pending), result[0].ID)
	suite.Equal("PENDING", result[0].Status)
	suite.Equal(suite.idOf(paid), result[1].ID)
	suite.Equal("PAID", result[1].Status)
	suite.Equal(suite.idOf(shipped), result[2].ID)
	suite.Equal("SHIPPED", result[2].Status)
	suite.True(decimal.RequireFromString("100").Equal(result[0].TotalAmount))
	suite.Equal(int64(7), result[0].CustomerID)
}

func (suite *QueryHandlersTestSuite) TestGetUncompletedOrders_InvalidQuery_ReturnsError() {
	handler := queries.NewGetUncompletedOrdersQueryHandler(suite.db)

	result, err := handler.Handle(context.Background(), queries.GetUncompletedOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestGetUncompletedOrders_CancelledContext_ReturnsError() {
	suite.saveOrder()
	handler := queries.NewGetUncompletedOrdersQueryHandler(suite.db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := handler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())

	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ReturnsLineItemsAndComponents() {
	stored := suite.saveOrder(func(o *order.Order) error { return o.Pay(suite.ctx) })
	query, err := queries.NewGetOrderQuery(suite.idOf(stored))
	suite.Require().NoError(err)

	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(suite.idOf(stored), result.ID)
	suite.Equal("PAID", result.Status)
	suite.Equal("tester", result.CreatedBy)
	suite.True(decimal.RequireFromString("100").Equal(result.TotalAmount))
	suite.WithinDuration(stored.OrderDate(), result.OrderDate, time.Millisecond)

	suite.Require().Len(result.LineItems, 2)
	suite.Equal("Keyboard", result.LineItems[0].ProductName)
	suite.True(decimal.RequireFromString("60").Equal(result.LineItems[0].TotalPrice))
	suite.Empty(result.LineItems[0].BundleComponents)

	bundle := result.LineItems[1]
	suite.Equal("Desk Bundle", bundle.ProductName)
	suite.Equal([]queries.BundleComponentResponse{
		{ComponentProductID: 10, ComponentName: "Desk", Quantity: 1},
		{ComponentProductID: 11, ComponentName: "Lamp", Quantity: 2},
	}, bundle.BundleComponents)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Missing_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(404)
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *QueryHandlersTestSuite) TestGetUser_ReturnsProfileWithoutPassword() {
	ctx := context.Background()
	u, err := user.NewUser(suite.ctx, "Ada", "ada@example.com", "ada", "s3cret")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err = uow.UserRepository().Save(ctx, u)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))

	id, _ := u.ID()
	query, err := queries.NewGetUserQuery(id.Value())
	suite.Require().NoError(err)

	result, err := queries.NewGetUserQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(queries.GetUserQueryResponse{
		ID:        id.Value(),
		Name:      "Ada",
		Email:     "ada@example.com",
		LoginID:   "ada",
		CreatedAt: result.CreatedAt,
		CreatedBy: "tester",
		UpdatedAt: result.UpdatedAt,
		UpdatedBy: "tester",
	}, result)
}

func (suite *QueryHandlersTestSuite) TestGetUser_Missing_ReturnsNotFoundError() {
	query, err := queries.NewGetUserQuery(404)
	suite.Require().NoError(err)

	_, err = queries.NewGetUserQueryHandler(suite.db).Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// saveOrder stores a 100.00 order after applying steps to it.
func (suite *QueryHandlersTestSuite) saveOrder(steps ...func(*order.Order) error) *order.Order {
	ctx := context.Background()
	customerID, err := kernel.NewUserID(7)
	suite.Require().NoError(err)

	p := func(v int64) order.ProductID {
		id, idErr := order.NewProductID(v)
		suite.Require().NoError(idErr)
		return id
	}

	keyboard, err := order.NewLineItem(p(1), "Keyboard", 2, decimal.RequireFromString("30.00"))
	suite.Require().NoError(err)
	bundle, err := order.NewLineItem(p(2), "Desk Bundle", 1, decimal.RequireFromString("40.00"))
	suite.Require().NoError(err)
	desk, err := order.NewBundleComponentItem(p(10), "Desk", 1)
	suite.Require().NoError(err)
	lamp, err := order.NewBundleComponentItem(p(11), "Lamp", 2)
	suite.Require().NoError(err)
	bundle, err = bundle.WithBundleComponent(desk)
	suite.Require().NoError(err)
	bundle, err = bundle.WithBundleComponent(lamp)
	suite.Require().NoError(err)

	o, err := order.NewOrder(suite.ctx, customerID, []order.LineItem{keyboard, bundle})
	suite.Require().NoError(err)
	for _, step := range steps {
		suite.Require().NoError(step(o))
	}

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	_, err = uow.OrderRepository().Save(ctx, o)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.Commit(ctx))
	return o
}

func (suite *QueryHandlersTestSuite) idOf(o *order.Order) int64 {
	id, ok := o.ID()
	suite.Require().True(ok)
	return id.Value()
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
