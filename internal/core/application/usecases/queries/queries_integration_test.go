package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/userrepo"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite verifies the raw-SQL read side against a real
// PostgreSQL instance, seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	users     *userrepo.GormUserRepository
	orders    *orderrepo.GormOrderRepository
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}))
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users, orders").Error)
	suite.users = userrepo.NewGormUserRepository(suite.db)
	suite.orders = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) seedCourier(login, email string, available bool) *user.User {
	docs := user.NewDocuments("addr.jpg", "vehicle.jpg", "id.jpg")
	courier, err := user.NewCourier(kernel.NewUUID(), login, email, "11988880000", "hash", docs)
	suite.Require().NoError(err)
	suite.Require().NoError(courier.Approve(true))
	if available {
		suite.Require().NoError(courier.SetAvailability(true))
	}
	suite.Require().NoError(suite.users.Add(context.Background(), courier))
	return courier
}

func (suite *QueriesIntegrationTestSuite) seedPendingCourier(login, email string) *user.User {
	docs := user.NewDocuments(login+"_addr.jpg", login+"_vehicle.jpg", login+"_id.jpg")
	courier, err := user.NewCourier(kernel.NewUUID(), login, email, "11977770000", "hash", docs)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.users.Add(context.Background(), courier))
	return courier
}

func (suite *QueriesIntegrationTestSuite) seedOrder(customerID kernel.UUID, code string, mobile bool) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), customerID, code, "package", "Acme Ltda", "Av. Paulista 1000", "", mobile)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_FiltersByCustomer() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	suite.seedOrder(customerID, "ORD-1", true)
	suite.seedOrder(customerID, "ORD-2", false)
	suite.seedOrder(otherID, "ORD-3", true)

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(&customerID, nil, nil, false)
	suite.Require().NoError(err)

	rows, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(rows, 2)
	for _, row := range rows {
		suite.True(row.CustomerID.IsEqual(customerID))
	}
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_NewestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	suite.seedOrder(customerID, "ORD-1", true)
	time.Sleep(10 * time.Millisecond)
	suite.seedOrder(customerID, "ORD-2", true)

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	query, err := queries.NewGetOrdersQuery(nil, nil, nil, false)
	suite.Require().NoError(err)

	rows, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("ORD-2", rows[0].Code)
	suite.Equal("ORD-1", rows[1].Code)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_AvailableOnlyIgnoresCourierFilter() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	courier := suite.seedCourier("joao", "joao@example.com", true)

	available := suite.seedOrder(customerID, "ORD-OPEN", true)
	suite.seedOrder(customerID, "ORD-FOOT", false)

	claimed := suite.seedOrder(customerID, "ORD-TAKEN", true)
	suite.Require().NoError(suite.orders.AcceptPending(ctx, claimed.ID(), courier.ID()))

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	courierID := courier.ID()
	query, err := queries.NewGetOrdersQuery(nil, &courierID, nil, true)
	suite.Require().NoError(err)

	rows, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(rows[0].ID.IsEqual(available.ID()))
	suite.Equal(order.StatusPending, rows[0].Status)
	suite.Nil(rows[0].CourierID)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrders_FiltersByStatus() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	courier := suite.seedCourier("joao", "joao@example.com", true)

	suite.seedOrder(customerID, "ORD-1", true)
	claimed := suite.seedOrder(customerID, "ORD-2", true)
	suite.Require().NoError(suite.orders.AcceptPending(ctx, claimed.ID(), courier.ID()))

	handler := queries.NewGetOrdersQueryHandler(suite.db)
	inProgress := order.StatusInProgress
	query, err := queries.NewGetOrdersQuery(nil, nil, &inProgress, false)
	suite.Require().NoError(err)

	rows, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("ORD-2", rows[0].Code)
	suite.Require().NotNil(rows[0].CourierID)
	suite.True(rows[0].CourierID.IsEqual(courier.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetCouriers_ActiveOnlyAndAvailableFilter() {
	ctx := context.Background()
	suite.seedCourier("ana", "ana@example.com", true)
	suite.seedCourier("bia", "bia@example.com", false)
	suite.seedPendingCourier("caio", "caio@example.com")

	handler := queries.NewGetCouriersQueryHandler(suite.db)

	rows, err := handler.Handle(ctx, queries.NewGetCouriersQuery("", false))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("ana", rows[0].Login)
	suite.Equal("bia", rows[1].Login)

	rows, err = handler.Handle(ctx, queries.NewGetCouriersQuery("", true))
	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.Equal("ana", rows[0].Login)
	suite.True(rows[0].Available)
}

func (suite *QueriesIntegrationTestSuite) TestGetAllCouriers_IncludesEveryStatus() {
	ctx := context.Background()
	suite.seedCourier("ana", "ana@example.com", true)
	suite.seedPendingCourier("caio", "caio@example.com")

	handler := queries.NewGetAllCouriersQueryHandler(suite.db)

	rows, err := handler.Handle(ctx, queries.NewGetAllCouriersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Equal("ana", rows[0].Login)
	suite.Equal("active", rows[0].Status)
	suite.True(rows[0].Approved)
	suite.Equal("caio", rows[1].Login)
	suite.Equal("pending", rows[1].Status)
	suite.False(rows[1].Approved)
}

func (suite *QueriesIntegrationTestSuite) TestGetPendingCouriers_OldestFirstWithDocumentKeys() {
	ctx := context.Background()
	first := suite.seedPendingCourier("caio", "caio@example.com")
	time.Sleep(10 * time.Millisecond)
	suite.seedPendingCourier("davi", "davi@example.com")
	suite.seedCourier("ana", "ana@example.com", true)

	handler := queries.NewGetPendingCouriersQueryHandler(suite.db)

	rows, err := handler.Handle(ctx, queries.NewGetPendingCouriersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.True(rows[0].ID.IsEqual(first.ID()))
	suite.Equal("caio_addr.jpg", rows[0].AddressProofKey)
	suite.Equal("caio_vehicle.jpg", rows[0].VehicleDocKey)
	suite.Equal("caio_id.jpg", rows[0].IDPhotoKey)
}

func (suite *QueriesIntegrationTestSuite) TestGetOrderStats_CountsPerStatus() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	courier := suite.seedCourier("joao", "joao@example.com", true)

	suite.seedOrder(customerID, "ORD-1", true)
	suite.seedOrder(customerID, "ORD-2", false)
	claimed := suite.seedOrder(customerID, "ORD-3", true)
	suite.Require().NoError(suite.orders.AcceptPending(ctx, claimed.ID(), courier.ID()))

	handler := queries.NewGetOrderStatsQueryHandler(suite.db)

	stats, err := handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(stats, 2)
	suite.Equal("in_progress", stats[0].Status)
	suite.Equal(int64(1), stats[0].Count)
	suite.Equal("pending", stats[1].Status)
	suite.Equal(int64(2), stats[1].Count)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
