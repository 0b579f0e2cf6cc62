package userrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/userrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserRepositoryIntegrationTestSuite verifies user persistence against a
// real PostgreSQL instance, including the unique email constraint mapping.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) createCustomer(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "ana", email, "11999990000", "hash", user.RoleCustomer)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) createCourier(email string) *user.User {
	docs := user.NewDocuments("addr.jpg", "vehicle.jpg", "id.jpg")
	u, err := user.NewCourier(kernel.NewUUID(), "joao", email, "11988880000", "hash", docs)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ValidUser_Success() {
	ctx := context.Background()
	created := suite.createCustomer("ana@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, created))

	restored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.Login(), restored.Login())
	suite.Equal(created.Email(), restored.Email())
	suite.Equal(user.RoleCustomer, restored.Role())
	suite.Equal(user.StatusActive, restored.Status())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createCustomer("ana@example.com")))

	err := suite.repository.Add(ctx, suite.createCustomer("ana@example.com"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_CourierRoundTripsDocuments() {
	ctx := context.Background()
	created := suite.createCourier("joao@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, created))

	restored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(user.RoleCourier, restored.Role())
	suite.Equal(user.StatusPending, restored.Status())
	suite.False(restored.IsApproved())
	suite.Equal("addr.jpg", restored.Documents().AddressProof())
	suite.Equal("vehicle.jpg", restored.Documents().VehicleDoc())
	suite.Equal("id.jpg", restored.Documents().IDPhoto())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_PersistsApprovalDecision() {
	ctx := context.Background()
	created := suite.createCourier("joao@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, created))

	suite.Require().NoError(created.Approve(true))
	suite.Require().NoError(suite.repository.Update(ctx, created))

	restored, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.True(restored.IsApproved())
	suite.Equal(user.StatusActive, restored.Status())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmailAndRole_MatchesRolePath() {
	ctx := context.Background()
	created := suite.createCustomer("ana@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, created))

	restored, err := suite.repository.GetByEmailAndRole(ctx, "ana@example.com", user.RoleCustomer)
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(created.ID()))

	_, err = suite.repository.GetByEmailAndRole(ctx, "ana@example.com", user.RoleCourier)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestExistsByEmail() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createCustomer("ana@example.com")))

	exists, err := suite.repository.ExistsByEmail(ctx, "ana@example.com")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByEmail(ctx, "ghost@example.com")
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
