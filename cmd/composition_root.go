package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/objectstore"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/userrepo"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/auth"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires every adapter and use case together. Created once at
// startup; Close releases the database pool.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	documents  ports.DocumentStore
	tokens     *auth.TokenIssuer
	logger     *slog.Logger
}

// NewCompositionRoot opens the database and object store connections and
// builds the dependency graph.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	gormDB, err := openDatabase(config)
	if err != nil {
		return nil, err
	}

	if err = gormDB.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	documents, err := objectstore.NewMinioDocumentStore(ctx, objectstore.Config{
		Endpoint:  config.StorageEndpoint,
		AccessKey: config.StorageAccessKey,
		SecretKey: config.StorageSecretKey,
		Bucket:    config.StorageBucket,
		UseSSL:    config.StorageUseSSL,
	})
	if err != nil {
		return nil, err
	}

	tokens, err := auth.NewTokenIssuer(config.AuthSecret, config.AuthTokenTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		documents:  documents,
		tokens:     tokens,
		logger:     logger,
	}, nil
}

// openDatabase connects to postgres and sizes the connection pool.
// TranslateError is required so unique violations surface as
// gorm.ErrDuplicatedKey in the repositories.
func openDatabase(config Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB, nil
}

// Close releases the database connection pool.
func (c *CompositionRoot) Close() error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateServer builds the HTTP server with all handlers wired.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	userUoWs := FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	uows := FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})

	return httpin.NewServer(httpin.Dependencies{
		Tokens:    c.tokens,
		Documents: c.documents,

		RegisterUser:    commands.NewRegisterUserCommandHandler(userUoWs),
		RegisterCourier: commands.NewRegisterCourierCommandHandler(userUoWs, c.documents),
		SetAvailability: commands.NewSetAvailabilityCommandHandler(userUoWs),
		ApproveCourier:  commands.NewApproveCourierCommandHandler(userUoWs),
		CreateOrder:     commands.NewCreateOrderCommandHandler(uows),
		AcceptOrder:     commands.NewAcceptOrderCommandHandler(uows),
		AssignOrder:     commands.NewAssignOrderCommandHandler(uows),
		EditOrder:       commands.NewEditOrderCommandHandler(uows),
		SetOrderStatus:  commands.NewSetOrderStatusCommandHandler(uows),

		Login:              queries.NewLoginQueryHandler(c.uowFactory.Create().UserRepository(), c.tokens),
		GetOrders:          queries.NewGetOrdersQueryHandler(c.gormDB),
		GetCouriers:        queries.NewGetCouriersQueryHandler(c.gormDB),
		GetAllCouriers:     queries.NewGetAllCouriersQueryHandler(c.gormDB),
		GetPendingCouriers: queries.NewGetPendingCouriersQueryHandler(c.gormDB),
	})
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(
		queries.NewGetOrderStatsQueryHandler(c.gormDB),
		config.OrderStatsSchedule,
		c.logger,
	)
}

// FuncUserUoWFactory adapts a closure to the user unit of work factory.
type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the cross-aggregate unit of work factory.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
