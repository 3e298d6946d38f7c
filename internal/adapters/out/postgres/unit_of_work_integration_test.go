package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/providerrepo"
	"dispatch/internal/adapters/out/postgres/sectorrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/provider"
	"dispatch/internal/core/domain/model/sector"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&sectorrepo.SectorDTO{}, &sectorrepo.VertexDTO{},
		&providerrepo.ProviderDTO{}, &driverrepo.DriverDTO{},
		&notificationrepo.NotificationDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, sectors, sector_vertices, providers, drivers, notifications",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.SectorRepository(), "First instance should provide sector repository")
	suite.NotNil(uow1.ProviderRepository(), "First instance should provide provider repository")
	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow2.NotificationRepository(), "Second instance should provide notification repository")
	suite.NotNil(uow2.AddressLookup(), "Second instance should provide address lookup")
	suite.NotNil(uow2.ProductCatalog(), "Second instance should provide product catalog")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add order within transaction
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order exists within transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify order persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_ClaimTransaction verifies the provider claim spanning the
// order and provider repositories commits atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ClaimTransaction() {
	ctx := context.Background()

	testSector := suite.createTestSector()
	testProvider := suite.createTestProvider(testSector.ID())
	testOrder := suite.createTestOrderInSector(testSector.ID())

	// Seed initial state
	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.SectorRepository().Add(ctx, testSector))
	suite.Require().NoError(seed.ProviderRepository().Add(ctx, testProvider))
	suite.Require().NoError(seed.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(seed.Commit(ctx))

	// Run the claim in its own unit of work
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	claimed, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(claimed.AcceptByProvider(testProvider.ID()))

	won, err := uow.OrderRepository().UpdateIfStatus(ctx, claimed, order.PendingProvider)
	suite.Require().NoError(err)
	suite.True(won)

	suite.Require().NoError(uow.Commit(ctx))

	// Verify claim is visible to a fresh unit of work
	verify := suite.factory.Create()
	retrieved, err := verify.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.PendingDriver, retrieved.Status())
	suite.Require().NotNil(retrieved.Provider())
	suite.True(retrieved.Provider().IsEqual(testProvider.ID()))
}

// TestUnitOfWork_RollbackDiscardsChanges verifies rollback leaves the
// database untouched.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

// TestUnitOfWork_UncommittedChangesInvisible verifies transaction isolation:
// another unit of work must not see changes before commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UncommittedChangesInvisible() {
	ctx := context.Background()
	writer := suite.factory.Create()
	reader := suite.factory.Create()

	testOrder := suite.createTestOrder()

	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.OrderRepository().Add(ctx, testOrder))

	_, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Uncommitted order should be invisible to other units of work")

	suite.Require().NoError(writer.Commit(ctx))

	retrieved, err := reader.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())
}

// createTestOrder creates a freshly placed immediate order.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderInSector(kernel.NewUUID())
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrderInSector(sectorID kernel.UUID) *order.Order {
	item, err := order.NewItem(kernel.NewUUID(), 2, 10)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), sectorID,
		[]order.Item{item}, 3, "cash", true, nil, "", "", time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestSector() *sector.Sector {
	a, err := kernel.NewPoint(0, 0)
	suite.Require().NoError(err)
	b, err := kernel.NewPoint(0, 10)
	suite.Require().NoError(err)
	c, err := kernel.NewPoint(10, 10)
	suite.Require().NoError(err)
	d, err := kernel.NewPoint(10, 0)
	suite.Require().NoError(err)

	boundary, err := kernel.NewPolygon([]kernel.Point{a, b, c, d})
	suite.Require().NoError(err)

	testSector, err := sector.NewSector(kernel.NewUUID(), "downtown", boundary, 3)
	suite.Require().NoError(err)
	return testSector
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestProvider(sectorID kernel.UUID) *provider.Provider {
	testProvider, err := provider.NewProvider(kernel.NewUUID(), "corner market", sectorID)
	suite.Require().NoError(err)
	return testProvider
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
