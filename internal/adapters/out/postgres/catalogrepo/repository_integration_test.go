package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/adapters/out/postgres/catalogrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ProductCatalogIntegrationTestSuite provides integration tests for the
// catalog lookups over the foreign-owned product tables.
type ProductCatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *catalogrepo.GormProductCatalog
}

func (suite *ProductCatalogIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// The catalog tables belong to another service; create them the way its
	// migrations would.
	suite.Require().NoError(db.Exec(
		"CREATE TABLE products (id uuid PRIMARY KEY, price numeric NOT NULL)",
	).Error)
	suite.Require().NoError(db.Exec(
		`CREATE TABLE provider_products (
			provider_id uuid NOT NULL,
			product_id uuid NOT NULL,
			is_available boolean NOT NULL,
			PRIMARY KEY (provider_id, product_id)
		)`,
	).Error)
}

func (suite *ProductCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products, provider_products").Error)
	suite.catalog = catalogrepo.NewGormProductCatalog(suite.db)
}

func (suite *ProductCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductCatalogIntegrationTestSuite) insertProduct(price float64) kernel.UUID {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO products (id, price) VALUES (?, ?)", id.Bytes(), price,
	).Error)
	return id
}

func (suite *ProductCatalogIntegrationTestSuite) insertProviderProduct(
	providerID, productID kernel.UUID,
	available bool,
) {
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO provider_products (provider_id, product_id, is_available) VALUES (?, ?, ?)",
		providerID.Bytes(), productID.Bytes(), available,
	).Error)
}

func (suite *ProductCatalogIntegrationTestSuite) TestGetPrices_AllProductsKnown_ReturnsPrices() {
	ctx := context.Background()

	productA := suite.insertProduct(10)
	productB := suite.insertProduct(5)

	prices, err := suite.catalog.GetPrices(ctx, []kernel.UUID{productA, productB})
	suite.Require().NoError(err)
	suite.InDelta(10.0, prices[productA], 0.0001)
	suite.InDelta(5.0, prices[productB], 0.0001)
}

func (suite *ProductCatalogIntegrationTestSuite) TestGetPrices_UnknownProduct_FailsWholeCall() {
	ctx := context.Background()

	known := suite.insertProduct(10)
	unknown := kernel.NewUUID()

	_, err := suite.catalog.GetPrices(ctx, []kernel.UUID{known, unknown})
	suite.Require().Error(err)

	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *ProductCatalogIntegrationTestSuite) TestProviderStocks_AllAvailable_ReturnsTrue() {
	ctx := context.Background()

	providerID := kernel.NewUUID()
	productA := suite.insertProduct(10)
	productB := suite.insertProduct(5)
	suite.insertProviderProduct(providerID, productA, true)
	suite.insertProviderProduct(providerID, productB, true)

	stocked, err := suite.catalog.ProviderStocks(ctx, providerID, []kernel.UUID{productA, productB})
	suite.Require().NoError(err)
	suite.True(stocked)
}

func (suite *ProductCatalogIntegrationTestSuite) TestProviderStocks_ProductMarkedUnavailable_ReturnsFalse() {
	ctx := context.Background()

	providerID := kernel.NewUUID()
	productA := suite.insertProduct(10)
	productB := suite.insertProduct(5)
	suite.insertProviderProduct(providerID, productA, true)
	suite.insertProviderProduct(providerID, productB, false)

	stocked, err := suite.catalog.ProviderStocks(ctx, providerID, []kernel.UUID{productA, productB})
	suite.Require().NoError(err)
	suite.False(stocked)
}

func (suite *ProductCatalogIntegrationTestSuite) TestProviderStocks_ProductNotCarried_ReturnsFalse() {
	ctx := context.Background()

	providerID := kernel.NewUUID()
	carried := suite.insertProduct(10)
	notCarried := suite.insertProduct(5)
	suite.insertProviderProduct(providerID, carried, true)

	stocked, err := suite.catalog.ProviderStocks(ctx, providerID, []kernel.UUID{carried, notCarried})
	suite.Require().NoError(err)
	suite.False(stocked)
}

func (suite *ProductCatalogIntegrationTestSuite) TestProviderStocks_DuplicateRequestIDs_CountedOnce() {
	ctx := context.Background()

	providerID := kernel.NewUUID()
	product := suite.insertProduct(10)
	suite.insertProviderProduct(providerID, product, true)

	stocked, err := suite.catalog.ProviderStocks(ctx, providerID, []kernel.UUID{product, product})
	suite.Require().NoError(err)
	suite.True(stocked)
}

func TestProductCatalogIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductCatalogIntegrationTestSuite))
}
