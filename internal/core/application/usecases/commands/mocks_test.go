package commands_test

import (
	"context"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/provider"
	"dispatch/internal/core/domain/model/sector"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error) {
	args := m.Called(ctx, aggregate, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ClaimForDriver(ctx context.Context, aggregate *order.Order, expected order.Status) (bool, error) {
	args := m.Called(ctx, aggregate, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) UpdateIfUnrated(ctx context.Context, aggregate *order.Order) (bool, error) {
	args := m.Called(ctx, aggregate)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByDriver(ctx context.Context, driverID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetStalePendingProvider(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockSectorRepository struct{ mock.Mock }

func (m *MockSectorRepository) Add(ctx context.Context, aggregate *sector.Sector) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSectorRepository) Update(ctx context.Context, aggregate *sector.Sector) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockSectorRepository) Get(ctx context.Context, id kernel.UUID) (*sector.Sector, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sector.Sector), args.Error(1)
}

func (m *MockSectorRepository) GetAll(ctx context.Context) ([]*sector.Sector, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sector.Sector), args.Error(1)
}

type MockProviderRepository struct{ mock.Mock }

func (m *MockProviderRepository) Add(ctx context.Context, aggregate *provider.Provider) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProviderRepository) Update(ctx context.Context, aggregate *provider.Provider) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProviderRepository) Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetAvailableBySector(ctx context.Context, sectorID kernel.UUID) ([]*provider.Provider, error) {
	args := m.Called(ctx, sectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*provider.Provider), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAvailableBySector(ctx context.Context, sectorID kernel.UUID) ([]*driver.Driver, error) {
	args := m.Called(ctx, sectorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockAddressLookup struct{ mock.Mock }

func (m *MockAddressLookup) GetPoint(ctx context.Context, customerID kernel.UUID, addressID kernel.UUID) (kernel.Point, error) {
	args := m.Called(ctx, customerID, addressID)
	return args.Get(0).(kernel.Point), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetPrices(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]float64, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]float64), args.Error(1)
}

func (m *MockProductCatalog) ProviderStocks(ctx context.Context, providerID kernel.UUID, productIDs []kernel.UUID) (bool, error) {
	args := m.Called(ctx, providerID, productIDs)
	return args.Bool(0), args.Error(1)
}

type MockNotificationEnqueuer struct{ mock.Mock }

func (m *MockNotificationEnqueuer) Enqueue(notification ports.Notification) {
	m.Called(notification)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCreateOrderUoW struct{ mockTx }

func (m *MockCreateOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockCreateOrderUoW) SectorRepository() ports.SectorRepository {
	args := m.Called()
	return args.Get(0).(ports.SectorRepository)
}

func (m *MockCreateOrderUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

func (m *MockCreateOrderUoW) AddressLookup() ports.AddressLookup {
	args := m.Called()
	return args.Get(0).(ports.AddressLookup)
}

func (m *MockCreateOrderUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockProviderClaimUoW struct{ mockTx }

func (m *MockProviderClaimUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockProviderClaimUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

func (m *MockProviderClaimUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockProviderClaimUoW) ProductCatalog() ports.ProductCatalog {
	args := m.Called()
	return args.Get(0).(ports.ProductCatalog)
}

type MockProviderClaimUoWFactory struct{ mock.Mock }

func (m *MockProviderClaimUoWFactory) Create() commands.ProviderClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ProviderClaimUoW)
}

type MockDriverClaimUoW struct{ mockTx }

func (m *MockDriverClaimUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockDriverClaimUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverClaimUoWFactory struct{ mock.Mock }

func (m *MockDriverClaimUoWFactory) Create() commands.DriverClaimUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverClaimUoW)
}

type MockRenotifyUoW struct{ mockTx }

func (m *MockRenotifyUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRenotifyUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

type MockRenotifyUoWFactory struct{ mock.Mock }

func (m *MockRenotifyUoWFactory) Create() commands.RenotifyUoW {
	args := m.Called()
	return args.Get(0).(commands.RenotifyUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSectorUoW struct{ mockTx }

func (m *MockSectorUoW) SectorRepository() ports.SectorRepository {
	args := m.Called()
	return args.Get(0).(ports.SectorRepository)
}

type MockSectorUoWFactory struct{ mock.Mock }

func (m *MockSectorUoWFactory) Create() commands.SectorUoW {
	args := m.Called()
	return args.Get(0).(commands.SectorUoW)
}

type MockProviderUoW struct{ mockTx }

func (m *MockProviderUoW) ProviderRepository() ports.ProviderRepository {
	args := m.Called()
	return args.Get(0).(ports.ProviderRepository)
}

type MockProviderUoWFactory struct{ mock.Mock }

func (m *MockProviderUoWFactory) Create() commands.ProviderUoW {
	args := m.Called()
	return args.Get(0).(commands.ProviderUoW)
}

type MockDriverUoW struct{ mockTx }

func (m *MockDriverUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}
