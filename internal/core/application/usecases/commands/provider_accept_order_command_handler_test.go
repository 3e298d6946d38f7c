package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/provider"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingProviderOrder(t *testing.T, sectorID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), 1, 10)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), sectorID,
		[]order.Item{item}, 3, "cash", true, nil, "", "", time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestProviderAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	sectorID := kernel.NewUUID()
	testOrder := pendingProviderOrder(t, sectorID)
	testProvider, err := provider.NewProvider(kernel.NewUUID(), "corner bakery", sectorID)
	require.NoError(t, err)
	sectorDriver, err := driver.NewDriver(kernel.NewUUID(), "sam", sectorID)
	require.NoError(t, err)

	cmd, err := commands.NewProviderAcceptOrderCommand(testOrder.ID(), testProvider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	providerRepo := new(MockProviderRepository)
	driverRepo := new(MockDriverRepository)
	catalog := new(MockProductCatalog)
	notifier := new(MockNotificationEnqueuer)
	uow := new(MockProviderClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, testProvider.ID()).Return(testProvider, nil).Once(),
		uow.On("ProductCatalog").Return(catalog).Once(),
		catalog.On("ProviderStocks", ctx, testProvider.ID(), mock.AnythingOfType("[]kernel.UUID")).
			Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.PendingProvider).
			Return(true, nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetAvailableBySector", ctx, sectorID).
			Return([]*driver.Driver{sectorDriver}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Enqueue", mock.AnythingOfType("ports.Notification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProviderAcceptOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PendingDriver, testOrder.Status())
	require.NotNil(t, testOrder.Provider())
	assert.True(t, testOrder.Provider().IsEqual(testProvider.ID()))

	// The fan-out targets the sector's available drivers.
	notification := notifier.Calls[0].Arguments[0].(ports.Notification)
	require.Len(t, notification.Recipients, 1)
	assert.True(t, notification.Recipients[0].IsEqual(sectorDriver.ID()))

	orderRepo.AssertExpectations(t)
	providerRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	catalog.AssertExpectations(t)
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestProviderAcceptOrderCommandHandler_Handle_ClaimLost(t *testing.T) {
	ctx := t.Context()

	sectorID := kernel.NewUUID()
	testOrder := pendingProviderOrder(t, sectorID)
	testProvider, err := provider.NewProvider(kernel.NewUUID(), "corner bakery", sectorID)
	require.NoError(t, err)

	cmd, err := commands.NewProviderAcceptOrderCommand(testOrder.ID(), testProvider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	providerRepo := new(MockProviderRepository)
	catalog := new(MockProductCatalog)
	notifier := new(MockNotificationEnqueuer)
	uow := new(MockProviderClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, testProvider.ID()).Return(testProvider, nil).Once(),
		uow.On("ProductCatalog").Return(catalog).Once(),
		catalog.On("ProviderStocks", ctx, testProvider.ID(), mock.AnythingOfType("[]kernel.UUID")).
			Return(true, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIfStatus", ctx, mock.AnythingOfType("*order.Order"), order.PendingProvider).
			Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProviderAcceptOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotAvailable)
	notifier.AssertNotCalled(t, "Enqueue", mock.Anything)
}

func TestProviderAcceptOrderCommandHandler_Handle_WrongSector(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingProviderOrder(t, kernel.NewUUID())
	testProvider, err := provider.NewProvider(kernel.NewUUID(), "corner bakery", kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewProviderAcceptOrderCommand(testOrder.ID(), testProvider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	providerRepo := new(MockProviderRepository)
	notifier := new(MockNotificationEnqueuer)
	uow := new(MockProviderClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, testProvider.ID()).Return(testProvider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProviderAcceptOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorNotEligible)
	assert.Equal(t, order.PendingProvider, testOrder.Status())
}

func TestProviderAcceptOrderCommandHandler_Handle_BlockedProvider(t *testing.T) {
	ctx := t.Context()

	sectorID := kernel.NewUUID()
	testOrder := pendingProviderOrder(t, sectorID)
	testProvider, err := provider.NewProvider(kernel.NewUUID(), "corner bakery", sectorID)
	require.NoError(t, err)
	testProvider.Block()

	cmd, err := commands.NewProviderAcceptOrderCommand(testOrder.ID(), testProvider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	providerRepo := new(MockProviderRepository)
	notifier := new(MockNotificationEnqueuer)
	uow := new(MockProviderClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, testProvider.ID()).Return(testProvider, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProviderAcceptOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorBlocked)
}

func TestProviderAcceptOrderCommandHandler_Handle_MissingStock(t *testing.T) {
	ctx := t.Context()

	sectorID := kernel.NewUUID()
	testOrder := pendingProviderOrder(t, sectorID)
	testProvider, err := provider.NewProvider(kernel.NewUUID(), "corner bakery", sectorID)
	require.NoError(t, err)

	cmd, err := commands.NewProviderAcceptOrderCommand(testOrder.ID(), testProvider.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	providerRepo := new(MockProviderRepository)
	catalog := new(MockProductCatalog)
	notifier := new(MockNotificationEnqueuer)
	uow := new(MockProviderClaimUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("ProviderRepository").Return(providerRepo).Once(),
		providerRepo.On("Get", ctx, testProvider.ID()).Return(testProvider, nil).Once(),
		uow.On("ProductCatalog").Return(catalog).Once(),
		catalog.On("ProviderStocks", ctx, testProvider.ID(), mock.AnythingOfType("[]kernel.UUID")).
			Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProviderClaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewProviderAcceptOrderCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrActorNotEligible)
}
