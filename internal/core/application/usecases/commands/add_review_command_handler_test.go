package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedTestOrder(t *testing.T) *order.Order {
	t.Helper()

	o := pendingDriverOrder(t, kernel.NewUUID())
	driverID := kernel.NewUUID()
	require.NoError(t, o.AcceptByDriver(driverID))
	require.NoError(t, o.StartToProvider(driverID))
	require.NoError(t, o.StartToCustomer(driverID))
	require.NoError(t, o.Complete(driverID))
	return o
}

func TestAddReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := completedTestOrder(t)
	cmd, err := commands.NewAddReviewCommand(testOrder.ID(), testOrder.CustomerID(), 5, "fast and warm")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIfUnrated", ctx, mock.AnythingOfType("*order.Order")).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddReviewCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.Rating())
	assert.Equal(t, 5, *testOrder.Rating())
}

func TestAddReviewCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()

	testOrder := completedTestOrder(t)
	require.NoError(t, testOrder.AddReview(testOrder.CustomerID(), 4, ""))

	cmd, err := commands.NewAddReviewCommand(testOrder.ID(), testOrder.CustomerID(), 5, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddReviewCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, 4, *testOrder.Rating())
}

func TestAddReviewCommandHandler_Handle_ConcurrentReviewLosesRace(t *testing.T) {
	ctx := t.Context()

	testOrder := completedTestOrder(t)
	cmd, err := commands.NewAddReviewCommand(testOrder.ID(), testOrder.CustomerID(), 3, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)

	// Another request rated the order between our read and our write, so the
	// conditional update finds a rated row and declines.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIfUnrated", ctx, mock.AnythingOfType("*order.Order")).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddReviewCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewAddReviewCommand_RatingBounds(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	_, err := commands.NewAddReviewCommand(orderID, customerID, 0, "")
	require.ErrorIs(t, err, commands.ErrRatingIsInvalid)

	_, err = commands.NewAddReviewCommand(orderID, customerID, 6, "")
	require.ErrorIs(t, err, commands.ErrRatingIsInvalid)
}
