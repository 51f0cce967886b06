package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := scopeFor(t, access.Customer, kernel.UUID{}, kernel.UUID{})
	cmd, err := commands.NewCreateOrderCommand(customer, kernel.UUID{}, placement(t, "560001"))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	numbers := new(MockOrderNumbers)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderNumbers").Return(numbers).Once(),
		numbers.On("Next", ctx, now).Return(int64(42), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, clock)
	res, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "LD-20261019-000042", res.Order.Number().String())
	assert.Equal(t, order.Placed, res.Order.Status())
	assert.Equal(t, customer.ActorID(), res.Order.CustomerID())
	assert.Nil(t, res.Order.BranchID())
	require.Len(t, res.Order.History(), 1)
	orderRepo.AssertExpectations(t)
	numbers.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SequenceError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(adminScope(t), kernel.NewUUID(), placement(t, "560001"))
	require.NoError(t, err)

	numbers := new(MockOrderNumbers)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderNumbers").Return(numbers).Once(),
		numbers.On("Next", ctx, now).Return(int64(0), assert.AnError).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlacementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, clock)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInfrastructure)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPlacementUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory, clock)

	_, err := handler.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("customer placing for someone else", func(t *testing.T) {
		customer := scopeFor(t, access.Customer, kernel.UUID{}, kernel.UUID{})
		_, err := commands.NewCreateOrderCommand(customer, kernel.NewUUID(), placement(t, "560001"))
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("support agent must name the customer", func(t *testing.T) {
		agent := scopeFor(t, access.SupportAgent, kernel.UUID{}, kernel.UUID{})
		_, err := commands.NewCreateOrderCommand(agent, kernel.UUID{}, placement(t, "560001"))
		require.ErrorIs(t, err, errs.ErrMissingParameter)
	})

	t.Run("missing addresses and weight", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(adminScope(t), kernel.NewUUID(), order.Placement{})
		require.ErrorIs(t, err, errs.ErrMissingParameter)
		require.ErrorIs(t, err, commands.ErrWeightIsNotPositive)
	})

	t.Run("explicit customer is kept", func(t *testing.T) {
		customerID := kernel.NewUUID()
		cmd, err := commands.NewCreateOrderCommand(adminScope(t), customerID, placement(t, "560001"))
		require.NoError(t, err)
		assert.Equal(t, customerID, cmd.Placement().CustomerID)
	})
}
