package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReleaseStaffWorkloadCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	branchID := kernel.NewUUID()
	delivered, cancelled, open := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	washer := newStaff(t, branchID, 5)
	require.NoError(t, washer.TakeOrder(delivered))
	require.NoError(t, washer.TakeOrder(open))
	ironer := newStaff(t, branchID, 5)
	require.NoError(t, ironer.TakeOrder(delivered))
	require.NoError(t, ironer.TakeOrder(cancelled))
	idle := newStaff(t, branchID, 5)
	require.NoError(t, idle.TakeOrder(open))

	orderRepo := new(MockOrderRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetAllBusy", ctx).Return([]*staff.Staff{washer, ironer, idle}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("TerminalAmong", ctx, []kernel.UUID{delivered, open, cancelled}).
			Return([]kernel.UUID{delivered, cancelled}, nil).Once(),
		staffRepo.On("Update", ctx, washer).Return(nil).Once(),
		staffRepo.On("Update", ctx, ironer).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseStaffWorkloadCommandHandler(factory)
	released, err := handler.Handle(ctx, commands.NewReleaseStaffWorkloadCommand())

	require.NoError(t, err)
	assert.Equal(t, 3, released)
	assert.Equal(t, []kernel.UUID{open}, washer.CurrentOrders())
	assert.Empty(t, ironer.CurrentOrders())
	assert.Equal(t, []kernel.UUID{open}, idle.CurrentOrders())
	staffRepo.AssertNotCalled(t, "Update", ctx, idle)
	orderRepo.AssertExpectations(t)
	staffRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReleaseStaffWorkloadCommandHandler_Handle_NobodyBusy(t *testing.T) {
	ctx := t.Context()

	staffRepo := new(MockStaffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("GetAllBusy", ctx).Return([]*staff.Staff{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReleaseStaffWorkloadCommandHandler(factory)
	released, err := handler.Handle(ctx, commands.NewReleaseStaffWorkloadCommand())

	require.NoError(t, err)
	assert.Zero(t, released)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestReleaseStaffWorkloadCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewReleaseStaffWorkloadCommandHandler(new(MockUoWFactory))

	_, err := handler.Handle(t.Context(), commands.ReleaseStaffWorkloadCommand{})

	require.ErrorIs(t, err, commands.ErrReleaseStaffWorkloadCommandIsNotConstructed)
}
