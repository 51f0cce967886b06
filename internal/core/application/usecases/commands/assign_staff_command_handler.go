package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// AssignStaffCommandHandler attaches a staff member to an order.
//
// The order and the staff row are both locked and both saved in the same
// transaction, so the staff workload and the order's staff list never
// disagree.
type AssignStaffCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AssignmentEngine
	clock      kernel.Clock
}

func NewAssignStaffCommandHandler(
	uowFactory UoWFactory,
	engine services.AssignmentEngine,
	clock kernel.Clock,
) AssignStaffCommandHandler {
	return AssignStaffCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		clock:      clock,
	}
}

func (h AssignStaffCommandHandler) Handle(ctx context.Context, cmd AssignStaffCommand) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Result{}, errs.NewInfrastructureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return Result{}, storageError("load order", err, func() error {
			return errs.NewOrderNotFoundError(cmd.OrderID().String())
		})
	}

	staffRepo := uow.StaffRepository()
	s, err := staffRepo.GetForUpdate(ctx, cmd.StaffID())
	if err != nil {
		return Result{}, storageError("load staff", err, func() error {
			return errs.NewStaffNotFoundError(cmd.StaffID().String())
		})
	}

	previous := o.Status()
	now := h.clock.Now()
	if err = h.engine.AssignStaff(cmd.Scope(), o, s, now); err != nil {
		return Result{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return Result{}, storageError("save order", err, nil)
	}
	if err = staffRepo.Update(ctx, s); err != nil {
		return Result{}, storageError("save staff", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return Result{}, errs.NewInfrastructureError("commit", err)
	}

	return Result{Order: o, From: previous, At: now}, nil
}
