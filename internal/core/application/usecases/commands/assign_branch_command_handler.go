package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// AssignBranchCommandHandler assigns an order to a branch against the
// branch's daily capacity.
//
// The branch row is locked before the daily load is read, so two orders
// racing for the last slot of the same branch day are decided one after the
// other.
type AssignBranchCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AssignmentEngine
	clock      kernel.Clock
}

func NewAssignBranchCommandHandler(
	uowFactory UoWFactory,
	engine services.AssignmentEngine,
	clock kernel.Clock,
) AssignBranchCommandHandler {
	return AssignBranchCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		clock:      clock,
	}
}

func (h AssignBranchCommandHandler) Handle(ctx context.Context, cmd AssignBranchCommand) (Result, error) {
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

	b, err := uow.BranchRepository().GetForUpdate(ctx, cmd.BranchID())
	if err != nil {
		return Result{}, storageError("load branch", err, func() error {
			return errs.NewBranchNotFoundError(cmd.BranchID().String())
		})
	}

	now := h.clock.Now()
	from, to := h.engine.Capacity().Window(b, now)
	load, err := orders.DailyLoad(ctx, b.ID(), from, to)
	if err != nil {
		return Result{}, storageError("read branch load", err, nil)
	}

	previous := o.Status()
	if err = h.engine.AssignBranch(cmd.Scope(), o, b, load, now); err != nil {
		return Result{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return Result{}, storageError("save order", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return Result{}, errs.NewInfrastructureError("commit", err)
	}

	return Result{Order: o, From: previous, At: now}, nil
}
