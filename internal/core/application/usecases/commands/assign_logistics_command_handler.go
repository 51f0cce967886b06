package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// AssignLogisticsCommandHandler records the pickup or delivery partner of an
// order and advances its status.
type AssignLogisticsCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AssignmentEngine
	clock      kernel.Clock
}

func NewAssignLogisticsCommandHandler(
	uowFactory UoWFactory,
	engine services.AssignmentEngine,
	clock kernel.Clock,
) AssignLogisticsCommandHandler {
	return AssignLogisticsCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		clock:      clock,
	}
}

func (h AssignLogisticsCommandHandler) Handle(ctx context.Context, cmd AssignLogisticsCommand) (Result, error) {
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

	p, err := uow.PartnerRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return Result{}, storageError("load logistics partner", err, func() error {
			return errs.NewPartnerNotFoundError(cmd.PartnerID().String())
		})
	}

	previous := o.Status()
	now := h.clock.Now()
	if err = h.engine.AssignLogistics(cmd.Scope(), o, p, cmd.Leg(), now); err != nil {
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
