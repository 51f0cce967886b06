package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// TransitionStatusCommandHandler applies bare status changes. Result.Override
// reports an administrative correction that bypassed the transition table.
type TransitionStatusCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AssignmentEngine
	clock      kernel.Clock
}

func NewTransitionStatusCommandHandler(
	uowFactory UoWFactory,
	engine services.AssignmentEngine,
	clock kernel.Clock,
) TransitionStatusCommandHandler {
	return TransitionStatusCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		clock:      clock,
	}
}

func (h TransitionStatusCommandHandler) Handle(ctx context.Context, cmd TransitionStatusCommand) (Result, error) {
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

	previous := o.Status()
	now := h.clock.Now()
	override, err := h.engine.TransitionStatus(cmd.Scope(), o, cmd.Target(), cmd.Note(), now)
	if err != nil {
		return Result{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return Result{}, storageError("save order", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return Result{}, errs.NewInfrastructureError("commit", err)
	}

	return Result{Order: o, From: previous, Override: override, At: now}, nil
}
