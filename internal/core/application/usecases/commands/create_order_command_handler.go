package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// CreateOrderCommandHandler places orders in Placed with the next number of
// the UTC day.
type CreateOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	clock      kernel.Clock
}

func NewCreateOrderCommandHandler(uowFactory PlacementUoWFactory, clock kernel.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (Result, error) {
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

	now := h.clock.Now().UTC()
	ordinal, err := uow.OrderNumbers().Next(ctx, now)
	if err != nil {
		return Result{}, storageError("issue order number", err, nil)
	}
	number, err := order.NewNumber(now, ordinal)
	if err != nil {
		return Result{}, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), number, cmd.Placement(), order.ActorFromScope(cmd.Scope()), now)
	if err != nil {
		return Result{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return Result{}, storageError("save order", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return Result{}, errs.NewInfrastructureError("commit", err)
	}

	return Result{Order: o, From: order.Unknown, At: now}, nil
}
