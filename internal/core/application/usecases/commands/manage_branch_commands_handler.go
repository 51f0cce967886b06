package commands

import (
	"context"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// BranchCommandsHandler runs the branch administration commands.
type BranchCommandsHandler struct {
	uowFactory BranchUoWFactory
}

func NewBranchCommandsHandler(uowFactory BranchUoWFactory) BranchCommandsHandler {
	return BranchCommandsHandler{uowFactory: uowFactory}
}

func (h BranchCommandsHandler) HandleCreate(ctx context.Context, cmd CreateBranchCommand) (*branch.Branch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := branch.NewBranch(kernel.NewUUID(), cmd.Name(), cmd.Capacity(), cmd.Schedule())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, errs.NewInfrastructureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BranchRepository().Add(ctx, b); err != nil {
		return nil, storageError("save branch", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewInfrastructureError("commit", err)
	}
	return b, nil
}

func (h BranchCommandsHandler) HandleUpdateCapacity(
	ctx context.Context,
	cmd UpdateBranchCapacityCommand,
) (*branch.Branch, error) {
	return h.update(ctx, cmd.branchTarget, func(b *branch.Branch) {
		b.ReplaceCapacity(cmd.Capacity())
	})
}

func (h BranchCommandsHandler) HandleUpdateSchedule(
	ctx context.Context,
	cmd UpdateBranchScheduleCommand,
) (*branch.Branch, error) {
	return h.update(ctx, cmd.branchTarget, func(b *branch.Branch) {
		b.ReplaceSchedule(cmd.Schedule())
	})
}

func (h BranchCommandsHandler) HandleSetActive(ctx context.Context, cmd SetBranchActiveCommand) (*branch.Branch, error) {
	return h.update(ctx, cmd.branchTarget, func(b *branch.Branch) {
		if cmd.Active() {
			b.Activate()
		} else {
			b.Deactivate()
		}
	})
}

func (h BranchCommandsHandler) update(
	ctx context.Context,
	target branchTarget,
	change func(*branch.Branch),
) (*branch.Branch, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, errs.NewInfrastructureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.BranchRepository()
	b, err := repo.GetForUpdate(ctx, target.BranchID())
	if err != nil {
		return nil, storageError("load branch", err, func() error {
			return errs.NewBranchNotFoundError(target.BranchID().String())
		})
	}

	change(b)

	if err = repo.Update(ctx, b); err != nil {
		return nil, storageError("save branch", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewInfrastructureError("commit", err)
	}
	return b, nil
}
