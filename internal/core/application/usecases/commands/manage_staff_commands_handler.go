package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// StaffCommandsHandler runs the staff administration commands.
type StaffCommandsHandler struct {
	uowFactory StaffUoWFactory
}

func NewStaffCommandsHandler(uowFactory StaffUoWFactory) StaffCommandsHandler {
	return StaffCommandsHandler{uowFactory: uowFactory}
}

func (h StaffCommandsHandler) HandleCreate(ctx context.Context, cmd CreateStaffCommand) (*staff.Staff, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := staff.NewStaff(kernel.NewUUID(), cmd.Name(), cmd.BranchID(), cmd.Role(), cmd.Availability())
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

	if err = uow.StaffRepository().Add(ctx, s); err != nil {
		return nil, storageError("save staff", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewInfrastructureError("commit", err)
	}
	return s, nil
}

func (h StaffCommandsHandler) HandleUpdateAvailability(
	ctx context.Context,
	cmd UpdateStaffAvailabilityCommand,
) (*staff.Staff, error) {
	return h.update(ctx, cmd.staffTarget, func(s *staff.Staff) {
		s.ReplaceAvailability(cmd.Availability())
	})
}

func (h StaffCommandsHandler) HandleSetActive(ctx context.Context, cmd SetStaffActiveCommand) (*staff.Staff, error) {
	return h.update(ctx, cmd.staffTarget, func(s *staff.Staff) {
		if cmd.Active() {
			s.Activate()
		} else {
			s.Deactivate()
		}
	})
}

func (h StaffCommandsHandler) update(
	ctx context.Context,
	target staffTarget,
	change func(*staff.Staff),
) (*staff.Staff, error) {
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

	repo := uow.StaffRepository()
	s, err := repo.GetForUpdate(ctx, target.StaffID())
	if err != nil {
		return nil, storageError("load staff", err, func() error {
			return errs.NewStaffNotFoundError(target.StaffID().String())
		})
	}
	if _, err = target.scope.ResolveBranch(s.BranchID()); err != nil {
		return nil, err
	}

	change(s)

	if err = repo.Update(ctx, s); err != nil {
		return nil, storageError("save staff", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewInfrastructureError("commit", err)
	}
	return s, nil
}
