package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/pkg/errs"
)

// PartnerCommandsHandler runs the logistics partner administration commands.
type PartnerCommandsHandler struct {
	uowFactory PartnerUoWFactory
}

func NewPartnerCommandsHandler(uowFactory PartnerUoWFactory) PartnerCommandsHandler {
	return PartnerCommandsHandler{uowFactory: uowFactory}
}

func (h PartnerCommandsHandler) HandleCreate(ctx context.Context, cmd CreatePartnerCommand) (*logistics.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := logistics.NewPartner(kernel.NewUUID(), cmd.Name(), cmd.Coverage())
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

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return nil, storageError("save logistics partner", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewInfrastructureError("commit", err)
	}
	return p, nil
}

func (h PartnerCommandsHandler) HandleUpdateCoverage(
	ctx context.Context,
	cmd UpdatePartnerCoverageCommand,
) (*logistics.Partner, error) {
	return h.update(ctx, cmd.partnerTarget, func(p *logistics.Partner) {
		p.ReplaceCoverage(cmd.Coverage())
	})
}

func (h PartnerCommandsHandler) HandleSetActive(
	ctx context.Context,
	cmd SetPartnerActiveCommand,
) (*logistics.Partner, error) {
	return h.update(ctx, cmd.partnerTarget, func(p *logistics.Partner) {
		if cmd.Active() {
			p.Activate()
		} else {
			p.Deactivate()
		}
	})
}

func (h PartnerCommandsHandler) update(
	ctx context.Context,
	target partnerTarget,
	change func(*logistics.Partner),
) (*logistics.Partner, error) {
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

	repo := uow.PartnerRepository()
	p, err := repo.Get(ctx, target.PartnerID())
	if err != nil {
		return nil, storageError("load logistics partner", err, func() error {
			return errs.NewPartnerNotFoundError(target.PartnerID().String())
		})
	}

	change(p)

	if err = repo.Update(ctx, p); err != nil {
		return nil, storageError("save logistics partner", err, nil)
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, errs.NewInfrastructureError("commit", err)
	}
	return p, nil
}
