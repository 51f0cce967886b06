package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// ReleaseStaffWorkloadCommandHandler frees staff capacity held by finished
// orders. All releases happen in one transaction.
type ReleaseStaffWorkloadCommandHandler struct {
	uowFactory UoWFactory
}

func NewReleaseStaffWorkloadCommandHandler(uowFactory UoWFactory) ReleaseStaffWorkloadCommandHandler {
	return ReleaseStaffWorkloadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of released (staff, order) pairs.
func (h ReleaseStaffWorkloadCommandHandler) Handle(ctx context.Context, cmd ReleaseStaffWorkloadCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, errs.NewInfrastructureError("begin transaction", err)
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()
	busy, err := staffRepo.GetAllBusy(ctx)
	if err != nil {
		return 0, storageError("load busy staff", err, nil)
	}
	if len(busy) == 0 {
		return 0, nil
	}

	finished, err := uow.OrderRepository().TerminalAmong(ctx, heldOrders(busy))
	if err != nil {
		return 0, storageError("load finished orders", err, nil)
	}

	released := 0
	for _, s := range busy {
		changed := false
		for _, orderID := range finished {
			if !s.Holds(orderID) {
				continue
			}
			if err = s.ReleaseOrder(orderID); err != nil {
				return 0, err
			}
			changed = true
			released++
		}
		if !changed {
			continue
		}
		if err = staffRepo.Update(ctx, s); err != nil {
			return 0, storageError("save staff", err, nil)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, errs.NewInfrastructureError("commit", err)
	}
	return released, nil
}

func heldOrders(members []*staff.Staff) []kernel.UUID {
	seen := make(map[kernel.UUID]struct{})
	var ids []kernel.UUID
	for _, s := range members {
		for _, id := range s.CurrentOrders() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
