// Package commands contains the operations that change workflow state.
// Every handler follows the same shape: validate the command, open a unit of
// work, load aggregates with row locks, let the domain decide, persist, commit.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	OrderNumbersFactory interface {
		OrderNumbers() ports.OrderNumberSequence
	}

	// PlacementUoW covers order placement: the order and its number sequence.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		OrderNumbersFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// BranchUoW manages branch-only changes.
	BranchUoW interface {
		TxManager
		BranchRepoFactory
	}

	BranchUoWFactory interface {
		Create() BranchUoW
	}

	// StaffUoW manages staff-only changes.
	StaffUoW interface {
		TxManager
		StaffRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	// PartnerUoW manages logistics partner changes.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW spans every aggregate a workflow operation can touch.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... decide with the assignment engine
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		BranchRepoFactory
		StaffRepoFactory
		PartnerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
