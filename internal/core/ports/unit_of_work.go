package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one workflow operation.
// Repositories returned after Begin run inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error

	// Rollback is a no-op once the transaction was committed, so handlers
	// may always defer it.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	BranchRepository() BranchRepository
	StaffRepository() StaffRepository
	PartnerRepository() PartnerRepository
	OrderNumbers() OrderNumberSequence
}
