package ports

import (
	"context"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
)

// BranchRepository defines the persistence contract for branches.
type BranchRepository interface {
	Add(ctx context.Context, aggregate *branch.Branch) error
	Update(ctx context.Context, aggregate *branch.Branch) error
	Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error)

	// GetForUpdate locks the branch row. Branch assignment holds it while it
	// reads the daily load so two orders cannot take the last slot together.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*branch.Branch, error)
}
