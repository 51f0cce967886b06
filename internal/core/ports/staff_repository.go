package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff members and
// their current workload.
type StaffRepository interface {
	Add(ctx context.Context, aggregate *staff.Staff) error
	Update(ctx context.Context, aggregate *staff.Staff) error
	Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error)
	GetForUpdate(ctx context.Context, id kernel.UUID) (*staff.Staff, error)

	// GetAllBusy returns every staff member holding at least one order, with
	// the staff rows locked for the rest of the transaction.
	GetAllBusy(ctx context.Context) ([]*staff.Staff, error)
}
