package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
)

// PartnerRepository defines the persistence contract for logistics partners
// and their pincode coverage.
type PartnerRepository interface {
	Add(ctx context.Context, aggregate *logistics.Partner) error
	Update(ctx context.Context, aggregate *logistics.Partner) error
	Get(ctx context.Context, id kernel.UUID) (*logistics.Partner, error)
}
