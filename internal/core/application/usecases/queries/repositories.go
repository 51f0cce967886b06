package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// OrderReader is the read-only part of ports.OrderRepository. Queries run
// outside a unit of work.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
}
