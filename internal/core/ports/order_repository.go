// Package ports defines the contracts between the workflow core and its
// infrastructure: persistence, locking, notification, event publishing and
// operation-level authorization.
package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderFilter narrows ListOrders results. Visibility always comes from the
// caller's scope; Status is optional.
type OrderFilter struct {
	Visibility access.Visibility
	Status     *order.Status
	Limit      int
}

// OrderRepository defines the persistence contract for order aggregates,
// including their status history and staff assignments.
type OrderRepository interface {
	// Add persists a freshly placed order at version 1.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if the stored version still equals
	// aggregate.Version(), then advances the version. A lost race returns
	// errs.VersionIsInvalidError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its history and staff assignments.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns orders visible under filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// DailyLoad sums the non-cancelled orders of a branch created in [from, to).
	DailyLoad(ctx context.Context, branchID kernel.UUID, from, to time.Time) (branch.Load, error)

	// TerminalAmong returns the subset of ids whose order is Delivered or Cancelled.
	TerminalAmong(ctx context.Context, ids []kernel.UUID) ([]kernel.UUID, error)
}
