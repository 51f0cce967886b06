package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// ChangeKind names the workflow operation that produced an OrderChanged event.
type ChangeKind string

const (
	ChangePlaced            ChangeKind = "placed"
	ChangeBranchAssigned    ChangeKind = "branch_assigned"
	ChangeLogisticsAssigned ChangeKind = "logistics_assigned"
	ChangeStaffAssigned     ChangeKind = "staff_assigned"
	ChangeStatusChanged     ChangeKind = "status_changed"
)

// OrderChanged is published after every committed workflow operation. The
// ticket subsystem consumes it to track SLAs.
type OrderChanged struct {
	OrderID   kernel.UUID
	Number    string
	Kind      ChangeKind
	From      order.Status
	To        order.Status
	ActorID   kernel.UUID
	ActorRole access.Role
	Override  bool
	Version   int64
	At        time.Time
}

type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChanged) error
}
