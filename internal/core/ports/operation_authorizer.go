package ports

import (
	"context"

	"laundry/internal/core/domain/model/access"
)

// Operation names a façade entry point for operation-level permission checks.
type Operation string

const (
	OpCreateOrder      Operation = "order:create"
	OpReadOrder        Operation = "order:read"
	OpAssignBranch     Operation = "order:assign_branch"
	OpAssignLogistics  Operation = "order:assign_logistics"
	OpAssignStaff      Operation = "order:assign_staff"
	OpTransitionStatus Operation = "order:transition"
	OpManageBranch     Operation = "branch:manage"
	OpManageStaff      Operation = "staff:manage"
	OpManageLogistics  Operation = "logistics:manage"
)

// OperationAuthorizer decides whether a role may call an operation at all.
// Whether the call succeeds for a given order is still up to the workflow
// rules; this is the coarse gate in front of them.
type OperationAuthorizer interface {
	Authorize(ctx context.Context, role access.Role, op Operation) error
}
