package commands

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAssignBranchCommandIsNotConstructed = errors.New(
	"AssignBranchCommand must be created via NewAssignBranchCommand constructor",
)

// AssignBranchCommand places a Placed order into a branch. BranchID may be
// zero for branch-scoped callers, who are constrained to their own branch.
type AssignBranchCommand struct {
	scope    access.Scope
	orderID  kernel.UUID
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignBranchCommand(scope access.Scope, orderID, branchID kernel.UUID) (AssignBranchCommand, error) {
	if err := scope.Validate(); err != nil {
		return AssignBranchCommand{}, errs.NewForbiddenError("request scope is missing")
	}
	if orderID.IsZero() {
		return AssignBranchCommand{}, errs.NewMissingParameterError("orderId")
	}

	resolved, err := scope.ResolveBranch(branchID)
	if err != nil {
		return AssignBranchCommand{}, err
	}

	return AssignBranchCommand{
		scope:    scope,
		orderID:  orderID,
		branchID: resolved,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AssignBranchCommand) Validate() error {
	return c.guard.Validate(ErrAssignBranchCommandIsNotConstructed)
}

func (c AssignBranchCommand) Scope() access.Scope {
	return c.scope
}

func (c AssignBranchCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BranchID is the resolved target branch, never zero.
func (c AssignBranchCommand) BranchID() kernel.UUID {
	return c.branchID
}
