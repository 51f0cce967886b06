package commands

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAssignStaffCommandIsNotConstructed = errors.New(
	"AssignStaffCommand must be created via NewAssignStaffCommand constructor",
)

// AssignStaffCommand attaches a washer or ironer to an order.
type AssignStaffCommand struct {
	scope   access.Scope
	orderID kernel.UUID
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignStaffCommand(scope access.Scope, orderID, staffID kernel.UUID) (AssignStaffCommand, error) {
	if err := scope.Validate(); err != nil {
		return AssignStaffCommand{}, errs.NewForbiddenError("request scope is missing")
	}
	if orderID.IsZero() {
		return AssignStaffCommand{}, errs.NewMissingParameterError("orderId")
	}
	if staffID.IsZero() {
		return AssignStaffCommand{}, errs.NewStaffRequiredError()
	}

	return AssignStaffCommand{
		scope:   scope,
		orderID: orderID,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignStaffCommand) Validate() error {
	return c.guard.Validate(ErrAssignStaffCommandIsNotConstructed)
}

func (c AssignStaffCommand) Scope() access.Scope {
	return c.scope
}

func (c AssignStaffCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignStaffCommand) StaffID() kernel.UUID {
	return c.staffID
}
