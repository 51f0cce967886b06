package commands

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAssignLogisticsCommandIsNotConstructed = errors.New(
	"AssignLogisticsCommand must be created via NewAssignLogisticsCommand constructor",
)

// AssignLogisticsCommand hands an order to a logistics partner for one leg.
type AssignLogisticsCommand struct {
	scope     access.Scope
	orderID   kernel.UUID
	partnerID kernel.UUID
	leg       logistics.Leg

	guard guard.ConstructorGuard
}

func NewAssignLogisticsCommand(
	scope access.Scope,
	orderID, partnerID kernel.UUID,
	leg logistics.Leg,
) (AssignLogisticsCommand, error) {
	if err := scope.Validate(); err != nil {
		return AssignLogisticsCommand{}, errs.NewForbiddenError("request scope is missing")
	}

	var err error
	if orderID.IsZero() {
		err = errors.Join(err, errs.NewMissingParameterError("orderId"))
	}
	if partnerID.IsZero() {
		err = errors.Join(err, errs.NewMissingParameterError("partnerId"))
	}
	if leg.Validate() != nil {
		err = errors.Join(err, errs.NewMissingParameterError("type"))
	}
	if err != nil {
		return AssignLogisticsCommand{}, err
	}

	return AssignLogisticsCommand{
		scope:     scope,
		orderID:   orderID,
		partnerID: partnerID,
		leg:       leg,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignLogisticsCommand) Validate() error {
	return c.guard.Validate(ErrAssignLogisticsCommandIsNotConstructed)
}

func (c AssignLogisticsCommand) Scope() access.Scope {
	return c.scope
}

func (c AssignLogisticsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignLogisticsCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c AssignLogisticsCommand) Leg() logistics.Leg {
	return c.leg
}
