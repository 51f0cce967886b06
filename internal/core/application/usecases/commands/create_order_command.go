package commands

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrWeightIsNotPositive = errors.New("weight must be greater than 0")
)

// CreateOrderCommand places a new order on behalf of a customer.
//
// Example:
//
//	pickup, _ := order.NewAddress("12 MG Road", "Bengaluru", kernel.MustPincode("560001"))
//	weight, _ := kernel.WeightFromKg(4.5)
//	cmd, err := NewCreateOrderCommand(scope, kernel.UUID{}, order.Placement{
//	    PickupAddress:   pickup,
//	    DeliveryAddress: pickup,
//	    Weight:          weight,
//	})
//	if err != nil {
//	    return err
//	}
//	res, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	scope     access.Scope
	placement order.Placement

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the placement. A customer always places
// for itself; staff-facing roles placing on behalf of a customer must name
// the customer explicitly.
func NewCreateOrderCommand(scope access.Scope, customerID kernel.UUID, p order.Placement) (CreateOrderCommand, error) {
	if err := scope.Validate(); err != nil {
		return CreateOrderCommand{}, errs.NewForbiddenError("request scope is missing")
	}

	cmd := CreateOrderCommand{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		cmd.setCustomer(customerID),
		cmd.setPlacement(p),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.placement.CustomerID = cmd.resolveCustomer(customerID)

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Scope() access.Scope {
	return c.scope
}

// Placement carries the resolved customer.
func (c CreateOrderCommand) Placement() order.Placement {
	return c.placement
}

func (c *CreateOrderCommand) setCustomer(customerID kernel.UUID) error {
	if c.scope.Role() == access.Customer {
		if !customerID.IsZero() && !customerID.IsEqual(c.scope.ActorID()) {
			return errs.NewForbiddenError("customers may only place their own orders")
		}
		return nil
	}
	if customerID.IsZero() {
		return errs.NewMissingParameterError("customerId")
	}
	return nil
}

func (c *CreateOrderCommand) resolveCustomer(customerID kernel.UUID) kernel.UUID {
	if c.scope.Role() == access.Customer {
		return c.scope.ActorID()
	}
	return customerID
}

func (c *CreateOrderCommand) setPlacement(p order.Placement) error {
	var err error
	if p.PickupAddress.IsZero() {
		err = errors.Join(err, errs.NewMissingParameterError("pickupAddress"))
	}
	if p.DeliveryAddress.IsZero() {
		err = errors.Join(err, errs.NewMissingParameterError("deliveryAddress"))
	}
	if !p.Weight.GreaterThan(kernel.ZeroWeight()) {
		err = errors.Join(err, errs.NewInvalidParameterError("weightKg", ErrWeightIsNotPositive))
	}
	if err != nil {
		return err
	}
	c.placement = p
	return nil
}
