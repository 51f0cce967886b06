package commands

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrTransitionStatusCommandIsNotConstructed = errors.New(
	"TransitionStatusCommand must be created via NewTransitionStatusCommand constructor",
)

// TransitionStatusCommand moves an order to target without an assignment.
// The note is sanitized at construction.
type TransitionStatusCommand struct {
	scope   access.Scope
	orderID kernel.UUID
	target  order.Status
	note    string

	guard guard.ConstructorGuard
}

func NewTransitionStatusCommand(
	scope access.Scope,
	orderID kernel.UUID,
	target order.Status,
	note string,
) (TransitionStatusCommand, error) {
	if err := scope.Validate(); err != nil {
		return TransitionStatusCommand{}, errs.NewForbiddenError("request scope is missing")
	}

	var err error
	if orderID.IsZero() {
		err = errors.Join(err, errs.NewMissingParameterError("orderId"))
	}
	if target == order.Unknown {
		err = errors.Join(err, errs.NewMissingParameterError("status"))
	} else if vErr := target.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewInvalidParameterError("status", vErr))
	}
	if err != nil {
		return TransitionStatusCommand{}, err
	}

	return TransitionStatusCommand{
		scope:   scope,
		orderID: orderID,
		target:  target,
		note:    sanitizeNote(note),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionStatusCommandIsNotConstructed)
}

func (c TransitionStatusCommand) Scope() access.Scope {
	return c.scope
}

func (c TransitionStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionStatusCommand) Target() order.Status {
	return c.target
}

func (c TransitionStatusCommand) Note() string {
	return c.note
}
