package queries

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its history and staff.
type GetOrderQuery struct {
	scope   access.Scope
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(scope access.Scope, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := scope.Validate(); err != nil {
		return GetOrderQuery{}, errs.NewForbiddenError("request scope is missing")
	}
	if orderID.IsZero() {
		return GetOrderQuery{}, errs.NewMissingParameterError("orderId")
	}
	return GetOrderQuery{scope: scope, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Scope() access.Scope {
	return q.scope
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
