package queries

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const maxListLimit = 100

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the newest orders visible to the caller, optionally
// narrowed to one status.
//
// Example:
//
//	ready := order.Ready
//	query, err := NewListOrdersQuery(scope, &ready, 20)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	scope  access.Scope
	status *order.Status
	limit  int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts limit 0 for the default page of 100.
func NewListOrdersQuery(scope access.Scope, status *order.Status, limit int) (ListOrdersQuery, error) {
	if err := scope.Validate(); err != nil {
		return ListOrdersQuery{}, errs.NewForbiddenError("request scope is missing")
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, errs.NewInvalidParameterError("status", err)
		}
	}
	if limit < 0 || limit > maxListLimit {
		return ListOrdersQuery{}, errs.NewInvalidParameterError("limit",
			errs.NewValueIsOutOfRangeError("limit", limit, 0, maxListLimit))
	}
	return ListOrdersQuery{scope: scope, status: status, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Scope() access.Scope {
	return q.scope
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}
