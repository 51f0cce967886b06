package queries

import (
	"errors"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrOrderStatusSummaryQueryIsNotConstructed = errors.New(
	"OrderStatusSummaryQuery must be created via NewOrderStatusSummaryQuery constructor",
)

// OrderStatusSummaryQuery counts the caller's visible orders per status, for
// branch and support dashboards.
type OrderStatusSummaryQuery struct {
	scope access.Scope
	guard guard.ConstructorGuard
}

func NewOrderStatusSummaryQuery(scope access.Scope) (OrderStatusSummaryQuery, error) {
	if err := scope.Validate(); err != nil {
		return OrderStatusSummaryQuery{}, errs.NewForbiddenError("request scope is missing")
	}
	return OrderStatusSummaryQuery{scope: scope, guard: guard.NewConstructorGuard()}, nil
}

func (q OrderStatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrOrderStatusSummaryQueryIsNotConstructed)
}

func (q OrderStatusSummaryQuery) Scope() access.Scope {
	return q.scope
}

// OrderStatusSummaryResponse is one status line. Statuses without orders are
// included with a zero count.
type OrderStatusSummaryResponse struct {
	Status order.Status
	Count  int64
}
